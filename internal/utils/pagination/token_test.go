package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	createdAt := time.Date(2024, 3, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(createdAt, "alert-1")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedAt, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, createdAt, decodedAt, "Created at time should match after decode")
	assert.Equal(t, "alert-1", decodedID)

	// Ids containing the separator survive because only the first one splits.
	token = EncodeToken(createdAt, "a|b")
	_, decodedID, err = DecodeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "a|b", decodedID)
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.StdEncoding.EncodeToString([]byte("2024-03-15T00:00:00Z"))
	_, _, err = DecodeToken(noSeparator)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.StdEncoding.EncodeToString([]byte("notadate|alert-1"))
	_, _, err = DecodeToken(badDate)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")
}

func TestEncodeDateBasedToken(t *testing.T) {
	testDate := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	decodedDate, err := DecodeDateBasedToken(EncodeDateBasedToken(testDate))
	assert.NoError(t, err)
	assert.Equal(t, testDate, decodedDate)

	_, err = DecodeDateBasedToken("%%%")
	assert.Error(t, err)
}
