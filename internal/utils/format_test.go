package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1500.00", FormatMoney(decimal.NewFromInt(1500)))
	assert.Equal(t, "12.35", FormatMoney(decimal.RequireFromString("12.345")))
}

func TestSecretHash(t *testing.T) {
	hash, err := HashSecret("cron-secret")
	assert.NoError(t, err)
	assert.True(t, CheckSecretHash("cron-secret", hash))
	assert.False(t, CheckSecretHash("other", hash))
}
