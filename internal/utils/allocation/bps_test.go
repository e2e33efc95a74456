package allocation

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/moedinha/moedinha_backend/internal/apperrors"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buckets(bps ...int) []domain.Bucket {
	out := make([]domain.Bucket, len(bps))
	for i, v := range bps {
		out[i] = domain.Bucket{BucketID: fmt.Sprintf("b%d", i), Name: fmt.Sprintf("Bucket %d", i), PercentBps: v, SortOrder: i}
	}
	return out
}

func values(bs []domain.Bucket) []int {
	out := make([]int, len(bs))
	for i, b := range bs {
		out[i] = b.PercentBps
	}
	return out
}

func TestValidateSumAndDelta(t *testing.T) {
	assert.True(t, ValidateSum(buckets(5000, 3000, 2000)))
	assert.False(t, ValidateSum(buckets(5000, 3000, 1999)))
	assert.Equal(t, 1, Delta(buckets(5000, 3000, 1999)))
	assert.Equal(t, -500, Delta(buckets(6000, 3000, 1500)))
	assert.False(t, ValidateSum(nil))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(buckets(5000, 3000, 2000)))

	err := Validate(buckets(10000))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	err = Validate(buckets(1000, 1000, 1000, 1000, 1000, 1000, 1000, 1000, 2000))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	err = Validate(buckets(5000, 4000))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "1000 bps")

	err = Validate(buckets(12000, -2000))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestNormalize(t *testing.T) {
	in := buckets(1, 1, 1)
	out := Normalize(in)
	assert.Equal(t, []int{3333, 3333, 3334}, values(out))
	assert.Equal(t, []int{1, 1, 1}, values(in), "input must not be mutated")

	assert.Equal(t, []int{0, 0}, values(Normalize(buckets(0, 0))))
	assert.Empty(t, Normalize(nil))
	assert.Equal(t, []int{5000, 5000}, values(Normalize(buckets(2500, 2500))))
}

func TestNormalize_Idempotent(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		n := 1 + r.Intn(8)
		in := make([]int, n)
		for j := range in {
			in[j] = r.Intn(7000)
		}
		in[0]++ // keep the sum positive
		once := Normalize(buckets(in...))
		require.True(t, ValidateSum(once), "normalize(%v) = %v", in, values(once))
		assert.Equal(t, values(once), values(Normalize(once)))
	}
}

func TestAutoBalance_Flexible(t *testing.T) {
	in := buckets(5000, 3000, 2000)
	in[2].IsFlexible = true

	out := AutoBalance(in, "b0", 6000, domain.StrategyFlexible)
	assert.Equal(t, []int{6000, 3000, 1000}, values(out))

	// Flexible bucket hits zero; the edited bucket gives way.
	out = AutoBalance(in, "b0", 9000, domain.StrategyFlexible)
	assert.Equal(t, []int{7000, 3000, 0}, values(out))

	// Editing the flexible bucket itself moves the slack to the next bucket.
	out = AutoBalance(in, "b2", 1000, domain.StrategyFlexible)
	assert.Equal(t, []int{6000, 3000, 1000}, values(out))

	// Out-of-range values are clamped first.
	out = AutoBalance(in, "b1", -50, domain.StrategyFlexible)
	assert.Equal(t, []int{5000, 0, 5000}, values(out))
}

func TestAutoBalance_Proportional(t *testing.T) {
	in := buckets(5000, 3000, 2000)

	out := AutoBalance(in, "b0", 6000, domain.StrategyProportional)
	assert.Equal(t, []int{6000, 2400, 1600}, values(out))

	out = AutoBalance(in, "b2", 0, domain.StrategyProportional)
	assert.Equal(t, []int{6250, 3750, 0}, values(out))

	// Rounding residual lands on the last non-edited bucket.
	out = AutoBalance(buckets(3333, 3333, 3334), "b0", 3000, domain.StrategyProportional)
	assert.True(t, ValidateSum(out))
	assert.Equal(t, 3000, out[0].PercentBps)
}

func TestAutoBalance_ProportionalZeroOthers(t *testing.T) {
	in := buckets(10000, 0, 0)
	out := AutoBalance(in, "b0", 7000, domain.StrategyProportional)
	assert.Equal(t, 7000, out[0].PercentBps)
	assert.Equal(t, 0, out[1].PercentBps)
	assert.Equal(t, 3000, out[2].PercentBps)
	assert.True(t, ValidateSum(out))
}

func TestAutoBalance_PassThrough(t *testing.T) {
	single := buckets(10000)
	assert.Equal(t, []int{10000}, values(AutoBalance(single, "b0", 3000, domain.StrategyFlexible)))

	in := buckets(5000, 5000)
	assert.Equal(t, []int{5000, 5000}, values(AutoBalance(in, "missing", 3000, domain.StrategyProportional)))
}

func TestAutoBalance_PreservesSum(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	strategies := []domain.BalanceStrategy{domain.StrategyFlexible, domain.StrategyProportional}
	for i := 0; i < 1000; i++ {
		n := 2 + r.Intn(7)
		raw := make([]int, n)
		remaining := domain.TotalBps
		for j := 0; j < n-1; j++ {
			raw[j] = r.Intn(remaining/2 + 1)
			remaining -= raw[j]
		}
		raw[n-1] = remaining
		in := buckets(raw...)
		if r.Intn(2) == 0 {
			in[r.Intn(n)].IsFlexible = true
		}
		edited := fmt.Sprintf("b%d", r.Intn(n))
		newValue := r.Intn(12000) - 1000
		strategy := strategies[r.Intn(2)]

		out := AutoBalance(in, edited, newValue, strategy)
		require.True(t, ValidateSum(out), "%s autoBalance(%v, %s, %d) = %v", strategy, values(in), edited, newValue, values(out))
		for _, b := range out {
			require.GreaterOrEqual(t, b.PercentBps, 0)
		}
	}
}

func TestPercentBpsRoundTrip(t *testing.T) {
	assert.Equal(t, 3333, PercentToBps(33.33))
	assert.Equal(t, 1250, PercentToBps(12.499))
	assert.InDelta(t, 12.5, BpsToPercent(1250), 1e-9)
	for b := 0; b <= domain.TotalBps; b++ {
		got := PercentToBps(BpsToPercent(b))
		require.LessOrEqual(t, abs(got-b), 1, "bps %d", b)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
