// Package allocation validates and rebalances basis-point buckets.
// Every function is pure: inputs are copied, never mutated.
package allocation

import (
	"fmt"
	"math"

	"github.com/moedinha/moedinha_backend/internal/apperrors"
	"github.com/moedinha/moedinha_backend/internal/core/domain"
)

// Sum returns the total basis points of the buckets.
func Sum(buckets []domain.Bucket) int {
	total := 0
	for _, b := range buckets {
		total += b.PercentBps
	}
	return total
}

// ValidateSum reports whether the buckets add up to exactly 10000 bps.
func ValidateSum(buckets []domain.Bucket) bool {
	return Sum(buckets) == domain.TotalBps
}

// Delta returns 10000 minus the current sum. Positive means under-allocated.
func Delta(buckets []domain.Bucket) int {
	return domain.TotalBps - Sum(buckets)
}

// Validate checks the invariants a distribution must hold before it is saved.
func Validate(buckets []domain.Bucket) error {
	if len(buckets) < domain.MinBuckets || len(buckets) > domain.MaxBuckets {
		return apperrors.NewValidationFailedError(
			fmt.Sprintf("a distribution needs between %d and %d buckets, got %d", domain.MinBuckets, domain.MaxBuckets, len(buckets)))
	}
	for _, b := range buckets {
		if b.PercentBps < 0 || b.PercentBps > domain.TotalBps {
			return apperrors.NewValidationFailedError(
				fmt.Sprintf("bucket %q has %d bps, expected a value between 0 and %d", b.Name, b.PercentBps, domain.TotalBps))
		}
	}
	if d := Delta(buckets); d != 0 {
		return apperrors.NewValidationFailedError(
			fmt.Sprintf("bucket percentages must sum to 100%% (off by %d bps)", d))
	}
	return nil
}

// Normalize rescales every bucket by 10000/sum and lets the last bucket absorb
// the rounding residual. Empty lists and zero sums are returned unchanged.
func Normalize(buckets []domain.Bucket) []domain.Bucket {
	out := clone(buckets)
	total := Sum(out)
	if len(out) == 0 || total == 0 {
		return out
	}
	scale := float64(domain.TotalBps) / float64(total)
	for i := range out {
		out[i].PercentBps = int(math.Round(float64(out[i].PercentBps) * scale))
	}
	out[len(out)-1].PercentBps += Delta(out)
	return out
}

// AutoBalance sets the edited bucket to newValue and redistributes the
// difference according to strategy so the total stays at 10000 bps.
// Lists with fewer than two buckets, or an unknown editedID, pass through.
func AutoBalance(buckets []domain.Bucket, editedID string, newValue int, strategy domain.BalanceStrategy) []domain.Bucket {
	out := clone(buckets)
	if len(out) < 2 {
		return out
	}
	edited := indexOf(out, editedID)
	if edited < 0 {
		return out
	}
	newValue = clamp(newValue, 0, domain.TotalBps)

	switch strategy {
	case domain.StrategyProportional:
		balanceProportional(out, edited, newValue)
	default:
		balanceFlexible(out, edited, newValue)
	}
	return out
}

func balanceFlexible(out []domain.Bucket, edited, newValue int) {
	flex := flexibleIndex(out, edited)

	fixed := 0
	for i, b := range out {
		if i != edited && i != flex {
			fixed += b.PercentBps
		}
	}

	flexValue := domain.TotalBps - fixed - newValue
	clamped := clamp(flexValue, 0, domain.TotalBps)
	if clamped != flexValue {
		// The flexible bucket ran out of room; the edit gives way.
		newValue = domain.TotalBps - fixed - clamped
	}
	out[edited].PercentBps = newValue
	out[flex].PercentBps = clamped
}

func balanceProportional(out []domain.Bucket, edited, newValue int) {
	sumOthers := 0
	for i, b := range out {
		if i != edited {
			sumOthers += b.PercentBps
		}
	}

	out[edited].PercentBps = newValue
	diff := domain.TotalBps - (sumOthers + newValue)
	if sumOthers > 0 {
		for i := range out {
			if i == edited {
				continue
			}
			share := float64(diff) * float64(out[i].PercentBps) / float64(sumOthers)
			out[i].PercentBps += int(math.Round(share))
		}
	}

	absorbResidual(out, edited)
}

// absorbResidual puts the remaining delta on the last non-edited bucket,
// walking backwards when a bucket would go negative.
func absorbResidual(out []domain.Bucket, edited int) {
	residual := Delta(out)
	for i := len(out) - 1; i >= 0 && residual != 0; i-- {
		if i == edited {
			continue
		}
		next := out[i].PercentBps + residual
		if next < 0 {
			residual = next
			out[i].PercentBps = 0
			continue
		}
		out[i].PercentBps = next
		residual = 0
	}
}

// flexibleIndex picks the first flexible bucket other than the edited one,
// falling back to the first other bucket.
func flexibleIndex(buckets []domain.Bucket, edited int) int {
	for i, b := range buckets {
		if i != edited && b.IsFlexible {
			return i
		}
	}
	for i := range buckets {
		if i != edited {
			return i
		}
	}
	return -1
}

// PercentToBps converts a percentage to basis points, rounding to nearest.
func PercentToBps(percent float64) int {
	return int(math.Round(percent * 100))
}

// BpsToPercent converts basis points to a percentage.
func BpsToPercent(bps int) float64 {
	return math.Round(float64(bps)) / 100
}

func clone(buckets []domain.Bucket) []domain.Bucket {
	out := make([]domain.Bucket, len(buckets))
	copy(out, buckets)
	return out
}

func indexOf(buckets []domain.Bucket, id string) int {
	for i, b := range buckets {
		if b.BucketID == id {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
