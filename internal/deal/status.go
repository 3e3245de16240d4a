package deal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/glowmart/admin-service/internal/model"
)

// Status is the lifecycle state of a deal at a point in time.
type Status string

const (
	StatusInactive Status = "inactive"
	StatusUpcoming Status = "upcoming"
	StatusExpired  Status = "expired"
	StatusSoldOut  Status = "sold_out"
	StatusActive   Status = "active"
)

// EvaluateStatus maps a deal and the current time to its lifecycle state.
// First match wins; inactivity dominates every time-window signal, so an
// inactive-but-expired deal reports inactive.
func EvaluateStatus(d *model.Deal, now time.Time) Status {
	switch {
	case !d.IsActive:
		return StatusInactive
	case now.Before(d.StartTime):
		return StatusUpcoming
	case now.After(d.EndTime):
		return StatusExpired
	case d.RemainingQuantity <= 0:
		return StatusSoldOut
	default:
		return StatusActive
	}
}

// TimeRemaining renders end - now as the largest two non-zero units among
// days, hours and minutes, or "Expired" when the difference is non-positive.
// The expiry boundary is inclusive: exactly zero renders "Expired".
func TimeRemaining(end, now time.Time) string {
	diff := end.Sub(now)
	if diff <= 0 {
		return "Expired"
	}

	days := int(diff.Hours()) / 24
	hours := int(diff.Hours()) % 24
	minutes := int(diff.Minutes()) % 60

	parts := []string{}
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if len(parts) == 0 {
		// Under a minute left.
		return "0m"
	}
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, " ")
}

// DiscountPercent derives the integer discount percentage from the two price
// inputs, rounded to the nearest whole number. A deal price that is not
// strictly below a positive original price is a validation failure, reported
// as ErrInvalidPricing with a zero percentage.
func DiscountPercent(originalPrice, dealPrice float64) (int, error) {
	if originalPrice <= 0 || dealPrice <= 0 || dealPrice >= originalPrice {
		return 0, ErrInvalidPricing
	}
	return int(math.Round((originalPrice - dealPrice) / originalPrice * 100)), nil
}
