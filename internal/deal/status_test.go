package deal

import (
	"errors"
	"testing"
	"time"

	"github.com/glowmart/admin-service/internal/model"
)

func sampleDeal(mod func(*model.Deal)) *model.Deal {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	d := &model.Deal{
		OriginalPrice:     100,
		DealPrice:         60,
		StartTime:         now.Add(-time.Hour),
		EndTime:           now.Add(time.Hour),
		TotalQuantity:     10,
		SoldQuantity:      0,
		RemainingQuantity: 10,
		IsActive:          true,
	}
	if mod != nil {
		mod(d)
	}
	return d
}

var evalNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestEvaluateStatus(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*model.Deal)
		want Status
	}{
		{"live deal", nil, StatusActive},
		{"inactive", func(d *model.Deal) { d.IsActive = false }, StatusInactive},
		{"upcoming", func(d *model.Deal) {
			d.StartTime = evalNow.Add(time.Minute)
			d.EndTime = evalNow.Add(2 * time.Hour)
		}, StatusUpcoming},
		{"expired", func(d *model.Deal) {
			d.StartTime = evalNow.Add(-2 * time.Hour)
			d.EndTime = evalNow.Add(-time.Minute)
		}, StatusExpired},
		{"sold out", func(d *model.Deal) {
			d.SoldQuantity = 10
			d.RemainingQuantity = 0
		}, StatusSoldOut},
		// Inactivity dominates every time signal.
		{"inactive beats expired", func(d *model.Deal) {
			d.IsActive = false
			d.EndTime = evalNow.Add(-time.Hour)
		}, StatusInactive},
		{"inactive beats upcoming", func(d *model.Deal) {
			d.IsActive = false
			d.StartTime = evalNow.Add(time.Hour)
		}, StatusInactive},
		// Expiry outranks sold-out.
		{"expired beats sold out", func(d *model.Deal) {
			d.EndTime = evalNow.Add(-time.Minute)
			d.RemainingQuantity = 0
		}, StatusExpired},
		{"negative remaining is sold out", func(d *model.Deal) {
			d.RemainingQuantity = -1
		}, StatusSoldOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := sampleDeal(tt.mod)
			got := EvaluateStatus(d, evalNow)
			if got != tt.want {
				t.Fatalf("EvaluateStatus = %q, want %q", got, tt.want)
			}
			// Pure: same inputs, same output.
			if again := EvaluateStatus(d, evalNow); again != got {
				t.Fatalf("EvaluateStatus not deterministic: %q then %q", got, again)
			}
		})
	}
}

func TestTimeRemaining(t *testing.T) {
	now := evalNow
	tests := []struct {
		name string
		end  time.Time
		want string
	}{
		{"days and hours", now.Add(49*time.Hour + 30*time.Minute), "2d 1h"},
		{"days and minutes", now.Add(48*time.Hour + 5*time.Minute), "2d 5m"},
		{"hours and minutes", now.Add(3*time.Hour + 15*time.Minute), "3h 15m"},
		{"minutes only", now.Add(42 * time.Minute), "42m"},
		{"under a minute", now.Add(30 * time.Second), "0m"},
		{"exactly now is expired", now, "Expired"},
		{"past is expired", now.Add(-time.Second), "Expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeRemaining(tt.end, now); got != tt.want {
				t.Fatalf("TimeRemaining = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name     string
		original float64
		deal     float64
		want     int
		wantErr  bool
	}{
		{"half off", 100, 50, 50, false},
		{"one percent", 100, 99, 1, false},
		{"rounds to nearest", 3, 2, 33, false},
		{"rounds up", 3, 1, 67, false},
		{"deal above original", 100, 100.01, 0, true},
		{"deal equals original", 100, 100, 0, true},
		{"zero prices", 0, 0, 0, true},
		{"negative deal price", 100, -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DiscountPercent(tt.original, tt.deal)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPricing) {
					t.Fatalf("err = %v, want ErrInvalidPricing", err)
				}
				if got != 0 {
					t.Fatalf("invalid input returned %d, want 0", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("DiscountPercent: %v", err)
			}
			if got != tt.want {
				t.Fatalf("DiscountPercent = %d, want %d", got, tt.want)
			}
		})
	}
}

// The end-to-end fixture from the authoring flow: a deal created an hour into
// its window at 100 → 60 with stock left must read back active at 40% off.
func TestLiveDealFixture(t *testing.T) {
	d := sampleDeal(nil)

	discount, err := DiscountPercent(d.OriginalPrice, d.DealPrice)
	if err != nil {
		t.Fatalf("DiscountPercent: %v", err)
	}
	if discount != 40 {
		t.Fatalf("discount = %d, want 40", discount)
	}
	if got := EvaluateStatus(d, evalNow); got != StatusActive {
		t.Fatalf("status = %q, want %q", got, StatusActive)
	}
}
