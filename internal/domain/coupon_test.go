package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/studio-service/pkg/ptr"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCoupon_Discount(t *testing.T) {
	tests := []struct {
		name     string
		coupon   Coupon
		subtotal string
		want     string
	}{
		{name: "percentage", coupon: Coupon{DiscountType: DiscountPercentage, DiscountValue: dec("10")}, subtotal: "100.00", want: "10"},
		{name: "percentage rounds to cents", coupon: Coupon{DiscountType: DiscountPercentage, DiscountValue: dec("15")}, subtotal: "19.99", want: "3"},
		{name: "fixed capped at subtotal", coupon: Coupon{DiscountType: DiscountFixed, DiscountValue: dec("15")}, subtotal: "10.00", want: "10"},
		{name: "fixed below subtotal", coupon: Coupon{DiscountType: DiscountFixed, DiscountValue: dec("5")}, subtotal: "42.50", want: "5"},
		{name: "percentage over 100 capped", coupon: Coupon{DiscountType: DiscountPercentage, DiscountValue: dec("150")}, subtotal: "20", want: "20"},
		{name: "zero subtotal", coupon: Coupon{DiscountType: DiscountFixed, DiscountValue: dec("5")}, subtotal: "0", want: "0"},
		{name: "negative value", coupon: Coupon{DiscountType: DiscountFixed, DiscountValue: dec("-5")}, subtotal: "10", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.coupon.Discount(dec(tt.subtotal))
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestCoupon_Check(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name    string
		coupon  Coupon
		wantErr error
	}{
		{name: "valid", coupon: Coupon{IsActive: true, ValidFrom: &past, ValidUntil: &future}},
		{name: "expired although active", coupon: Coupon{IsActive: true, ValidUntil: &past}, wantErr: ErrCouponExpired},
		{name: "expired and inactive reports expiry", coupon: Coupon{IsActive: false, ValidUntil: &past}, wantErr: ErrCouponExpired},
		{name: "inactive", coupon: Coupon{IsActive: false}, wantErr: ErrCouponInactive},
		{name: "not yet valid", coupon: Coupon{IsActive: true, ValidFrom: &future}, wantErr: ErrCouponNotYetValid},
		{name: "usage exhausted", coupon: Coupon{IsActive: true, UsageLimit: ptr.Ptr(3), UsedCount: 3}, wantErr: ErrCouponUsageExceeded},
		{name: "below minimum", coupon: Coupon{IsActive: true, MinPurchase: ptr.Ptr(dec("150"))}, wantErr: ErrCouponBelowMinimum},
		{name: "at minimum", coupon: Coupon{IsActive: true, MinPurchase: ptr.Ptr(dec("100"))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coupon.Check(now, dec("100"))
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeCouponCode(t *testing.T) {
	assert.Equal(t, "SPRING10", NormalizeCouponCode("  spring10 "))
}
