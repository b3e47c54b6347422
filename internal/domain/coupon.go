package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType kind of coupon discount
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

var hundred = decimal.NewFromInt(100)

// Coupon is a discount code applicable to shop orders
type Coupon struct {
	ID            int64
	Code          string
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
	MinPurchase   *decimal.Decimal
	ValidFrom     *time.Time
	ValidUntil    *time.Time
	IsActive      bool
	UsageLimit    *int
	UsedCount     int
	CreatedAt     time.Time
}

// Check validates the coupon for a subtotal at the moment now.
// Expiry is checked first so an expired coupon is reported as expired even when inactive.
func (c *Coupon) Check(now time.Time, subtotal decimal.Decimal) error {
	if c.ValidUntil != nil && now.After(*c.ValidUntil) {
		return ErrCouponExpired
	}
	if !c.IsActive {
		return ErrCouponInactive
	}
	if c.ValidFrom != nil && now.Before(*c.ValidFrom) {
		return ErrCouponNotYetValid
	}
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return ErrCouponUsageExceeded
	}
	if c.MinPurchase != nil && subtotal.LessThan(*c.MinPurchase) {
		return ErrCouponBelowMinimum
	}
	return nil
}

// Discount сумма скидки: не отрицательная и не больше subtotal
func (c *Coupon) Discount(subtotal decimal.Decimal) decimal.Decimal {
	if !subtotal.IsPositive() {
		return decimal.Zero
	}

	var discount decimal.Decimal
	switch c.DiscountType {
	case DiscountPercentage:
		discount = subtotal.Mul(c.DiscountValue).Div(hundred).Round(2)
	case DiscountFixed:
		discount = c.DiscountValue
	default:
		return decimal.Zero
	}

	if discount.IsNegative() {
		return decimal.Zero
	}
	return decimal.Min(discount, subtotal)
}

// NormalizeCouponCode приводит код к виду, в котором он хранится
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValidDiscountType проверяет тип скидки
func IsValidDiscountType(t DiscountType) bool {
	return t == DiscountPercentage || t == DiscountFixed
}
