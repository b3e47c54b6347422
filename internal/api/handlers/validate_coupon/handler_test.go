package validate_coupon

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/studio-service/internal/domain"
	validateCoupon "github.com/m04kA/studio-service/internal/usecase/validate_coupon"
	"github.com/m04kA/studio-service/pkg/logger"
)

type fakeUseCase struct {
	err error
}

func (f fakeUseCase) Execute(_ context.Context, req *validateCoupon.Request) (*validateCoupon.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	discount := req.Subtotal.Mul(decimal.NewFromInt(10)).Div(decimal.NewFromInt(100)).Round(2)
	return &validateCoupon.Response{
		Code:          "SAVE10",
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(10),
		Subtotal:      req.Subtotal,
		Discount:      discount,
		Total:         req.Subtotal.Sub(discount),
	}, nil
}

func post(uc fakeUseCase, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	return w
}

func TestHandler_Valid(t *testing.T) {
	w := post(fakeUseCase{}, `{"code":"save10","subtotal":"100.00"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"valid": true,
		"code": "SAVE10",
		"discount_type": "percentage",
		"discount_value": "10.00",
		"subtotal": "100.00",
		"discount": "10.00",
		"total": "90.00"
	}`, w.Body.String())
}

func TestHandler_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"unknown code", validateCoupon.ErrCouponNotFound, http.StatusNotFound, `{"error":"Invalid coupon code"}`},
		{"expired", fmt.Errorf("%w: %w", validateCoupon.ErrCouponRejected, domain.ErrCouponExpired), http.StatusBadRequest, `{"error":"This coupon has expired."}`},
		{"below minimum", fmt.Errorf("%w: %w", validateCoupon.ErrCouponRejected, domain.ErrCouponBelowMinimum), http.StatusBadRequest, `{"error":"Order subtotal is below the minimum purchase for this coupon."}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(fakeUseCase{err: tt.err}, `{"code":"OLD","subtotal":50}`)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestHandler_MissingCode(t *testing.T) {
	w := post(fakeUseCase{}, `{"subtotal":"10"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code"`)
}

func TestHandler_InvalidInputMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		body string
	}{
		{"blank code", validateCoupon.ErrCodeRequired, `{"error":"Coupon code is required"}`},
		{"negative subtotal", validateCoupon.ErrNegativeSubtotal, `{"error":"Subtotal must not be negative"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(fakeUseCase{err: tt.err}, `{"code":"   ","subtotal":"10"}`)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}
