package create_order

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/studio-service/internal/domain"
	createOrder "github.com/m04kA/studio-service/internal/usecase/create_order"
	"github.com/m04kA/studio-service/pkg/logger"
)

type fakeUseCase struct {
	err     error
	lastReq *createOrder.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createOrder.Request) (*createOrder.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &createOrder.Response{Order: &domain.Order{
		ID:            1,
		OrderNumber:   "ORD-20250314-ABCDEF12",
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Status:        domain.OrderPending,
		Subtotal:      decimal.RequireFromString("60"),
		Discount:      decimal.Zero,
		Total:         decimal.RequireFromString("60"),
		CreatedAt:     time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
	}}, nil
}

func post(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	return w
}

func TestHandler_Created(t *testing.T) {
	uc := &fakeUseCase{}
	w := post(uc, `{"customer_name":"Jane","customer_email":"jane@example.com","items":[{"product_id":3,"quantity":2}]}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"order_number":"ORD-20250314-ABCDEF12"`)
	assert.Contains(t, w.Body.String(), `"total":"60.00"`)
	require.Len(t, uc.lastReq.Items, 1)
	assert.Equal(t, createOrder.Item{ProductID: 3, Quantity: 2}, uc.lastReq.Items[0])
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"missing details", createOrder.ErrInvalidInput, http.StatusBadRequest, `{"error":"Please provide customer details and cart items"}`},
		{"no products", createOrder.ErrNoValidProducts, http.StatusBadRequest, `{"error":"No valid products in cart"}`},
		{"unknown coupon", createOrder.ErrCouponNotFound, http.StatusBadRequest, `{"error":"Invalid coupon code"}`},
		{"expired coupon", fmt.Errorf("%w: %w", createOrder.ErrCouponRejected, domain.ErrCouponExpired), http.StatusBadRequest, `{"error":"This coupon has expired."}`},
		{"storage failure", createOrder.ErrInternal, http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(&fakeUseCase{err: tt.err}, `{"customer_name":"Jane","customer_email":"jane@example.com","items":[{"product_id":3}]}`)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestHandler_InvalidEmail(t *testing.T) {
	uc := &fakeUseCase{}
	w := post(uc, `{"customer_name":"Jane","customer_email":"nope","items":[{"product_id":3}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"customer_email"`)
	assert.Nil(t, uc.lastReq)
}
