package list_availability_rules

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/studio-service/internal/service/availability/models"
	"github.com/m04kA/studio-service/pkg/logger"
)

type fakeAvailability struct {
	rules []models.RuleResponse
	err   error
}

func (f fakeAvailability) List(_ context.Context) ([]models.RuleResponse, error) {
	return f.rules, f.err
}

func serve(svc fakeAvailability) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/booking/availability", nil))
	return w
}

func TestHandler_ListsRules(t *testing.T) {
	friday := 4
	holiday := "2025-12-25"
	w := serve(fakeAvailability{rules: []models.RuleResponse{
		{ID: 1, Weekday: &friday, StartTime: "10:00:00", EndTime: "14:00:00", IsAvailable: true},
		{ID: 2, SpecificDate: &holiday, StartTime: "00:00:00", EndTime: "23:59:00", Notes: "Closed"},
	}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"id":1,"weekday":4,"specific_date":null,"start_time":"10:00:00","end_time":"14:00:00","is_available":true,"notes":""},
		{"id":2,"weekday":null,"specific_date":"2025-12-25","start_time":"00:00:00","end_time":"23:59:00","is_available":false,"notes":"Closed"}
	]`, w.Body.String())
}

func TestHandler_ServiceError(t *testing.T) {
	w := serve(fakeAvailability{err: errors.New("db down")})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}
