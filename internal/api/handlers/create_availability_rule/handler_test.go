package create_availability_rule

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/studio-service/internal/service/availability"
	"github.com/m04kA/studio-service/internal/service/availability/models"
	"github.com/m04kA/studio-service/pkg/logger"
)

type fakeService struct {
	err error
}

func (f fakeService) Create(_ context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.RuleResponse{ID: 4, Weekday: req.Weekday, StartTime: req.StartTime + ":00", EndTime: req.EndTime + ":00", IsAvailable: true}, nil
}

func post(svc fakeService, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	return w
}

func TestHandler_Created(t *testing.T) {
	w := post(fakeService{}, `{"weekday":0,"start_time":"09:00","end_time":"17:00"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":4`)
	assert.Contains(t, w.Body.String(), `"start_time":"09:00:00"`)
}

func TestHandler_FieldValidation(t *testing.T) {
	w := post(fakeService{}, `{"weekday":9,"specific_date":"24.12.2025"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"weekday"`)
	assert.Contains(t, body, `"specific_date"`)
	assert.Contains(t, body, `"start_time"`)
}

func TestHandler_RuleRejected(t *testing.T) {
	err := fmt.Errorf("%w: domain: invalid availability rule: start_time must be before end_time", availability.ErrInvalidInput)
	w := post(fakeService{err: err}, `{"weekday":0,"start_time":"18:00","end_time":"09:00"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"start_time must be before end_time"}`, w.Body.String())
}
