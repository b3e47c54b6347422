package delete_availability_rule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/studio-service/internal/service/availability"
	"github.com/m04kA/studio-service/pkg/logger"
)

type fakeService struct{}

func (fakeService) Delete(_ context.Context, id int64) error {
	if id != 5 {
		return availability.ErrRuleNotFound
	}
	return nil
}

func TestHandler(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/availability/{id}", NewHandler(fakeService{}, logger.NewNop()).Handle)

	tests := []struct {
		path   string
		status int
	}{
		{"/availability/5", http.StatusNoContent},
		{"/availability/6", http.StatusNotFound},
		{"/availability/five", http.StatusBadRequest},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, tt.path, nil))
		assert.Equal(t, tt.status, w.Code, tt.path)
	}
}
