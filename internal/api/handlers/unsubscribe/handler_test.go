package unsubscribe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/studio-service/internal/service/newsletter"
	"github.com/m04kA/studio-service/internal/service/newsletter/models"
	"github.com/m04kA/studio-service/pkg/logger"
)

type fakeNewsletter struct {
	err error
}

func (f fakeNewsletter) Unsubscribe(_ context.Context, _ *models.UnsubscribeRequest) error {
	return f.err
}

func TestHandler(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(fakeNewsletter{}, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"jane@example.com"}`)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Successfully unsubscribed from newsletter."}`, w.Body.String())

	w = httptest.NewRecorder()
	NewHandler(fakeNewsletter{err: newsletter.ErrSubscriberNotFound}, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"ghost@example.com"}`)))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
