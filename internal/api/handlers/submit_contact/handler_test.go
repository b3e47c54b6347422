package submit_contact

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/studio-service/internal/service/portfolio/models"
	"github.com/m04kA/studio-service/pkg/logger"
)

type fakePortfolio struct {
	submitted *models.ContactRequest
}

func (f *fakePortfolio) SubmitContact(_ context.Context, req *models.ContactRequest) error {
	f.submitted = req
	return nil
}

func post(svc *fakePortfolio, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	return w
}

func TestHandler_Created(t *testing.T) {
	svc := &fakePortfolio{}
	w := post(svc, `{"name":"Jane","email":"jane@example.com","project_type":"Wedding","message":"Hello!"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"Thank you for your message! I will get back to you soon."}`, w.Body.String())
	require.NotNil(t, svc.submitted)
	assert.Equal(t, "Wedding", svc.submitted.ProjectType)
}

func TestHandler_FieldErrors(t *testing.T) {
	svc := &fakePortfolio{}
	w := post(svc, `{"name":"","email":"not-an-email"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"name"`)
	assert.Contains(t, body, `"email"`)
	assert.Contains(t, body, `"message"`)
	assert.Nil(t, svc.submitted)
}
