package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic/config"
	"clinic/internal/delivery/http/middleware"
	"clinic/internal/delivery/http/validator"
	"clinic/internal/infra/auth"
	"clinic/internal/infra/persistence/memory"
	"clinic/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAccountTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}

	repo := memory.NewAccountRepository()
	hasher := auth.NewBcryptHasher(cfg)
	uc := impl.NewAccountService(repo, hasher, logger)
	h := NewAccountHandler(uc, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/api/login", h.Login)
	e.POST("/api/users", h.Register)
	e.GET("/api/users", h.List)

	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAccountHandler_RegisterAndLogin(t *testing.T) {
	e := newAccountTestServer(t)

	rec := postJSON(e, "/api/users", `{"username":"drsmith","password":"s3cret","role":"Doctor","name":"Dr. Smith"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "drsmith")
	assert.NotContains(t, rec.Body.String(), "s3cret")
	assert.NotContains(t, rec.Body.String(), "$2a$")

	rec = postJSON(e, "/api/login", `{"username":"drsmith","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dr. Smith")
	assert.NotContains(t, rec.Body.String(), "$2a$")
}

func TestAccountHandler_LoginFailuresAreUniform(t *testing.T) {
	e := newAccountTestServer(t)

	rec := postJSON(e, "/api/users", `{"username":"drsmith","password":"s3cret","role":"Doctor"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	wrongPassword := postJSON(e, "/api/login", `{"username":"drsmith","password":"nope"}`)
	unknownHandle := postJSON(e, "/api/login", `{"username":"ghost","password":"s3cret"}`)

	// Both failure modes must be indistinguishable to the caller.
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownHandle.Code)
	assert.Contains(t, wrongPassword.Body.String(), "Invalid credentials")
	assert.Equal(t, wrongPassword.Body.String(), unknownHandle.Body.String())
}

func TestAccountHandler_DuplicateHandleConflicts(t *testing.T) {
	e := newAccountTestServer(t)

	rec := postJSON(e, "/api/users", `{"username":"drsmith","password":"s3cret","role":"Doctor"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(e, "/api/users", `{"username":"drsmith","password":"other","role":"Admin"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username already exists")
}

func TestAccountHandler_RegisterRejectsMissingFields(t *testing.T) {
	e := newAccountTestServer(t)

	rec := postJSON(e, "/api/users", `{"username":"drsmith"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestAccountHandler_RegisterRejectsMalformedBody(t *testing.T) {
	e := newAccountTestServer(t)

	rec := postJSON(e, "/api/users", `{"username":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAccountHandler_ListNeverExposesHashes(t *testing.T) {
	e := newAccountTestServer(t)

	rec := postJSON(e, "/api/users", `{"username":"drsmith","password":"s3cret","role":"Doctor"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = postJSON(e, "/api/users", `{"username":"frontdesk","password":"hunter2","role":"Receptionist"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	out := httptest.NewRecorder()
	e.ServeHTTP(out, req)

	require.Equal(t, http.StatusOK, out.Code)
	body := out.Body.String()
	assert.Contains(t, body, "drsmith")
	assert.Contains(t, body, "frontdesk")
	assert.NotContains(t, body, "$2a$")
	assert.NotContains(t, body, "password")
}
