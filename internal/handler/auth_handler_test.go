package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pips-site-api/internal/models"
	appErrors "github.com/noah-isme/pips-site-api/pkg/errors"
)

type authServiceStub struct {
	resp    *models.LoginResponse
	err     error
	lastReq models.LoginRequest
}

func (s *authServiceStub) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	s.lastReq = req
	return s.resp, s.err
}

func TestAuthHandlerLogin(t *testing.T) {
	svc := &authServiceStub{resp: &models.LoginResponse{AccessToken: "token", ExpiresIn: 3600}}
	h := NewAuthHandler(svc)

	c, w := newContext(http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"secret"}`)
	c.Request.Header.Set("User-Agent", "test-agent")
	h.Login(c)

	require.Equal(t, http.StatusOK, w.Code)
	var res models.LoginResponse
	decode(t, w, &res)
	assert.Equal(t, "token", res.AccessToken)
	assert.Equal(t, "admin@example.com", svc.lastReq.Email)
	assert.Equal(t, "test-agent", svc.lastReq.UserAgent)
}

func TestAuthHandlerLoginErrors(t *testing.T) {
	h := NewAuthHandler(&authServiceStub{err: appErrors.ErrInvalidCredentials})

	c, w := newContext(http.MethodPost, "/auth/login", `{"email":`)
	h.Login(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = newContext(http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"bad"}`)
	h.Login(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := decode(t, w, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestAuthHandlerMe(t *testing.T) {
	h := NewAuthHandler(&authServiceStub{})

	c, w := newContext(http.MethodGet, "/admin/me", "")
	h.Me(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	c, w = newContext(http.MethodGet, "/admin/me", "")
	asAdmin(c)
	h.Me(c)
	require.Equal(t, http.StatusOK, w.Code)
	var info models.UserInfo
	decode(t, w, &info)
	assert.Equal(t, models.RoleAdmin, info.Role)
	assert.Equal(t, "admin@example.com", info.Email)
}
