package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "contactbook/internal/errors"
	"contactbook/internal/model"
)

type fakeVerifier struct {
	claims *Claims
	err    error
	got    string
}

func (f *fakeVerifier) Verify(token string) (*Claims, error) {
	f.got = token
	return f.claims, f.err
}

func runGuard(t *testing.T, v TokenVerifier, header string, next echo.HandlerFunc) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/contacts/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return NewGuard(v).Middleware()(next)(c)
}

func mustNotRun(t *testing.T) echo.HandlerFunc {
	return func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	}
}

func TestGuard_MissingHeader(t *testing.T) {
	err := runGuard(t, &fakeVerifier{}, "", mustNotRun(t))

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
	assert.Equal(t, "Token is missing", appErr.Message)
}

func TestGuard_InvalidToken(t *testing.T) {
	v := &fakeVerifier{err: errors.New("signature is invalid")}

	err := runGuard(t, v, "Bearer garbage", mustNotRun(t))

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
	assert.Equal(t, "Invalid token", appErr.Message)
}

func TestGuard_ValidTokenAttachesPrincipal(t *testing.T) {
	want := &Claims{Payload: Payload{ID: 3, Name: "A", Email: "a@b.com", Role: model.RoleStandard}}

	for _, header := range []string{"Bearer tok", "bearer tok", "BEARER   tok", "tok"} {
		t.Run(header, func(t *testing.T) {
			v := &fakeVerifier{claims: want}
			called := false

			err := runGuard(t, v, header, func(c echo.Context) error {
				called = true
				got, ok := PrincipalFromEcho(c)
				require.True(t, ok)
				assert.Equal(t, want.Payload, got.Payload)
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, err)
			assert.True(t, called)
			assert.Equal(t, "tok", v.got)
		})
	}
}

func TestGuard_RoundTripWithJWTService(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	p := Payload{ID: 9, Name: "A", Email: "a@b.com", Role: model.RoleAdmin}
	token, err := svc.Sign(p)
	require.NoError(t, err)

	err = runGuard(t, svc, "Bearer "+token, func(c echo.Context) error {
		got, ok := PrincipalFromEcho(c)
		require.True(t, ok)
		assert.Equal(t, p, got.Payload)
		return nil
	})
	require.NoError(t, err)

	expired := NewJWTService("test-secret", time.Nanosecond)
	stale, err := expired.Sign(p)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	err = runGuard(t, svc, "Bearer "+stale, mustNotRun(t))
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestPrincipalFrom_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := PrincipalFrom(req.Context())
	assert.False(t, ok)
}
