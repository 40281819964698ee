package auth

import (
	"context"

	"github.com/labstack/echo/v4"
)

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying the decoded token claims.
func WithPrincipal(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, principalKey{}, claims)
}

// PrincipalFrom returns the claims attached by the Guard.
func PrincipalFrom(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(principalKey{}).(*Claims)
	return claims, ok && claims != nil
}

// PrincipalFromEcho is PrincipalFrom for handlers.
func PrincipalFromEcho(c echo.Context) (*Claims, bool) {
	return PrincipalFrom(c.Request().Context())
}
