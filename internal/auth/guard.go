package auth

import (
	"regexp"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	apperrors "contactbook/internal/errors"
)

// ContextKey is the echo.Context key holding the verified *Claims.
const ContextKey = "principal"

var bearerPrefix = regexp.MustCompile(`(?i)^bearer\s+`)

// TokenVerifier is the verify half of TokenIssuer. Kept small so tests can fake it.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// Guard rejects requests without a valid bearer token and attaches the
// decoded principal to the request context otherwise.
type Guard struct {
	verifier TokenVerifier
}

// NewGuard creates a Guard backed by verifier.
func NewGuard(verifier TokenVerifier) *Guard {
	return &Guard{verifier: verifier}
}

// Middleware returns the echo middleware protecting a route group.
func (g *Guard) Middleware() echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		ContextKey:       ContextKey,
		TokenLookupFuncs: []middleware.ValuesExtractor{bearerToken},
		ParseTokenFunc: func(_ echo.Context, token string) (interface{}, error) {
			return g.verifier.Verify(token)
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return apperrors.ErrTokenMissing
			}
			return apperrors.ErrTokenInvalid
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(attachPrincipal(next))
	}
}

// bearerToken reads the Authorization header, stripping an optional case-insensitive "Bearer " prefix.
func bearerToken(c echo.Context) ([]string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return nil, apperrors.ErrTokenMissing
	}
	return []string{bearerPrefix.ReplaceAllString(header, "")}, nil
}

func attachPrincipal(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claims, ok := c.Get(ContextKey).(*Claims); ok {
			c.SetRequest(c.Request().WithContext(WithPrincipal(c.Request().Context(), claims)))
		}
		return next(c)
	}
}
