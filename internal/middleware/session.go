package middleware

import (
	"errors"
	"fmt"

	"github.com/deppfellow/items-api/internal/database"
	"github.com/labstack/echo/v4"
)

// SessionKey stores the request's database session on the Echo context.
const SessionKey = "db_session"

var errNoSession = errors.New("no database session on request context")

// SessionMiddleware gives each request its own database session for the
// lifetime of the handler call.
type SessionMiddleware struct {
	provider database.SessionProvider
}

func NewSessionMiddleware(provider database.SessionProvider) *SessionMiddleware {
	return &SessionMiddleware{provider: provider}
}

// Scoped acquires a session before the handler runs and releases it when
// the handler returns, whether it succeeded, failed or panicked.
func (sm *SessionMiddleware) Scoped() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, err := sm.provider.Acquire(c.Request().Context())
			if err != nil {
				return fmt.Errorf("session middleware: %w", err)
			}
			defer session.Release()

			c.Set(SessionKey, session)
			defer c.Set(SessionKey, nil)

			return next(c)
		}
	}
}

// GetSession returns the session acquired by Scoped.
func GetSession(c echo.Context) (database.DBTX, error) {
	if session, ok := c.Get(SessionKey).(database.Session); ok && session != nil {
		return session, nil
	}
	return nil, errNoSession
}
