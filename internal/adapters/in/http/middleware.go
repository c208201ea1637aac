package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"farmaya/internal/core/domain/model/account"
	"farmaya/internal/core/domain/model/order"
)

const userContextKey = "farmaya.user"

// RequireUser resolves the bearer token from the Authorization header into
// the account it belongs to. Handlers behind this middleware can rely on
// currentUser never returning nil.
func (s *Server) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		token := bearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization))
		if token == "" {
			return ctx.JSON(http.StatusUnauthorized, detail("Credenciales no proporcionadas."))
		}

		user, err := s.sessions.GetBySession(ctx.Request().Context(), token)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, detail("Sesión inválida."))
		}

		ctx.Set(userContextKey, user)
		return next(ctx)
	}
}

func bearerToken(header string) string {
	for _, scheme := range []string{"Bearer ", "Token "} {
		if strings.HasPrefix(header, scheme) {
			return strings.TrimSpace(header[len(scheme):])
		}
	}
	return ""
}

func currentUser(ctx echo.Context) *account.User {
	user, _ := ctx.Get(userContextKey).(*account.User)
	return user
}

func currentActor(ctx echo.Context) (order.Actor, error) {
	return order.ActorForUser(currentUser(ctx))
}
