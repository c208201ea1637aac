package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmaya/internal/core/application/usecases/commands"
	"farmaya/internal/core/domain/model/account"
	"farmaya/internal/pkg/errs"
)

type registerRequest struct {
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Nombre    string   `json:"nombre"`
	Telefono  string   `json:"telefono"`
	Direccion string   `json:"direccion"`
	Rol       string   `json:"rol"`
	Latitud   *float64 `json:"latitud"`
	Longitud  *float64 `json:"longitud"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	Nombre    string   `json:"nombre"`
	Telefono  string   `json:"telefono,omitempty"`
	Direccion string   `json:"direccion,omitempty"`
	Rol       string   `json:"rol"`
	Latitud   *float64 `json:"latitud,omitempty"`
	Longitud  *float64 `json:"longitud,omitempty"`
}

type sessionResponse struct {
	Token   string       `json:"token"`
	Usuario userResponse `json:"usuario"`
}

func userResponseFromDomain(user *account.User) userResponse {
	latitude, longitude := user.Coordinates()
	return userResponse{
		ID:        user.ID().String(),
		Email:     user.Email(),
		Nombre:    user.Name(),
		Telefono:  user.Phone(),
		Direccion: user.Address(),
		Rol:       user.Role().String(),
		Latitud:   latitude,
		Longitud:  longitude,
	}
}

// Register handles POST /api/register/. Validation failures come back keyed
// by field so the registration form can highlight each input.
func (s *Server) Register(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, detail("Cuerpo de la petición inválido."))
	}

	role, err := account.RoleFromString(req.Rol)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string][]string{
			"rol": {"Rol inválido. Valores permitidos: cliente, farmacia, repartidor."},
		})
	}

	cmd, err := commands.NewRegisterUserCommand(
		req.Email, req.Nombre, req.Telefono, req.Direccion,
		role, req.Password,
		req.Latitud, req.Longitud,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fieldErrors(err))
	}

	user, token, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return ctx.JSON(http.StatusBadRequest, map[string][]string{
				"email": {"Ya existe un usuario registrado con este email."},
			})
		}
		if fields := fieldErrors(err); len(fields) > 0 && fields["detail"] == nil {
			return ctx.JSON(http.StatusBadRequest, fields)
		}
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, sessionResponse{
		Token:   token,
		Usuario: userResponseFromDomain(user),
	})
}

// Login handles POST /api/login/.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, detail("Cuerpo de la petición inválido."))
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	user, token, err := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrValueIsInvalid) {
			return ctx.JSON(http.StatusBadRequest, detail("Credenciales inválidas."))
		}
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, sessionResponse{
		Token:   token,
		Usuario: userResponseFromDomain(user),
	})
}
