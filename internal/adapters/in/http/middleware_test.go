package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"farmaya/internal/core/domain/model/account"
	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/pkg/errs"
)

// MockUserRepository is a mock implementation of the ports.UserRepository
// interface.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Add(ctx context.Context, user *account.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockUserRepository) AddSession(ctx context.Context, token string, userID kernel.UUID) error {
	args := m.Called(ctx, token, userID)
	return args.Error(0)
}

func (m *MockUserRepository) GetBySession(ctx context.Context, token string) (*account.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"should extract Bearer scheme token", "Bearer abc-123", "abc-123"},
		{"should extract Token scheme token", "Token abc-123", "abc-123"},
		{"should return empty for missing header", "", ""},
		{"should return empty for unknown scheme", "Basic abc-123", ""},
		{"should return empty for scheme without token", "Bearer", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bearerToken(tt.header))
		})
	}
}

func TestRequireUser(t *testing.T) {
	e := echo.New()

	newContext := func(authorization string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/api/pedidos/mis/", nil)
		if authorization != "" {
			req.Header.Set(echo.HeaderAuthorization, authorization)
		}
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	t.Run("should reject request without credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		server := &Server{sessions: repo}
		ctx, rec := newContext("")

		err := server.RequireUser(func(echo.Context) error {
			t.Fatal("handler must not run without credentials")
			return nil
		})(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		repo.AssertNotCalled(t, "GetBySession")
	})

	t.Run("should reject unknown session token", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetBySession", mock.Anything, "expired-token").
			Return(nil, errs.NewObjectNotFoundError("token", "expired-token")).Once()
		server := &Server{sessions: repo}
		ctx, rec := newContext("Bearer expired-token")

		err := server.RequireUser(func(echo.Context) error {
			t.Fatal("handler must not run with an unknown token")
			return nil
		})(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		repo.AssertExpectations(t)
	})

	t.Run("should resolve the session user for the handler", func(t *testing.T) {
		user, err := account.NewUser(
			kernel.NewUUID(), "ana@example.com", "Ana", "", "",
			account.Cliente, "hashed-password")
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("GetBySession", mock.Anything, "valid-token").Return(user, nil).Once()
		server := &Server{sessions: repo}
		ctx, _ := newContext("Token valid-token")

		var seen *account.User
		err = server.RequireUser(func(handlerCtx echo.Context) error {
			seen = currentUser(handlerCtx)
			return handlerCtx.NoContent(http.StatusOK)
		})(ctx)

		require.NoError(t, err)
		require.NotNil(t, seen)
		assert.True(t, seen.ID().IsEqual(user.ID()))
		repo.AssertExpectations(t)
	})
}

func TestWriteError_StatusMapping(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"should map invalid value to 400", errs.NewValueIsInvalidError("estado"), http.StatusBadRequest},
		{"should map missing value to 400", errs.NewValueIsRequiredError("items"), http.StatusBadRequest},
		{"should map denied action to 403", errs.NewNotAllowedError("revisar recetas"), http.StatusForbidden},
		{"should map missing object to 404", errs.NewObjectNotFoundError("pedido", "x"), http.StatusNotFound},
		{"should map write race to 409", errs.NewConflictError("pedido"), http.StatusConflict},
		{"should map unknown errors to 500", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			err := writeError(e.NewContext(req, rec), tt.err)

			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.Code)
			assert.Contains(t, rec.Body.String(), "detail")
		})
	}
}
