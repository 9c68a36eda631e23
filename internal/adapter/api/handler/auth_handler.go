package handler

import (
	"github.com/labstack/echo/v4"

	"mados/internal/adapter/api/middleware"
	"mados/internal/usecase"
	"mados/pkg/errors"
	"mados/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type loginRequest struct {
	Email string `json:"email" validate:"required"`
}

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

// SignUp leaves field checks to the use case so the messages match the form.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.SignUp(c.Request().Context(), usecase.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *AuthHandler) Me(c echo.Context) error {
	token, ok := middleware.BearerToken(c)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
	}

	user, err := h.authUseCase.CurrentUser(c.Request().Context(), token)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

// Logout has nothing to revoke; tokens are stateless and the client drops it.
func (h *AuthHandler) Logout(c echo.Context) error {
	return response.Success(c, map[string]bool{"logged_out": true})
}
