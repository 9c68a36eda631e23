package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"mados/internal/appstate"
	"mados/internal/domain/entity"
	"mados/internal/domain/service"
	"mados/pkg/errors"
)

const minPasswordLength = 6

type AuthUseCase struct {
	state    *appstate.State
	tokens   service.TokenService
	validate *validator.Validate
}

func NewAuthUseCase(state *appstate.State, tokens service.TokenService) *AuthUseCase {
	return &AuthUseCase{
		state:    state,
		tokens:   tokens,
		validate: validator.New(),
	}
}

type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

type AuthResult struct {
	User  entity.User `json:"user"`
	Token string      `json:"token"`
}

// Login looks the user up by email. Passwords are not checked.
func (uc *AuthUseCase) Login(ctx context.Context, email string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errors.Validation("Email harus diisi.")
	}

	user, ok := uc.state.UserByEmail(email)
	if !ok {
		return nil, errors.New("EMAIL_NOT_FOUND", "Email tidak ditemukan. Silakan coba lagi atau daftar.", http.StatusNotFound, nil)
	}

	return uc.startSession(user)
}

func (uc *AuthUseCase) SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" {
		return nil, errors.Validation("Nama dan email harus diisi.")
	}
	if err := uc.validate.Var(email, "email"); err != nil {
		return nil, errors.Validation("Format email tidak valid.")
	}
	if _, exists := uc.state.UserByEmail(email); exists {
		return nil, errors.Conflict(msgEmailRegistered)
	}
	if len(input.Password) < minPasswordLength {
		return nil, errors.Validation("Password minimal harus 6 karakter.")
	}

	user, ok := uc.state.SignUp(name, email)
	if !ok {
		return nil, errors.Conflict(msgEmailRegistered)
	}
	return uc.startSession(user)
}

// CurrentUser resolves a session token to its user.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	userID, err := uc.tokens.Verify(token)
	if err != nil {
		return nil, errors.Unauthorized("Sesi tidak valid atau sudah berakhir.", err)
	}
	user, ok := uc.state.User(userID)
	if !ok {
		return nil, errors.Unauthorized(msgLoginRequired, nil)
	}
	return &user, nil
}

func (uc *AuthUseCase) startSession(user entity.User) (*AuthResult, error) {
	uc.state.Session(user.ID).Touch()

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, errors.Internal("Failed to generate session token", err)
	}

	if fresh, ok := uc.state.User(user.ID); ok {
		user = fresh
	}
	return &AuthResult{User: user, Token: token}, nil
}
