package handler

import (
	"github.com/labstack/echo/v4"

	"mados/internal/usecase"
	"mados/pkg/response"
)

type UserHandler struct {
	userUseCase      *usecase.UserUseCase
	communityUseCase *usecase.CommunityUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase, communityUseCase *usecase.CommunityUseCase) *UserHandler {
	return &UserHandler{
		userUseCase:      userUseCase,
		communityUseCase: communityUseCase,
	}
}

type updateProfileRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	PhoneNumber       string `json:"phone_number"`
	Address           string `json:"address"`
	Gender            string `json:"gender"`
	DateOfBirth       string `json:"date_of_birth"`
	ProfilePictureURL string `json:"profile_picture_url" validate:"omitempty,url"`
}

type updateInterestsRequest struct {
	Interests []string `json:"interests"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	profile, err := h.userUseCase.GetProfile(c.Request().Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

func (h *UserHandler) GetMyProfile(c echo.Context) error {
	userID := currentUserID(c)
	profile, err := h.userUseCase.GetProfile(c.Request().Context(), userID, userID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), currentUserID(c), usecase.UpdateProfileInput{
		Name:              req.Name,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		Address:           req.Address,
		Gender:            req.Gender,
		DateOfBirth:       req.DateOfBirth,
		ProfilePictureURL: req.ProfilePictureURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateInterests(c echo.Context) error {
	var req updateInterestsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateInterests(c.Request().Context(), currentUserID(c), req.Interests)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) ToggleFollow(c echo.Context) error {
	result, err := h.userUseCase.ToggleFollow(c.Request().Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}

func (h *UserHandler) GetFollowers(c echo.Context) error {
	return h.followList(c, usecase.FollowListFollowers)
}

func (h *UserHandler) GetFollowing(c echo.Context) error {
	return h.followList(c, usecase.FollowListFollowing)
}

func (h *UserHandler) followList(c echo.Context, kind string) error {
	users, err := h.userUseCase.FollowList(c.Request().Context(), c.Param("id"), kind)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, users)
}

func (h *UserHandler) GetPosts(c echo.Context) error {
	posts, err := h.communityUseCase.UserPosts(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, posts)
}
