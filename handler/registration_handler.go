package handler

import (
	"errors"

	"studytrack/model"
	"studytrack/services"
	"studytrack/usecase"
	"studytrack/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users *usecase.UserService
}

func NewAuthHandler(users *usecase.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var user model.User

	if err := c.ShouldBindJSON(&user); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "invalid request")
		return
	}

	if err := utils.Validate.Struct(&user); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	if err := h.users.CreateUser(c.Request.Context(), &user); err != nil {
		if errors.Is(err, usecase.ErrUsernameTaken) {
			utils.Conflict(c, err.Error())
			return
		}
		utils.TrackError("auth", "registration_failed")
		utils.BadRequest(c, err.Error())
		return
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "failed to generate token")
		return
	}

	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "failed to generate refresh token")
		return
	}

	utils.TrackAuthAttempt("success", "registration")
	utils.Created(c, gin.H{
		"message": "user registered successfully",
		"token":   token,
		"refresh": refreshToken,
	})
}
