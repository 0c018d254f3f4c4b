package handler

import (
	"log"

	"studytrack/model"
	"studytrack/services"
	"studytrack/utils"

	"github.com/gin-gonic/gin"
	"github.com/mileusna/useragent"
)

func (h *AuthHandler) Login(c *gin.Context) {
	var loginReq model.LoginRequest

	if err := c.ShouldBindJSON(&loginReq); err != nil {
		utils.TrackError("auth", "invalid_request")
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "Invalid Request")
		return
	}

	user, err := h.users.FindUserByUsername(c.Request.Context(), loginReq.Username)
	if err != nil {
		utils.TrackError("auth", "user_lookup")
		utils.TrackAuthAttempt("failure", "user_lookup")
		utils.Unauthorized(c, "Invalid username")
		return
	}
	if user == nil {
		utils.TrackAuthAttempt("failure", "user_not_found")
		utils.Unauthorized(c, "Invalid username")
		return
	}

	checkPassword, err := services.VerifyPassword(user.Password, loginReq.Password)
	if err != nil {
		utils.TrackError("auth", "password_verification")
		utils.TrackAuthAttempt("failure", "password_verification_error")
		utils.Unauthorized(c, "Incorrect Password")
		return
	}
	if !checkPassword {
		utils.TrackAuthAttempt("failure", "invalid_password")
		utils.Unauthorized(c, "Incorrect Password")
		return
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Failed to generate token")
		return
	}

	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	device := describeDevice(c.GetHeader("User-Agent"))
	log.Printf("user %s logged in from %s", user.UserID, device)

	utils.TrackAuthAttempt("success", "password")
	utils.Success(c, gin.H{
		"token":   token,
		"refresh": refreshToken,
		"device":  device,
	})
}

func describeDevice(uaHeader string) string {
	ua := useragent.Parse(uaHeader)
	switch {
	case ua.Name == "" && ua.OS == "":
		return "unknown device"
	case ua.OS == "":
		return ua.Name
	default:
		return ua.Name + " on " + ua.OS
	}
}
