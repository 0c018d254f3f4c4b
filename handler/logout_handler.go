package handler

import (
	"fmt"
	"strings"

	"studytrack/services"
	"studytrack/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func (h *AuthHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	accessToken := strings.TrimPrefix(authHeader, "Bearer ")

	// Validate the token format before blacklisting it
	_, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	refreshToken := c.GetHeader("Refresh-Token")
	if refreshToken == "" {
		utils.BadRequest(c, "Missing refresh token")
		return
	}

	if err := services.BlacklistTokens(accessToken, refreshToken); err != nil {
		utils.TrackError("auth", "logout_failed")
		utils.InternalError(c, "Failed to logout")
		return
	}

	utils.Success(c, gin.H{"message": "Successfully logged out"})
}
