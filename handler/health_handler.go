package handler

import (
	"context"
	"time"

	"studytrack/services"
	"studytrack/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports storage connectivity and basic system load.
func HealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	mongoStatus := "up"
	if utils.MongoClient == nil || utils.MongoClient.Ping(ctx, nil) != nil {
		mongoStatus = "down"
	}

	redisStatus := "up"
	if services.TokenBlacklist == nil || !services.TokenBlacklist.IsConnected() {
		redisStatus = "down"
	}

	utils.Success(c, gin.H{
		"mongo":        mongoStatus,
		"redis":        redisStatus,
		"cpu_percent":  utils.GetCPUUsage(),
		"mem_percent":  utils.GetMemoryUsage(),
		"generated_at": time.Now(),
	})
}
