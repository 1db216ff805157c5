package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/warungpo/preorder_api/internal/cache"
	"github.com/warungpo/preorder_api/internal/utils"
)

// HealthHandler reports liveness of the API and its backing services.
type HealthHandler struct {
	db    *sqlx.DB
	redis *cache.RedisClient
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(db *sqlx.DB, redis *cache.RedisClient) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := 200
	dbStatus := "up"
	if err := h.db.PingContext(ctx); err != nil {
		dbStatus = "down"
		status = 503
	}

	redisStatus := "up"
	if h.redis == nil {
		redisStatus = "disabled"
	} else if err := h.redis.Ping(ctx); err != nil {
		redisStatus = "down"
	}

	payload := gin.H{
		"database": dbStatus,
		"redis":    redisStatus,
	}
	if status != 200 {
		utils.Error(c, status, "SERVICE_UNAVAILABLE", "Dependency check failed")
		return
	}
	utils.Success(c, 200, "OK", payload)
}
