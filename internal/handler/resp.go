package handler

import (
	"net/http"

	"Community_API/internal/middleware"
	"Community_API/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// 响应信封统一 {status, content?, message?}，错误键归一成 message

func respondData(c *gin.Context, code int, data any) {
	c.JSON(code, gin.H{
		"status":  true,
		"content": gin.H{"data": data},
	})
}

func respondAuth(c *gin.Context, code int, data any, token string) {
	c.JSON(code, gin.H{
		"status": true,
		"content": gin.H{
			"data": data,
			"meta": gin.H{"access_token": token},
		},
	})
}

func respondPage(c *gin.Context, data any, meta pkg.PageMeta) {
	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"content": gin.H{
			"meta": meta,
			"data": data,
		},
	})
}

func respondStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": true})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": false, "message": message})
}

// respondInternal 细节只进日志，响应保持笼统
func respondInternal(c *gin.Context, log zerolog.Logger, err error) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	respondError(c, http.StatusInternalServerError, "Internal server error")
}

func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserIDKey)
}
