package middleware

import (
	"net/http"
	"regexp"

	"Community_API/internal/pkg"

	"github.com/gin-gonic/gin"
)

const ContextUserIDKey = "user_id"

// bearerShape "Bearer " + 三段 URL-safe base64，点号分隔
var bearerShape = regexp.MustCompile(`^Bearer ([A-Za-z0-9\-_=]+\.[A-Za-z0-9\-_=]+\.[A-Za-z0-9\-_.+/=]+)$`)

func AuthMiddleware(maker *pkg.TokenMaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		match := bearerShape.FindStringSubmatch(authHeader)
		if match == nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"status":  false,
				"message": "authorization header missing or malformed",
			})
			return
		}

		userID, err := maker.Parse(match[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  false,
				"message": "Invalid token.",
			})
			return
		}

		// 注入 user_id，后续 handler 取用
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}
