package router

import (
	"Community_API/internal/handler"
	"Community_API/internal/middleware"
	"Community_API/internal/pkg"

	"github.com/gin-gonic/gin"
)

func InitRouter(
	maker *pkg.TokenMaker,
	auth *handler.AuthHandler,
	community *handler.CommunityHandler,
	member *handler.MemberHandler,
	role *handler.RoleHandler,
) *gin.Engine {
	r := gin.Default()

	authRequired := middleware.AuthMiddleware(maker)

	// 认证相关接口
	authGroup := r.Group("/v1/auth")
	{
		authGroup.POST("/signup", auth.SignUp)
		authGroup.POST("/signin", auth.SignIn)
		authGroup.GET("/me", authRequired, auth.Me)
	}

	// 社区相关接口，列表公开，写操作要登录
	communityGroup := r.Group("/v1/community")
	{
		communityGroup.POST("", authRequired, community.Create)
		communityGroup.GET("", community.List)
		communityGroup.GET("/:id/members", community.Members)
		communityGroup.GET("/me/owner", authRequired, community.MyOwned)
		communityGroup.GET("/me/member", authRequired, community.MyJoined)
	}

	// 成员相关接口
	memberGroup := r.Group("/v1/member")
	memberGroup.Use(authRequired)
	{
		memberGroup.POST("", member.Create)
		memberGroup.DELETE("/:id", member.Remove)
	}

	// 角色相关接口
	roleGroup := r.Group("/v1/role")
	{
		roleGroup.POST("", authRequired, role.Create)
		roleGroup.GET("", role.List)
	}

	return r
}
