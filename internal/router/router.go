package router

import (
	"github.com/gin-gonic/gin"
	"github.com/insightjournal/internal/auth"
	"github.com/insightjournal/internal/db"
	"github.com/insightjournal/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由。
func SetupRouter(api *handler.API, tokens *auth.TokenIssuer) *gin.Engine {
	r := gin.Default()

	apiGroup := r.Group("/api")
	{
		// 公共读写接口，无需认证
		apiGroup.GET("/articles", api.GetArticles)
		apiGroup.GET("/articles/:id", api.GetArticle)
		apiGroup.POST("/articles/submit", api.SubmitArticle)
		apiGroup.GET("/analytics", api.GetAnalytics)
		apiGroup.POST("/comments", api.CreateComment)
		apiGroup.GET("/comments/:article_id", api.GetComments)

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/signup", api.Signup)
			authGroup.POST("/login", api.Login)
		}

		// 审核接口要求 moderator 或 admin 角色
		moderation := apiGroup.Group("/moderation")
		moderation.Use(handler.RequireRoles(tokens, db.RoleModerator, db.RoleAdmin))
		{
			moderation.GET("/submissions", api.ListSubmissions)
			moderation.GET("/comments", api.ListPendingComments)
			moderation.POST("/comments/:id/:action", api.DecideComment)
			moderation.POST("/:id/:action", api.DecideSubmission)
		}
	}

	return r
}
