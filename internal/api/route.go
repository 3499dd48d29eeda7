package api

import (
	"Dotcreator/internal/api/middleware"
	"Dotcreator/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		artistGroup := apiGroup.Group("/artists")
		{
			artistGroup.GET("", group.ArtistHandler.ListArtists)
			artistGroup.GET("/:username", group.ArtistHandler.GetArtist)
			artistGroup.GET("/:username/trends/7d", group.ArtistHandler.GetTrends7Days)
			artistGroup.GET("/:username/trends/30d", group.ArtistHandler.GetTrends30Days)
		}

		suggestionGroup := apiGroup.Group("/suggestions")
		{
			// 收录申请对外开放
			suggestionGroup.POST("", group.SuggestionHandler.CreateSuggestion)

			// 审核需要登录 & 拥有 admin 角色
			adminGroup := suggestionGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles("ADMIN"))
			{
				adminGroup.PUT("/approve", group.SuggestionHandler.ApproveSuggestion)
				adminGroup.PUT("/reject", group.SuggestionHandler.RejectSuggestion)
			}
		}

		analyticsGroup := apiGroup.Group("/analytics")
		{
			analyticsGroup.GET("", group.AnalyticsHandler.GetAnalytics)

			adminGroup := analyticsGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles("ADMIN"))
			{
				adminGroup.GET("/job-runs/:job", group.AnalyticsHandler.GetJobRuns)
			}
		}
	}

	return r
}
