package router

import (
	"net/http"
	"time"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/handler"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(uploadDir, uploadURLPath string) *gin.Engine {
	r := gin.Default()

	// 跨域完全放开，管理面板与公开站点都从浏览器直连本服务
	corsConfig := cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:              []string{"Authorization", "Content-Type"},
		OptionsResponseStatusCode: http.StatusOK,
		MaxAge:                    12 * time.Hour,
	}
	r.Use(cors.New(corsConfig))

	api := handler.NewAPI(db.DB, uploadDir, uploadURLPath)

	// 上传的图片作为静态资源对外提供
	r.Static(uploadURLPath, uploadDir)

	r.GET("/ping", api.HealthCheck)

	// 公开接口：前台页面数据与联系表单
	public := r.Group("/api")
	{
		public.GET("/content", api.GetContent)
		public.GET("/projects", api.GetProjects)
		public.GET("/skills", api.GetSkills)
		public.GET("/theme", api.GetTheme)
		public.POST("/messages", api.CreateMessage)
	}

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(api.AuthRequired())
		{
			auth.PUT("/content", api.UpdateContent)

			auth.POST("/projects", api.CreateProject)
			auth.PUT("/projects", api.UpdateProject)
			auth.DELETE("/projects", api.DeleteProject)

			auth.POST("/skills", api.CreateSkill)
			auth.PUT("/skills", api.UpdateSkill)
			auth.DELETE("/skills", api.DeleteSkill)

			auth.GET("/messages", api.ListMessages)
			auth.PUT("/messages", api.UpdateMessageRead)
			auth.DELETE("/messages", api.DeleteMessage)

			auth.PUT("/theme", api.UpdateTheme)

			auth.POST("/upload", api.UploadImage)
		}
	}

	// 未匹配的路由统一返回 JSON 404
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return r
}
