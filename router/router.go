package router

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"Inspection_Tracker_Backend/controllers"
	"Inspection_Tracker_Backend/db"
	"Inspection_Tracker_Backend/middleware"
)

func Setup(repo *db.Repo, staticDir string) *gin.Engine {
	r := gin.Default()

	// 允许前端跨域；预检 OPTIONS 由 cors 中间件直接 204
	useCORS(r)
	r.Use(middleware.RequestID())

	r.GET("/healthz", controllers.Health)

	rc := controllers.NewRecordController(repo)
	bc := controllers.NewBulkController(repo)

	api := r.Group("/api")
	{
		api.GET("/options", controllers.Options)
		api.GET("/template.csv", bc.DownloadTemplate)

		recs := api.Group("/records")
		{
			recs.GET("", rc.List)
			recs.GET("/:id", rc.Get)

			// 写操作：management 只读；删除和批量导入只给 admin
			recs.POST("", middleware.WriteAccess(), rc.Create)
			recs.PUT("/:id", middleware.WriteAccess(), rc.Update)
			recs.POST("/bulk-status", middleware.WriteAccess(), bc.UpdateStatus)
			recs.POST("/bulk-upload", middleware.AdminOnly("Only admin can bulk upload"), bc.Upload)
			recs.DELETE("/:id", middleware.AdminOnly("Only admin can delete"), rc.Delete)
		}
	}

	// 其余路径走静态页面
	r.NoRoute(staticHandler(staticDir))

	return r
}

func useCORS(r *gin.Engine) {
	cfg := cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}
	r.Use(cors.New(cfg))
}

// 页面别名；除此之外静态根目录下任何已存在的文件也直接回
var staticPages = map[string]string{
	"/":               "index.html",
	"/index.html":     "index.html",
	"/form.html":      "form.html",
	"/dashboard.html": "dashboard.html",
	"/styles.css":     "styles.css",
	"/app.js":         "app.js",
}

func staticHandler(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqPath := c.Request.URL.Path

		// 未命中的 API 路径保持 JSON 404
		if reqPath == "/api" || strings.HasPrefix(reqPath, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		name, ok := staticPages[reqPath]
		if !ok {
			cleaned := path.Clean("/" + reqPath)
			if strings.Contains(cleaned, "..") {
				c.String(http.StatusNotFound, "Not found")
				return
			}
			name = strings.TrimPrefix(cleaned, "/")
		}

		full := filepath.Join(staticDir, filepath.FromSlash(name))
		info, err := os.Stat(full)
		if err != nil || info.IsDir() {
			c.String(http.StatusNotFound, "Not found")
			return
		}
		// Content-Type 由扩展名推断（http.ServeFile）
		c.File(full)
	}
}
