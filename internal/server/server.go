package server

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"winedash/internal/analytics"
	"winedash/internal/api"
	"winedash/internal/config"
	"winedash/internal/exporter"
)

//go:embed web
var staticFiles embed.FS

// Server HTTP 服务器
type Server struct {
	router  *gin.Engine
	handler *api.Handler
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig, ctx *analytics.Context) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	exportDir, err := config.EnsureExportDir(cfg)
	if err != nil {
		exportDir = cfg.Data.ExportDir
	}

	s := &Server{
		router:  gin.Default(),
		handler: api.NewHandler(ctx, exporter.New(exportDir)),
	}

	s.setupRoutes(devMode)

	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// API 路由
	apiGroup := s.router.Group("/api")
	{
		s.handler.RegisterRoutes(apiGroup)
	}

	// 前端页面
	if devMode {
		// 开发模式：代理到前端开发服务器
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	} else {
		// 生产模式：使用 embed 的仪表盘页面
		sub, _ := fs.Sub(staticFiles, "web")

		serveIndex := func(c *gin.Context) {
			data, err := fs.ReadFile(sub, "index.html")
			if err != nil {
				c.Status(http.StatusNotFound)
				return
			}
			c.Data(http.StatusOK, "text/html; charset=utf-8", data)
		}

		s.router.GET("/", serveIndex)
		s.router.NoRoute(serveIndex)
	}
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
