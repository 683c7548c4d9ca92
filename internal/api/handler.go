package api

import (
	"github.com/gin-gonic/gin"

	"winedash/internal/analytics"
	"winedash/internal/bindings"
	"winedash/internal/exporter"
)

// Handler API 处理器
type Handler struct {
	ctx       *analytics.Context
	registry  map[string]bindings.Binding
	exporter  *exporter.Exporter
	downloads *exportDownloadStore
}

// NewHandler 创建 API 处理器
func NewHandler(ctx *analytics.Context, exp *exporter.Exporter) *Handler {
	return &Handler{
		ctx:       ctx,
		registry:  bindings.Registry(),
		exporter:  exp,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)
	// 成分列表与控件默认值
	router.GET("/ingredients", h.ListIngredients)

	// 图表构建（按输出槽位）
	router.GET("/charts/:slot", h.GetChart)

	// 数据导出
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
}
