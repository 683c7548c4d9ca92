package api

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// downloadTokenTTL 导出下载令牌有效期
const downloadTokenTTL = 10 * time.Minute

// exportResponse 导出响应：前端拿到令牌后发起下载
type exportResponse struct {
	Token    string `json:"token"`
	FileName string `json:"fileName"`
}

// Export 生成 Excel 导出文件并返回下载令牌
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	path, err := h.exporter.Export(h.ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token := h.downloads.put(path, downloadTokenTTL)
	c.JSON(http.StatusOK, exportResponse{
		Token:    token,
		FileName: filepath.Base(path),
	})
}

// DownloadExport 按令牌下载导出文件
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下载令牌不存在或已过期"})
		return
	}

	c.FileAttachment(item.filePath, "wine-analysis.xlsx")
}
