package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"winedash/internal/analytics"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Records     int      `json:"records"`     // 记录总数
	Ingredients int      `json:"ingredients"` // 成分数
	WineTypes   []string `json:"wineTypes"`   // 酒类标签
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Records:     len(h.ctx.Table.Records),
		Ingredients: len(h.ctx.Table.Ingredients),
		WineTypes:   h.ctx.Table.WineTypes(),
	})
}

// ingredientsResponse 成分列表与各控件默认值
type ingredientsResponse struct {
	Ingredients []string        `json:"ingredients"`
	Defaults    controlDefaults `json:"defaults"`
}

type controlDefaults struct {
	XAxis       string   `json:"x_axis"`
	YAxis       string   `json:"y_axis"`
	MultiSelect []string `json:"multi_select"`
}

// ListIngredients 获取成分列表，前端据此填充下拉控件
// GET /api/ingredients
func (h *Handler) ListIngredients(c *gin.Context) {
	c.JSON(http.StatusOK, ingredientsResponse{
		Ingredients: h.ctx.Table.Ingredients,
		Defaults: controlDefaults{
			XAxis:       analytics.DefaultXAxis,
			YAxis:       analytics.DefaultYAxis,
			MultiSelect: analytics.DefaultBarIngredients(),
		},
	})
}
