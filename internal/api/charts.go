package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"winedash/internal/analytics"
	"winedash/internal/bindings"
)

// GetChart 按输出槽位构建图表
// GET /api/charts/:slot?x_axis=...&y_axis=...&color_encode=...&multi_select=a,b,c
//
// 输入值从查询参数按绑定声明的输入槽位名采集，按位置传入构建函数。
// 非法成分选择返回 400，由前端以内联提示展示，不影响进程。
func (h *Handler) GetChart(c *gin.Context) {
	slot := c.Param("slot")
	binding, ok := h.registry[slot]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "未知图表槽位: " + slot})
		return
	}

	// GetQuery 保留“存在但为空”的信息：清空多选后必须走空选择错误路径，
	// 而不是悄悄回落到默认成分
	values := make([]bindings.Value, len(binding.Inputs))
	for i, name := range binding.Inputs {
		raw, ok := c.GetQuery(name)
		values[i] = bindings.Value{Raw: raw, Set: ok}
	}

	spec, err := binding.Build(h.ctx, values)
	if err != nil {
		var fieldErr *analytics.InvalidFieldError
		if errors.As(err, &fieldErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fieldErr.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, spec)
}
