package bindings

import (
	"fmt"
	"strconv"
	"strings"

	"winedash/internal/analytics"
)

// 输出槽位名，与前端图表容器一一对应
const (
	SlotScatterChart = "scatter_chart"
	SlotBarChart     = "bar_chart"
)

// 输入槽位名，与前端控件一一对应
const (
	InputXAxis       = "x_axis"
	InputYAxis       = "y_axis"
	InputColorEncode = "color_encode"
	InputMultiSelect = "multi_select"
)

// Value 单个输入槽位的当前值
// Set 区分“显式设置为空”与“未设置”：多选控件清空全部选项时
// 值为空但 Set 为 true，此时不能回落到默认选择
type Value struct {
	Raw string
	Set bool
}

// BuildFunc 图表构建函数：按 Inputs 声明的顺序接收当前输入值
type BuildFunc func(ctx *analytics.Context, values []Value) (*analytics.ChartSpec, error)

// Binding 输出槽位绑定：声明所需输入槽位及对应的构建函数
// 宿主层（HTTP API）按槽位查找绑定，采集输入值后按位置传入
type Binding struct {
	Inputs []string
	Build  BuildFunc
}

// Registry 返回输出槽位到绑定的完整映射
func Registry() map[string]Binding {
	return map[string]Binding{
		SlotScatterChart: {
			Inputs: []string{InputXAxis, InputYAxis, InputColorEncode},
			Build:  buildScatter,
		},
		SlotBarChart: {
			Inputs: []string{InputMultiSelect},
			Build:  buildBar,
		},
	}
}

// buildScatter 解析散点图输入值：空值回落到默认坐标轴
// 坐标轴下拉控件不可清空，空值只可能意味着“未设置”
func buildScatter(ctx *analytics.Context, values []Value) (*analytics.ChartSpec, error) {
	if len(values) != 3 {
		return nil, fmt.Errorf("scatter_chart 需要 3 个输入值，收到 %d 个", len(values))
	}

	xField := values[0].Raw
	if xField == "" {
		xField = analytics.DefaultXAxis
	}
	yField := values[1].Raw
	if yField == "" {
		yField = analytics.DefaultYAxis
	}

	colorEncode := false
	if v := strings.TrimSpace(values[2].Raw); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("color_encode 取值非法: %q", values[2].Raw)
		}
		colorEncode = b
	}

	return analytics.BuildScatter(ctx, xField, yField, colorEncode)
}

// buildBar 解析柱状图输入值：multi_select 为逗号分隔的成分列表
// 未设置时回落到默认成分选择；显式设置为空表示清空了全部选项，
// 按空选择传入并由构建器返回可恢复的 InvalidFieldError
func buildBar(ctx *analytics.Context, values []Value) (*analytics.ChartSpec, error) {
	if len(values) != 1 {
		return nil, fmt.Errorf("bar_chart 需要 1 个输入值，收到 %d 个", len(values))
	}

	if !values[0].Set {
		return analytics.BuildBar(ctx, analytics.DefaultBarIngredients())
	}

	fields := []string{}
	if raw := strings.TrimSpace(values[0].Raw); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			fields = append(fields, strings.TrimSpace(f))
		}
	}

	return analytics.BuildBar(ctx, fields)
}
