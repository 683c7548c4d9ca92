package analytics

// ChartSpec 声明式图表描述
// 由前端图表库（ECharts）负责渲染，本包只生成、不再读取
type ChartSpec struct {
	ChartType  string   `json:"chartType"` // "scatter" / "bar"
	Title      string   `json:"title"`
	XAxis      string   `json:"xAxis,omitempty"`
	YAxis      string   `json:"yAxis,omitempty"`
	Height     int      `json:"height,omitempty"` // 渲染高度提示（像素）
	Categories []string `json:"categories,omitempty"`
	Series     []Series `json:"series"`
	Colors     []string `json:"colors,omitempty"`
	ShowLegend bool     `json:"showLegend"`
}

// Series 单条数据系列
// 散点图填充 Points（x, y 坐标对），柱状图填充 Values（按 Categories 顺序）
type Series struct {
	Name   string       `json:"name"`
	Points [][2]float64 `json:"points,omitempty"`
	Values []float64    `json:"values,omitempty"`
}

// PointCount 返回全部系列的数据点总数
func (s *ChartSpec) PointCount() int {
	n := 0
	for _, sr := range s.Series {
		n += len(sr.Points) + len(sr.Values)
	}
	return n
}

// defaultColors 系列默认配色
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}
