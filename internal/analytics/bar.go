package analytics

// BarChartTitle 柱状图固定标题
const BarChartTitle = "Avg. Ingredients per Wine Type"

// barChartHeight 柱状图渲染高度提示
const barChartHeight = 600

// DefaultBarIngredients 柱状图默认成分选择
// 每次调用返回新切片，调用方可随意修改而不影响后续默认值
func DefaultBarIngredients() []string {
	return []string{"alcohol", "malic_acid", "ash"}
}

// BuildBar 构建分组柱状图：横轴为酒类，每个酒类一组柱
// 组内柱按 fields 给定顺序排列，取该酒类对应成分的均值
func BuildBar(ctx *Context, fields []string) (*ChartSpec, error) {
	if len(fields) == 0 {
		return nil, &InvalidFieldError{}
	}
	for _, f := range fields {
		if !ctx.Table.HasIngredient(f) {
			return nil, &InvalidFieldError{Field: f}
		}
	}

	categories := make([]string, 0, len(ctx.Averages))
	for _, avg := range ctx.Averages {
		categories = append(categories, avg.WineType)
	}

	series := make([]Series, 0, len(fields))
	for _, f := range fields {
		values := make([]float64, 0, len(ctx.Averages))
		for _, avg := range ctx.Averages {
			values = append(values, avg.Values[f])
		}
		series = append(series, Series{Name: f, Values: values})
	}

	return &ChartSpec{
		ChartType:  "bar",
		Title:      BarChartTitle,
		XAxis:      "wine_type",
		YAxis:      "mean",
		Height:     barChartHeight,
		Categories: categories,
		Series:     series,
		Colors:     assignColors(len(series)),
		ShowLegend: true,
	}, nil
}
