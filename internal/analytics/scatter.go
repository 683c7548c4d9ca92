package analytics

import "strings"

// 散点图默认坐标轴
const (
	DefaultXAxis = "alcohol"
	DefaultYAxis = "malic_acid"
)

// BuildScatter 构建散点图：每条记录一个点，坐标取所选两个成分的数值
// colorEncode 为 true 时按酒类拆分系列，便于前端按颜色区分
func BuildScatter(ctx *Context, xField, yField string, colorEncode bool) (*ChartSpec, error) {
	if !ctx.Table.HasIngredient(xField) {
		return nil, &InvalidFieldError{Field: xField}
	}
	if !ctx.Table.HasIngredient(yField) {
		return nil, &InvalidFieldError{Field: yField}
	}

	spec := &ChartSpec{
		ChartType:  "scatter",
		Title:      capitalize(xField) + " vs " + capitalize(yField),
		XAxis:      xField,
		YAxis:      yField,
		ShowLegend: colorEncode,
	}

	if colorEncode {
		spec.Series = scatterSeriesByWineType(ctx, xField, yField)
	} else {
		points := make([][2]float64, 0, len(ctx.Table.Records))
		for _, r := range ctx.Table.Records {
			points = append(points, [2]float64{r.Values[xField], r.Values[yField]})
		}
		spec.Series = []Series{{Name: "samples", Points: points}}
	}

	spec.Colors = assignColors(len(spec.Series))
	return spec, nil
}

// scatterSeriesByWineType 按酒类标签拆分散点系列（字典序，与均值表一致）
func scatterSeriesByWineType(ctx *Context, xField, yField string) []Series {
	byType := make(map[string][][2]float64)
	for _, r := range ctx.Table.Records {
		byType[r.WineType] = append(byType[r.WineType], [2]float64{r.Values[xField], r.Values[yField]})
	}

	series := make([]Series, 0, len(byType))
	for _, label := range ctx.Table.WineTypes() {
		series = append(series, Series{Name: label, Points: byType[label]})
	}
	return series
}

// capitalize 首字母大写、其余小写，用于图表标题
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}
