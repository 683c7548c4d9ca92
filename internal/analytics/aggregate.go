package analytics

import (
	"sort"

	"winedash/internal/dataset"
)

// Average 某一酒类在全部成分上的算术平均值
type Average struct {
	WineType string             `json:"wineType"`
	Count    int                `json:"count"`
	Values   map[string]float64 `json:"values"`
}

// BuildAverages 按酒类分组并计算各成分均值
// 结果按酒类标签字典序排列，保证多次调用顺序一致
func BuildAverages(table *dataset.Table) []Average {
	sums := make(map[string]map[string]float64)
	counts := make(map[string]int)

	for _, r := range table.Records {
		if sums[r.WineType] == nil {
			sums[r.WineType] = make(map[string]float64, len(table.Ingredients))
		}
		for _, ing := range table.Ingredients {
			sums[r.WineType][ing] += r.Values[ing]
		}
		counts[r.WineType]++
	}

	labels := make([]string, 0, len(sums))
	for label := range sums {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	averages := make([]Average, 0, len(labels))
	for _, label := range labels {
		n := counts[label]
		values := make(map[string]float64, len(table.Ingredients))
		for _, ing := range table.Ingredients {
			values[ing] = sums[label][ing] / float64(n)
		}
		averages = append(averages, Average{
			WineType: label,
			Count:    n,
			Values:   values,
		})
	}
	return averages
}
