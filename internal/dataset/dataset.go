package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"
)

//go:embed wine.csv
var rawWineCSV []byte

// targetColumn 目标列名（整数类别索引）
const targetColumn = "target"

// targetNames 目标索引到酒类标签的映射
var targetNames = []string{"class_0", "class_1", "class_2"}

// Record 一条葡萄酒测量记录：全部成分数值 + 酒类标签
type Record struct {
	Values   map[string]float64 `json:"values"`
	WineType string             `json:"wineType"`
}

// Table 工作表：按原始顺序排列的记录，以及稳定的成分列表
// 加载后视为只读，进程生命周期内不再修改
type Table struct {
	Records     []Record
	Ingredients []string
}

// Load 解析内置葡萄酒数据集并构建工作表
// 数据内置于二进制中，无需任何路径或网络配置；解析失败视为致命错误
func Load() (*Table, error) {
	df := dataframe.ReadCSV(bytes.NewReader(rawWineCSV), dataframe.HasHeader(true))
	if df.Err != nil {
		return nil, fmt.Errorf("解析内置数据集失败: %w", df.Err)
	}

	names := df.Names()
	targetIdx := -1
	ingredients := make([]string, 0, len(names))
	for i, name := range names {
		if name == targetColumn {
			targetIdx = i
			continue
		}
		ingredients = append(ingredients, name)
	}
	if targetIdx < 0 {
		return nil, fmt.Errorf("内置数据集缺少目标列 %q", targetColumn)
	}

	records := make([]Record, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		values := make(map[string]float64, len(ingredients))
		for j, name := range names {
			if j == targetIdx {
				continue
			}
			v := df.Elem(i, j).Float()
			if math.IsNaN(v) {
				return nil, fmt.Errorf("第 %d 行成分 %q 数值缺失", i+1, name)
			}
			values[name] = v
		}

		t := int(df.Elem(i, targetIdx).Float())
		if t < 0 || t >= len(targetNames) {
			return nil, fmt.Errorf("第 %d 行目标索引非法: %d", i+1, t)
		}

		records = append(records, Record{
			Values:   values,
			WineType: targetNames[t],
		})
	}

	return &Table{
		Records:     records,
		Ingredients: ingredients,
	}, nil
}

// HasIngredient 判断字段名是否为有效成分
func (t *Table) HasIngredient(name string) bool {
	for _, ing := range t.Ingredients {
		if ing == name {
			return true
		}
	}
	return false
}

// WineTypes 返回数据中出现过的酒类标签（字典序）
func (t *Table) WineTypes() []string {
	seen := make(map[string]bool)
	types := make([]string, 0, len(targetNames))
	for _, r := range t.Records {
		if !seen[r.WineType] {
			seen[r.WineType] = true
			types = append(types, r.WineType)
		}
	}
	sort.Strings(types)
	return types
}
