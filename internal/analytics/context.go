package analytics

import "winedash/internal/dataset"

// Context 进程级只读分析上下文
// 启动时构建一次，此后所有图表构建只读取、不修改
type Context struct {
	Table    *dataset.Table
	Averages []Average
}

// NewContext 加载后的工作表 + 一次性派生的均值表
func NewContext(table *dataset.Table) *Context {
	return &Context{
		Table:    table,
		Averages: BuildAverages(table),
	}
}
