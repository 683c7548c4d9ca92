package analytics

import "fmt"

// InvalidFieldError 非法字段选择：字段不在成分列表中，或选择为空
// 属于可恢复错误，由调用方（API 层）转为内联提示，不会中断进程
type InvalidFieldError struct {
	Field string // 为空表示成分选择为空
}

func (e *InvalidFieldError) Error() string {
	if e.Field == "" {
		return "成分选择不能为空"
	}
	return fmt.Sprintf("未知成分字段: %s", e.Field)
}
