package exporter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"winedash/internal/analytics"
)

// 导出工作簿的 sheet 名称
const (
	sheetMeasurements = "Measurements"
	sheetAverages     = "Averages"
)

// wineTypeColumn 导出表中的酒类标签列名
const wineTypeColumn = "wine_type"

// Exporter 数据导出器：将工作表与均值表写入 Excel 工作簿
type Exporter struct {
	dir string
}

// New 创建导出器，dir 为导出文件目录
func New(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// Export 生成 xlsx 文件并返回其完整路径
// 文件名带随机 ID，避免并发导出互相覆盖
func (e *Exporter) Export(ctx *analytics.Context) (string, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := e.fillMeasurements(f, ctx); err != nil {
		return "", err
	}
	if err := e.fillAverages(f, ctx); err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("创建导出目录失败: %w", err)
	}

	path := filepath.Join(e.dir, fmt.Sprintf("wine-analysis-%s.xlsx", uuid.NewString()))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("保存导出文件失败: %w", err)
	}
	return path, nil
}

// fillMeasurements 写入全部原始测量记录
func (e *Exporter) fillMeasurements(f *excelize.File, ctx *analytics.Context) error {
	if err := f.SetSheetName(f.GetSheetName(0), sheetMeasurements); err != nil {
		return fmt.Errorf("重命名数据 sheet 失败: %w", err)
	}

	header := append(append([]string{}, ctx.Table.Ingredients...), wineTypeColumn)
	if err := writeHeader(f, sheetMeasurements, header); err != nil {
		return err
	}

	for i, r := range ctx.Table.Records {
		row := i + 2
		for col, ing := range ctx.Table.Ingredients {
			if err := setCell(f, sheetMeasurements, col+1, row, r.Values[ing]); err != nil {
				return err
			}
		}
		if err := setCell(f, sheetMeasurements, len(ctx.Table.Ingredients)+1, row, r.WineType); err != nil {
			return err
		}
	}
	return nil
}

// fillAverages 写入均值表：每个酒类一行
func (e *Exporter) fillAverages(f *excelize.File, ctx *analytics.Context) error {
	if _, err := f.NewSheet(sheetAverages); err != nil {
		return fmt.Errorf("创建均值 sheet 失败: %w", err)
	}

	header := append([]string{wineTypeColumn}, ctx.Table.Ingredients...)
	if err := writeHeader(f, sheetAverages, header); err != nil {
		return err
	}

	for i, avg := range ctx.Averages {
		row := i + 2
		if err := setCell(f, sheetAverages, 1, row, avg.WineType); err != nil {
			return err
		}
		for col, ing := range ctx.Table.Ingredients {
			if err := setCell(f, sheetAverages, col+2, row, avg.Values[ing]); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, header []string) error {
	for col, name := range header {
		if err := setCell(f, sheet, col+1, 1, name); err != nil {
			return err
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}
