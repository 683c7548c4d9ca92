package bindings

import (
	"errors"
	"reflect"
	"testing"

	"winedash/internal/analytics"
	"winedash/internal/dataset"
)

func newContext(t *testing.T) *analytics.Context {
	t.Helper()
	table, err := dataset.Load()
	if err != nil {
		t.Fatalf("dataset.Load() failed: %v", err)
	}
	return analytics.NewContext(table)
}

// set 构造一个显式设置的输入值
func set(raw string) Value {
	return Value{Raw: raw, Set: true}
}

// TestRegistrySlots 测试注册表暴露且仅暴露两个输出槽位及其输入声明
func TestRegistrySlots(t *testing.T) {
	registry := Registry()

	if len(registry) != 2 {
		t.Fatalf("registry has %d slots, want 2", len(registry))
	}

	scatter, ok := registry[SlotScatterChart]
	if !ok {
		t.Fatal("registry missing scatter_chart slot")
	}
	wantInputs := []string{InputXAxis, InputYAxis, InputColorEncode}
	if !reflect.DeepEqual(scatter.Inputs, wantInputs) {
		t.Errorf("scatter inputs = %v, want %v", scatter.Inputs, wantInputs)
	}

	bar, ok := registry[SlotBarChart]
	if !ok {
		t.Fatal("registry missing bar_chart slot")
	}
	if !reflect.DeepEqual(bar.Inputs, []string{InputMultiSelect}) {
		t.Errorf("bar inputs = %v, want [multi_select]", bar.Inputs)
	}
}

// TestScatterBinding 测试散点图绑定：值按位置解析
func TestScatterBinding(t *testing.T) {
	ctx := newContext(t)
	binding := Registry()[SlotScatterChart]

	spec, err := binding.Build(ctx, []Value{set("ash"), set("hue"), set("true")})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if spec.Title != "Ash vs Hue" {
		t.Errorf("title = %q, want %q", spec.Title, "Ash vs Hue")
	}
	if !spec.ShowLegend {
		t.Error("color_encode=true should enable legend")
	}
}

// TestScatterBindingDefaults 测试未设置的输入值回落到默认坐标轴
func TestScatterBindingDefaults(t *testing.T) {
	ctx := newContext(t)
	binding := Registry()[SlotScatterChart]

	spec, err := binding.Build(ctx, []Value{{}, {}, {}})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if spec.Title != "Alcohol vs Malic_acid" {
		t.Errorf("title = %q, want default %q", spec.Title, "Alcohol vs Malic_acid")
	}
	if spec.ShowLegend {
		t.Error("unset color_encode should default to false")
	}
}

// TestScatterBindingBadBool 测试 color_encode 非法取值
func TestScatterBindingBadBool(t *testing.T) {
	ctx := newContext(t)
	binding := Registry()[SlotScatterChart]

	_, err := binding.Build(ctx, []Value{set("alcohol"), set("ash"), set("maybe")})
	if err == nil {
		t.Fatal("Build should fail on invalid color_encode value")
	}
}

// TestScatterBindingArity 测试输入值个数不匹配
func TestScatterBindingArity(t *testing.T) {
	ctx := newContext(t)
	binding := Registry()[SlotScatterChart]

	if _, err := binding.Build(ctx, []Value{set("alcohol")}); err == nil {
		t.Fatal("Build should fail on wrong value count")
	}
}

// TestBarBinding 测试柱状图绑定：逗号分隔列表按序解析
func TestBarBinding(t *testing.T) {
	ctx := newContext(t)
	binding := Registry()[SlotBarChart]

	spec, err := binding.Build(ctx, []Value{set("hue, ash,alcohol")})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	want := []string{"hue", "ash", "alcohol"}
	for i, s := range spec.Series {
		if s.Name != want[i] {
			t.Errorf("series[%d] = %s, want %s", i, s.Name, want[i])
		}
	}
}

// TestBarBindingDefault 测试未设置 multi_select 时使用默认成分
func TestBarBindingDefault(t *testing.T) {
	ctx := newContext(t)
	binding := Registry()[SlotBarChart]

	spec, err := binding.Build(ctx, []Value{{}})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	want := analytics.DefaultBarIngredients()
	if len(spec.Series) != len(want) {
		t.Fatalf("series count = %d, want %d", len(spec.Series), len(want))
	}
	for i, s := range spec.Series {
		if s.Name != want[i] {
			t.Errorf("series[%d] = %s, want %s", i, s.Name, want[i])
		}
	}
}

// TestBarBindingExplicitEmpty 测试显式清空 multi_select：
// 不回落到默认成分，而是作为空选择返回 InvalidFieldError
func TestBarBindingExplicitEmpty(t *testing.T) {
	ctx := newContext(t)
	binding := Registry()[SlotBarChart]

	spec, err := binding.Build(ctx, []Value{set("")})
	if spec != nil {
		t.Fatalf("empty selection built a chart with %d series, want error", len(spec.Series))
	}
	var fieldErr *analytics.InvalidFieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("error = %v, want *InvalidFieldError", err)
	}
	if fieldErr.Field != "" {
		t.Errorf("error field = %q, want empty (empty selection)", fieldErr.Field)
	}
}

// TestBarBindingUnknownField 测试非法成分透传 InvalidFieldError
func TestBarBindingUnknownField(t *testing.T) {
	ctx := newContext(t)
	binding := Registry()[SlotBarChart]

	_, err := binding.Build(ctx, []Value{set("bogus")})
	var fieldErr *analytics.InvalidFieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("error = %v, want *InvalidFieldError", err)
	}
}
