package debugui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/engine"
)

// StateInspector lists every value held by the frame's store.
type StateInspector struct{}

func NewStateInspector() *StateInspector {
	return &StateInspector{}
}

func (si *StateInspector) Render(frame *engine.UpdateFrame) {
	if !imgui.BeginV("State Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Values: %d", frame.Store.Len()))
	imgui.Separator()

	frame.Store.Each(func(typ reflect.Type, value any) bool {
		if imgui.TreeNodeStr(typ.String()) {
			for _, line := range describeValue(reflect.ValueOf(value)) {
				imgui.BulletText(line)
			}
			imgui.TreePop()
		}
		return true
	})

	imgui.End()
}

// describeValue flattens a value into "Path: value" lines, descending into
// nested structs.
func describeValue(val reflect.Value) []string {
	var lines []string
	appendFields(&lines, "", val)
	return lines
}

func appendFields(lines *[]string, prefix string, val reflect.Value) {
	if val.Kind() != reflect.Struct {
		*lines = append(*lines, formatLine(prefix, val))
		return
	}

	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		name := field.Name
		if prefix != "" {
			name = prefix + "." + name
		}

		fieldVal := val.Field(field.Index)
		if field.IsStruct {
			appendFields(lines, name, fieldVal)
			continue
		}
		*lines = append(*lines, formatLine(name, fieldVal))
	}
}

func formatLine(name string, val reflect.Value) string {
	var text string
	switch val.Kind() {
	case reflect.Float32, reflect.Float64:
		text = fmt.Sprintf("%.2f", val.Float())
	case reflect.Array, reflect.Slice:
		parts := make([]string, val.Len())
		for i := range parts {
			parts[i] = fmt.Sprint(val.Index(i).Interface())
		}
		text = "[" + strings.Join(parts, " ") + "]"
	default:
		text = fmt.Sprint(val.Interface())
	}

	if name == "" {
		return text
	}
	return name + ": " + text
}
