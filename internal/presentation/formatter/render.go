package formatter

import (
	"io"
	"strings"

	"github.com/penwyp/go-apod-widget/internal/core/model"
	"github.com/penwyp/go-apod-widget/internal/presentation/layout"
)

// RenderFormatter draws each entry with the layout it would get in the widget
type RenderFormatter struct {
	param model.LayoutParam
}

func NewRenderFormatter(param model.LayoutParam) *RenderFormatter {
	return &RenderFormatter{param: param}
}

func (f *RenderFormatter) Format(w io.Writer, report Report) error {
	rendered := make([]string, 0, len(report.entries))
	for _, entry := range report.entries {
		_, out := layout.RenderEntry(entry, report.size, f.param)
		rendered = append(rendered, out)
	}
	_, err := io.WriteString(w, strings.Join(rendered, "\n\n")+"\n")
	return err
}
