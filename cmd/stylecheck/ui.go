package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/uistyle/css"
	"github.com/npillmayer/uistyle/dom/style"
	"github.com/npillmayer/uistyle/dom/style/cssom"
)

var (
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorDim    = lipgloss.Color("240")
	colorCyan   = lipgloss.Color("36")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "stylecheck",
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleSuccess.Render(iconSuccess), fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleWarning.Render(iconWarning), fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleError.Render(iconError), fmt.Sprintf(format, args...))
}

// swatch renders a small block in the color of c.
func swatch(c css.Color) string {
	col, _ := colorful.MakeColor(style.ColorOf(c, nil))
	return lipgloss.NewStyle().Background(lipgloss.Color(col.Hex())).Render("    ")
}

// printPalette lists every color declaration of a sheet together with a
// color swatch.
func printPalette(w io.Writer, sheet *cssom.StyleSheet) int {
	n := 0
	for _, r := range sheet.Rules() {
		for _, a := range r.Attributes {
			c, ok := a.Value.(css.Color)
			if !ok {
				continue
			}
			sel := r.Selectors.String()
			pad := strings.Repeat(" ", max(0, 28-len(sel)))
			fmt.Fprintf(w, "%s %s%s %s %s\n", swatch(c), sel, pad,
				styleDim.Render(a.Name), c)
			n++
		}
	}
	return n
}
