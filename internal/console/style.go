package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerBoxStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.NormalBorder()).
			Foreground(lipgloss.Color("6")).
			PaddingLeft(1).
			PaddingRight(1)

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("2"))

	greyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("3"))
)

// Printer renders styled output, or unstyled text when plain mode is on
// (the --plain flag, or a terminal that can't take ANSI sequences).
type Printer struct {
	out   io.Writer
	plain bool
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer, plain bool) *Printer {
	return &Printer{out: out, plain: plain}
}

// Plain reports whether styled rendering is disabled.
func (p *Printer) Plain() bool {
	return p.plain
}

func (p *Printer) render(style lipgloss.Style, msg string) {
	if p.plain {
		fmt.Fprintln(p.out, msg)
		return
	}
	fmt.Fprintln(p.out, style.Render(msg))
}

// Printf writes unstyled formatted text.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes an unstyled line.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// Success writes a bold green line.
func (p *Printer) Success(msg string) {
	p.render(successStyle, msg)
}

// Warning writes a bold yellow line.
func (p *Printer) Warning(msg string) {
	p.render(warningStyle, msg)
}

// Error writes a bold red line.
func (p *Printer) Error(msg string) {
	p.render(errorStyle, msg)
}

// Grey writes a dimmed line.
func (p *Printer) Grey(msg string) {
	p.render(greyStyle, msg)
}

// Box writes msg inside a bordered box, or between rules in plain mode.
func (p *Printer) Box(msg string) {
	if p.plain {
		rule := "======================================================================"
		fmt.Fprintln(p.out, rule)
		fmt.Fprintln(p.out, msg)
		fmt.Fprintln(p.out, rule)
		return
	}
	fmt.Fprintln(p.out, headerBoxStyle.Render(msg))
}
