package repl

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkostenko/aide/internal/engine"
)

// printer renders engine output with a little color. Result messages are
// printed verbatim; only the styling differs between success and failure.
type printer struct {
	bannerStyle   lipgloss.Style
	errorStyle    lipgloss.Style
	reminderStyle lipgloss.Style
}

func newPrinter() *printer {
	return &printer{
		bannerStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		errorStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		reminderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

func (p *printer) banner(s string) {
	fmt.Println(p.bannerStyle.Render(s))
}

func (p *printer) plain(s string) {
	fmt.Println(s)
}

func (p *printer) reminder(s string) {
	fmt.Println(p.reminderStyle.Render(s))
}

func (p *printer) result(res engine.Result) {
	if res.OK {
		fmt.Println(res.Message)
		return
	}
	fmt.Println(p.errorStyle.Render(res.Message))
}
