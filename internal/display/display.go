// Package display renders user-facing terminal output.
package display

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			PaddingTop(1).
			Foreground(lipgloss.Color("9"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			PaddingTop(1).
			Foreground(lipgloss.Color("2"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "21", Dark: "33"})
)

func Error(err error) {
	if err == nil {
		return
	}
	fmt.Println(errorStyle.Render(err.Error()))
}

func FatalErr(err error) {
	Error(err)
	os.Exit(1)
}

func Warning(msg string) {
	fmt.Println(warnStyle.Render("warning: " + msg))
}

func Header(text string) {
	fmt.Println(headerStyle.Render(text))
}

func Label(text string) {
	fmt.Println(labelStyle.Render(text))
}
