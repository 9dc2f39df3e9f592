// Package ui renders registry tables, status lines, and the
// interactive picker/review widgets.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// ANSI 256 color palette
var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("73"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("71"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

	styleName   = lipgloss.NewStyle().Foreground(lipgloss.Color("71"))
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("73"))
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
)

// Logger carries scan diagnostics (unreadable dirs, skipped symlinks)
// to stderr, away from the result output on stdout.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func Infof(format string, args ...any) {
	fmt.Println(styleTitle.Render(fmt.Sprintf(format, args...)))
}

func Successf(format string, args ...any) {
	fmt.Println(styleSuccess.Render(fmt.Sprintf(format, args...)))
}

func Warnf(format string, args ...any) {
	fmt.Println(styleWarn.Render(fmt.Sprintf(format, args...)))
}

func Errorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, styleError.Render(fmt.Sprintf(format, args...)))
}

func Dimf(format string, args ...any) {
	fmt.Println(styleDim.Render(fmt.Sprintf(format, args...)))
}
