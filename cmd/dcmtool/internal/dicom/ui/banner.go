// Package ui provides terminal presentation helpers for dcmtool.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"
)

// BannerStyle styles the ASCII startup banner.
var BannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#2e86ab")).
	Bold(true)

// PrintBanner prints the "dcmtool" ASCII art banner to stderr.
func PrintBanner() {
	banner := figure.NewFigure("dcmtool", "banner3", true)
	fmt.Fprintln(os.Stderr, BannerStyle.Render(banner.String()))
	fmt.Fprintln(os.Stderr)
}
