package config

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Display writes all fields to w in a fixed order: port, path, mode, zone,
// area. Styling is only applied when w is a terminal.
func (cfg Config) Display(w io.Writer) {
	renderer := lipgloss.NewRenderer(w)
	titleStyle := renderer.NewStyle().Bold(true)
	labelStyle := renderer.NewStyle().PaddingLeft(2).Faint(true)

	rows := [][2]string{
		{"Port", strconv.FormatUint(uint64(cfg.Port), 10)},
		{"Path", cfg.Path},
		{"Mode", cfg.Mode},
		{"Zone", strconv.FormatInt(int64(cfg.Zone), 10)},
		{"Area", cfg.Area},
	}

	fmt.Fprintln(w, titleStyle.Render("Current configuration:"))
	for _, row := range rows {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(row[0]+":"), row[1])
	}
}
