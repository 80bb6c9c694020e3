// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"github.com/tfdoctor/tfdoctor/internal/check"
	"github.com/tfdoctor/tfdoctor/internal/config"
)

// glyphs per finding status. Details carry no glyph and render indented.
var glyphs = map[check.Status]string{
	check.StatusPass: "✓",
	check.StatusWarn: "!",
	check.StatusFail: "✗",
	check.StatusInfo: "·",
}

// Printer writes styled diagnostic output to a single destination. It is the
// only place console text is produced; checks hand it structured results.
type Printer struct {
	w     io.Writer
	color bool

	header lipgloss.Style
	detail lipgloss.Style
	banner lipgloss.Style
	status map[check.Status]lipgloss.Style
}

// NewPrinter constructs a Printer. When color is false every style collapses
// to plain text, which also keeps test assertions free of escape sequences.
func NewPrinter(w io.Writer, color bool) *Printer {
	if w == nil {
		w = os.Stdout
	}

	p := &Printer{
		w:      w,
		color:  color,
		header: lipgloss.NewStyle().Bold(true),
		detail: lipgloss.NewStyle(),
		banner: lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder()),
		status: map[check.Status]lipgloss.Style{
			check.StatusPass: lipgloss.NewStyle(),
			check.StatusWarn: lipgloss.NewStyle(),
			check.StatusFail: lipgloss.NewStyle(),
			check.StatusInfo: lipgloss.NewStyle(),
		},
	}

	if color {
		pass, warn, fail, info := getColors("colors")
		p.status[check.StatusPass] = p.status[check.StatusPass].Foreground(pass)
		p.status[check.StatusWarn] = p.status[check.StatusWarn].Foreground(warn)
		p.status[check.StatusFail] = p.status[check.StatusFail].Foreground(fail).Bold(true)
		p.status[check.StatusInfo] = p.status[check.StatusInfo].Foreground(info)
		p.banner = p.banner.Foreground(pass)
	}

	return p
}

// Section prints the numbered header that precedes each check.
func (p *Printer) Section(n int, total int, title string) {
	fmt.Fprintf(p.w, "\n%s\n", p.render(p.header, fmt.Sprintf("[%d/%d] %s", n, total, title)))
}

// Result prints every finding of one check: glyph lines for findings, an
// indented line for details.
func (p *Printer) Result(res check.Result) {
	for _, l := range res.Lines {
		if l.Status == "" {
			fmt.Fprintf(p.w, "      %s\n", p.render(p.detail, l.Text))
			continue
		}
		style := p.status[l.Status]
		fmt.Fprintf(p.w, "  %s %s\n", p.render(style, glyphs[l.Status]), l.Text)
	}
}

// Checklist prints a titled, numbered list, used for the failure causes, the
// remediation steps and the next-actions list.
func (p *Printer) Checklist(title string, items []string) {
	fmt.Fprintf(p.w, "\n%s\n", p.render(p.header, title))
	for i, item := range items {
		fmt.Fprintf(p.w, "  %d. %s\n", i+1, item)
	}
}

// Banner prints a bordered banner line.
func (p *Printer) Banner(text string) {
	fmt.Fprintf(p.w, "\n%s\n", p.render(p.banner, text))
}

// Summary prints the closing one-line-per-check table.
func (p *Printer) Summary(results []check.Result) {
	if len(results) == 0 {
		return
	}

	var rows [][]string
	for _, res := range results {
		rows = append(rows, []string{res.Title, strings.ToUpper(string(res.Status))})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if !p.color || row == table.HeaderRow || col != 1 || row >= len(results) {
				return p.detail
			}
			return p.status[results[row].Status]
		}).
		Rows(rows...)

	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, t)
}

// render applies a style only when color output is enabled.
func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

// getColors returns configured status colors. Each color is selected based on
// terminal background so that output is reasonably visible for all(?)
// terminal themes; explicit values in the config file win.
func getColors(key string) (pass, warn, fail, info color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	pass = resolveColor(key+".pass", "#007f00", "#00d700")
	warn = resolveColor(key+".warn", "#b08800", "#f6be00")
	fail = resolveColor(key+".fail", "#a00000", "#ff5f5f")
	info = resolveColor(key+".info", "#0088a0", "#00c8f0")

	return
}
