package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var sectionTitles = map[Operator]string{
	OpFan:       "Fan Control",
	OpThermal:   "Thermal Policy",
	OpBacklight: "Keyboard Backlight",
}

// printUsage writes the usage text. Styling is dropped when w is not a
// terminal.
func printUsage(w io.Writer) {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Foreground(lipgloss.Color("2"))
	heading := r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true).Underline(true)
	option := r.NewStyle().Foreground(lipgloss.Color("1"))

	entry := func(b *strings.Builder, opt, desc string) {
		fmt.Fprintf(b, "\t%s%s%s\n", option.Render(opt), strings.Repeat(" ", max(1, 20-len(opt))), desc)
	}

	var b strings.Builder
	b.WriteString(title.Render("Perfmode - Manage performance mode of your asus laptop"))
	b.WriteString("\n\n")
	b.WriteString(heading.Render("Usage") + "\n")
	b.WriteString("\tperfmode -option arg\n\n")
	b.WriteString(heading.Render("Options") + "\n\n")
	for _, f := range operatorFlags {
		b.WriteString(heading.Render(sectionTitles[f.operator]) + "\n")
		for _, t := range f.vocab {
			if t.op == Get {
				continue
			}
			entry(&b, f.long+" "+t.long, t.desc)
		}
		b.WriteString("\n")
	}
	b.WriteString(heading.Render("Common option for all kinds of operations") + "\n")
	entry(&b, "get", "get the current thermal, led, fan mode")
	b.WriteString("\n")
	b.WriteString(heading.Render("Help") + "\n")
	entry(&b, "-help", "Display help")
	io.WriteString(w, b.String())
}
