// Package output formats supportctl results for the terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/localnerve/supportdash/internal/taxonomy"
)

// ColorMode represents color output mode
type ColorMode int

const (
	// ColorAuto enables colors based on environment (default)
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever forces colors off
	ColorNever
)

// ParseColorMode parses a string into a ColorMode
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
	}
}

// ResolveColors determines whether to use colors based on mode and environment
func ResolveColors(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		if os.Getenv("TERM") == "dumb" {
			return false
		}
		return !color.NoColor
	}
}

// Printer handles formatted output to the terminal
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// NewPrinter creates a printer writing results to out and diagnostics to errOut.
func NewPrinter(out, errOut io.Writer, useColors bool) *Printer {
	return &Printer{out: out, err: errOut, useColors: useColors}
}

// Out is where results are written.
func (p *Printer) Out() io.Writer {
	return p.out
}

// Info prints an informational message
func (p *Printer) Info(format string, args ...interface{}) {
	if p.useColors {
		p.paint(color.FgCyan).Fprintf(p.out, format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, format+"\n", args...)
	}
}

// Warning prints a warning message
func (p *Printer) Warning(format string, args ...interface{}) {
	if p.useColors {
		p.paint(color.FgYellow).Fprintf(p.err, "⚠ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.err, "[WARN] "+format+"\n", args...)
	}
}

// Error prints an error message
func (p *Printer) Error(format string, args ...interface{}) {
	if p.useColors {
		p.paint(color.FgRed).Fprintf(p.err, "✗ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.err, "[ERROR] "+format+"\n", args...)
	}
}

// Header prints a section header
func (p *Printer) Header(title string) {
	if p.useColors {
		p.paint(color.FgWhite, color.Bold).Fprintf(p.out, "\n%s\n", title)
		p.paint(color.FgWhite).Fprintf(p.out, "%s\n", strings.Repeat("─", len(title)))
	} else {
		fmt.Fprintf(p.out, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
	}
}

// StatusBadge renders a status with its label, colored by its taxonomy variant.
func (p *Printer) StatusBadge(status string) string {
	label := taxonomy.FormatStatus(status)
	if !p.useColors {
		return label
	}
	return p.paint(variantColor(taxonomy.VariantOf(status))...).Sprint(label)
}

// Sentiment colors a sentiment score: green above 0.5, yellow above 0, red otherwise.
func (p *Printer) Sentiment(score float64) string {
	text := fmt.Sprintf("%.2f", score)
	if !p.useColors {
		return text
	}
	switch {
	case score > 0.5:
		return p.paint(color.FgGreen).Sprint(text)
	case score > 0:
		return p.paint(color.FgYellow).Sprint(text)
	default:
		return p.paint(color.FgRed).Sprint(text)
	}
}

// Bold returns text in bold
func (p *Printer) Bold(text string) string {
	if p.useColors {
		return p.paint(color.Bold).Sprint(text)
	}
	return text
}

// paint returns a color that honours the printer's setting rather than the
// package-wide terminal detection.
func (p *Printer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.useColors {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func variantColor(v taxonomy.Variant) []color.Attribute {
	switch v {
	case taxonomy.VariantSuccess:
		return []color.Attribute{color.FgGreen}
	case taxonomy.VariantInfo:
		return []color.Attribute{color.FgCyan}
	case taxonomy.VariantWarning:
		return []color.Attribute{color.FgYellow}
	case taxonomy.VariantError:
		return []color.Attribute{color.FgRed, color.Bold}
	case taxonomy.VariantPurple:
		return []color.Attribute{color.FgMagenta}
	case taxonomy.VariantIndigo:
		return []color.Attribute{color.FgBlue}
	}
	return []color.Attribute{color.FgWhite}
}
