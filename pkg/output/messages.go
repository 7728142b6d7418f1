package output

import (
	"errors"
	"fmt"
	"strings"
)

// Info prints an info message
func Info(msg string) {
	fmt.Println(valueStyle.Render("⋯ " + msg))
}

// Success prints a success message
func Success(msg string) {
	fmt.Println(successStyle.Render("✓ " + msg))
}

// Warning prints a warning message
func Warning(msg string) {
	fmt.Println(warningStyle.Render("⚠ " + msg))
}

// Heading prints a section title.
func Heading(msg string) {
	fmt.Println(headingStyle.Render(msg))
}

// KeyValue prints an aligned "key  value" line.
func KeyValue(key string, value string, width int) {
	pad := ""
	if n := width - len(key); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	fmt.Printf("  %s%s  %s\n", keyStyle.Render(key), pad, valueStyle.Render(value))
}

// Detailed is implemented by errors that carry extra lines for the operator.
type Detailed interface {
	Details() []string
}

// PrintError prints an error message in a panel, followed by any details.
func PrintError(err error) {
	var b strings.Builder
	b.WriteString(errorStyle.Render(fmt.Sprintf("✗ Error: %v", err)))
	var d Detailed
	if errors.As(err, &d) {
		for _, line := range d.Details() {
			b.WriteString("\n  ")
			b.WriteString(line)
		}
	}
	fmt.Println(errorPanelStyle.Render(b.String()))
}

// PrintNotice prints an informational panel.
func PrintNotice(msg string) {
	fmt.Println(infoPanelStyle.Render(msg))
}
