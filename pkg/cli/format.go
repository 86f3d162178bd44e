// Package cli provides shared formatting helpers for flowgate CLI
// output: column-aligned tables and the cell conventions used by the
// interface listing.
package cli

import (
	"os"
)

// colorEnabled is false when NO_COLOR env var is set (per no-color.org).
var colorEnabled = os.Getenv("NO_COLOR") == ""

// Green wraps s in ANSI green. Returns s unchanged when NO_COLOR is set.
func Green(s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[32m" + s + "\033[0m"
}

// Red wraps s in ANSI red. Returns s unchanged when NO_COLOR is set.
func Red(s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[31m" + s + "\033[0m"
}

// Dim wraps s in ANSI dim. Returns s unchanged when NO_COLOR is set.
func Dim(s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[2m" + s + "\033[0m"
}

// PortType renders the NNI flag as the conventional port type label.
func PortType(nni bool) string {
	if nni {
		return "NNI"
	}
	return "UNI"
}

// OrDash returns s, or a dimmed dash when s is empty. Used for
// optional table cells like MAC addresses and speeds.
func OrDash(s string) string {
	if s == "" {
		return Dim("-")
	}
	return s
}
