// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI escapes for plain CLI output, set by InitializeColors.
var (
	Green   = "\033[92m"
	Info    = "\033[96m"
	Warning = "\033[93m"
	Error   = "\033[91m"
	Reset   = "\033[0m"
)

type ColorScheme struct {
	Primary     lipgloss.Color
	Accent      lipgloss.Color
	Inserted    lipgloss.Color // node added by the current step
	Highlighted lipgloss.Color // node being compared
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Text        lipgloss.Color
	TextMuted   lipgloss.Color
	Error       lipgloss.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(env)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:     lipgloss.Color("4"),
		Accent:      lipgloss.Color("5"),
		Inserted:    lipgloss.Color("2"),
		Highlighted: lipgloss.Color("3"),
		Border:      lipgloss.Color("8"),
		BorderFocus: lipgloss.Color("4"),
		Text:        lipgloss.Color("0"),
		TextMuted:   lipgloss.Color("240"),
		Error:       lipgloss.Color("1"),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:     lipgloss.Color("39"),
		Accent:      lipgloss.Color("205"),
		Inserted:    lipgloss.Color("46"),
		Highlighted: lipgloss.Color("220"),
		Border:      lipgloss.Color("240"),
		BorderFocus: lipgloss.Color("62"),
		Text:        lipgloss.Color("15"),
		TextMuted:   lipgloss.Color("245"),
		Error:       lipgloss.Color("196"),
	}
}

// InitializeColors detects terminal mode and sets up the color scheme and the
// ANSI escapes.
func InitializeColors() {
	detectedMode = detectTerminalMode()

	switch detectedMode {
	case TerminalModeLight:
		currentColorScheme = createLightColorScheme()
	default:
		currentColorScheme = createDarkColorScheme()
	}
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// GetColorScheme returns the current color scheme
func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors()
	}
	return currentColorScheme
}

// ANSI color codes for terminal output (adaptive to mode)
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m" // Green
		info = "\033[34m"    // Blue
		warning = "\033[33m" // Yellow
		error = "\033[31m"   // Red
	} else {
		success = "\033[92m" // Bright Green
		info = "\033[96m"    // Bright Cyan
		warning = "\033[93m" // Bright Yellow
		error = "\033[91m"   // Bright Red
	}

	reset = "\033[0m"
	return
}
