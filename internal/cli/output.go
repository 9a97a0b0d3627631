package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// isInteractive returns true if stdout is a terminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// isInputInteractive returns true if stdin is a terminal.
func isInputInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// outputJSON outputs data as formatted JSON.
func outputJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}

// outputTable outputs data as a table.
func outputTable(headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	// Print header
	headerLine := ""
	for i, h := range headers {
		if i > 0 {
			headerLine += "  "
		}
		headerLine += fmt.Sprintf("%-*s", widths[i], h)
	}
	fmt.Println(headerLine)

	// Print separator
	sepLine := ""
	for i, w := range widths {
		if i > 0 {
			sepLine += "  "
		}
		sepLine += strings.Repeat("-", w)
	}
	fmt.Println(sepLine)

	// Print rows
	for _, row := range rows {
		rowLine := ""
		for i := range headers {
			if i > 0 {
				rowLine += "  "
			}
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			rowLine += fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Println(rowLine)
	}
}

// formatTime formats a timestamp for table display.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("Jan 02, 2006 15:04")
}

// truncate truncates a string to maxLen characters.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// plural returns "s" unless n is 1.
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
