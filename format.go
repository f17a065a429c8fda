package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// FormatReport renders rep as a fixed-width table.
func FormatReport(rep Report) string {
	var sb strings.Builder
	rule := fmt.Sprintf("%-10s %10s %10s %8s\n", strings.Repeat("-", 10), strings.Repeat("-", 10), strings.Repeat("-", 10), strings.Repeat("-", 8))

	fmt.Fprintf(&sb, "%-10s %10s %10s %8s\n", "Blueprint",
		fmt.Sprintf("@%d", rep.TimeBudget), fmt.Sprintf("@%d", rep.ExtendedBudget), "Time")
	sb.WriteString(rule)
	for _, b := range rep.Blueprints {
		ext := "-"
		if b.Extended >= 0 {
			ext = fmt.Sprint(b.Extended)
		}
		fmt.Fprintf(&sb, "%-10d %10d %10s %7.1fs\n", b.ID, b.Geodes, ext,
			float64(b.TimeMs+b.ExtTimeMs)/1000)
	}
	sb.WriteString(rule)
	fmt.Fprintf(&sb, "%-10s %10d %10d %7.1fs\n", "TOTAL", rep.Quality, rep.ExtendedProd, float64(rep.TotalMs)/1000)
	return sb.String()
}

// WriteReportJSON writes rep as indented JSON.
func WriteReportJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
