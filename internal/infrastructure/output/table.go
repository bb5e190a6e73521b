package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rankine-dev/rankine/internal/application/dto"
	"github.com/rankine-dev/rankine/internal/domain/entities"
	"github.com/rankine-dev/rankine/internal/domain/values"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// TableFormatter formats reports as human-readable text.
// Energies are printed in kJ/kg with three decimals.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// Format writes the report as text.
// A single-cycle report prints only the cycle summary.
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) Format(report *dto.Report) error {
	if len(report.Entries) == 1 && report.Entries[0].Result != nil {
		f.formatCycle(report.Entries[0].Result)
		return nil
	}

	rule := f.colorize(strings.Repeat("─", 80), colorGray)

	fmt.Fprintln(f.writer, rule)
	if report.Version != "" {
		fmt.Fprintf(f.writer, "Study: %s (v%s)\n", f.colorize(report.Title, colorBold), report.Version)
	} else {
		fmt.Fprintf(f.writer, "Study: %s\n", f.colorize(report.Title, colorBold))
	}
	if report.Description != "" {
		fmt.Fprintf(f.writer, "Description: %s\n", report.Description)
	}
	fmt.Fprintf(f.writer, "Generated: %s\n", report.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(f.writer, "Duration: %s\n", report.Duration.Round(time.Millisecond))
	fmt.Fprintln(f.writer)

	if len(report.Entries) == 0 {
		fmt.Fprintln(f.writer, "No cycles analysed.")
		return nil
	}

	fmt.Fprintln(f.writer, f.colorize("Cycles:", colorBold))
	fmt.Fprintln(f.writer, rule)
	for _, entry := range report.Entries {
		f.formatEntry(entry)
	}
	fmt.Fprintln(f.writer, rule)
	fmt.Fprintln(f.writer)

	f.formatSummary(report.Summary)
	return nil
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatEntry(entry dto.ReportEntry) {
	symbol, color := f.getStatusInfo(entry.Status)
	fmt.Fprintf(f.writer, "%s %s: %s\n",
		f.colorize(symbol, color),
		f.colorize(entry.ID, color),
		strings.ToUpper(string(entry.Status)))

	switch {
	case entry.Result != nil:
		f.formatCycle(entry.Result)
	case entry.SkipReason != "":
		fmt.Fprintf(f.writer, "  Skip Reason: %s\n", entry.SkipReason)
	case entry.Error != "":
		fmt.Fprintf(f.writer, "  %s: %s\n", f.colorize("Error", colorRed), entry.Error)
	}
	fmt.Fprintln(f.writer)
}

// formatCycle prints the cycle summary followed by its four states.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatCycle(r *entities.CycleResult) {
	fmt.Fprintf(f.writer, "Cycle Summary for: %s\n", f.colorize(r.Name(), colorBold))
	fmt.Fprintf(f.writer, "\tEfficiency: %0.3f%%\n", r.Efficiency)
	fmt.Fprintf(f.writer, "\tTurbine Work: %0.3f kJ/kg\n", r.TurbineWork)
	fmt.Fprintf(f.writer, "\tPump Work: %0.3f kJ/kg\n", r.PumpWork)
	fmt.Fprintf(f.writer, "\tHeat Added: %0.3f kJ/kg\n", r.HeatAdded)
	if !r.IsPhysical() {
		fmt.Fprintf(f.writer, "\t%s\n", f.colorize("Warning: efficiency outside 0-100 %, inputs are non-physical", colorYellow))
	}
	for _, s := range r.States() {
		f.formatState(s)
	}
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatState(s entities.ThermodynamicState) {
	fmt.Fprintf(f.writer, "\t%s (%s)\n", f.colorize(s.Name, colorCyan), s.Phase)
	fmt.Fprintf(f.writer, "\t\tp = %0.3f kPa\n", s.Pressure)
	if t, ok := s.TemperatureValue(); ok {
		fmt.Fprintf(f.writer, "\t\tT = %0.3f °C\n", t)
	}
	fmt.Fprintf(f.writer, "\t\th = %0.3f kJ/kg\n", s.Enthalpy)
	fmt.Fprintf(f.writer, "\t\ts = %0.4f kJ/kg·K\n", s.Entropy)
	fmt.Fprintf(f.writer, "\t\tv = %0.6f m³/kg\n", s.SpecificVolume)
	if x, ok := s.QualityValue(); ok {
		fmt.Fprintf(f.writer, "\t\tx = %0.4f\n", x)
	}
}

// formatSummary formats the summary statistics.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatSummary(summary dto.ReportSummary) {
	fmt.Fprintln(f.writer, f.colorize("Summary:", colorBold))
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))

	fmt.Fprintf(f.writer, "Cycles:       %d total\n", summary.Total)
	fmt.Fprintf(f.writer, "  %s OK:           %d\n", f.colorize("✓", colorGreen), summary.Succeeded)
	fmt.Fprintf(f.writer, "  %s Non-physical: %d\n", f.colorize("!", colorYellow), summary.NonPhysical)
	fmt.Fprintf(f.writer, "  %s Errors:       %d\n", f.colorize("✗", colorRed), summary.Failed)
	fmt.Fprintf(f.writer, "  %s Skipped:      %d\n", f.colorize("⊘", colorGray), summary.Skipped)

	if summary.BestCycleID != "" {
		fmt.Fprintln(f.writer)
		fmt.Fprintf(f.writer, "Best:  %s (%0.3f%%)\n", summary.BestCycleID, summary.BestEfficiency)
		fmt.Fprintf(f.writer, "Mean:  %0.3f%%\n", summary.MeanEfficiency)
	}

	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
}

// getStatusInfo returns a symbol and color for the given status.
func (f *TableFormatter) getStatusInfo(status values.Status) (string, string) {
	switch status {
	case values.StatusOK:
		return "✓", colorGreen
	case values.StatusNonPhysical:
		return "!", colorYellow
	case values.StatusError:
		return "✗", colorRed
	case values.StatusSkipped:
		return "⊘", colorGray
	default:
		return "?", colorReset
	}
}
