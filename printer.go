package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/oneproof4all/oneproof/dialect"
	"github.com/oneproof4all/oneproof/framework"
	"github.com/oneproof4all/oneproof/mock"
	"github.com/oneproof4all/oneproof/report"

	"github.com/fatih/color"
)

var (
	passColor  = color.New(color.FgGreen, color.Bold)
	failColor  = color.New(color.FgRed, color.Bold)
	skipColor  = color.New(color.FgYellow)
	dimColor   = color.New(color.Faint)
	titleColor = color.New(color.FgCyan, color.Bold)
)

func printHeader(w io.Writer, filters framework.RegexFilters, fileCount int) {
	titleColor.Fprintf(w, "oneproof %s\n", version)
	fmt.Fprintf(w, "Running %d spec file(s)\n", fileCount)
	if filters.IsDefined() {
		fmt.Fprintln(w, "Case filters:")
		for _, line := range filters.Describe() {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	fmt.Fprintln(w)
}

func printFileResult(w io.Writer, o fileOutcome, verbose bool) {
	mark := passColor.Sprint("✓")
	if !o.ok() {
		mark = failColor.Sprint("✗")
	}
	fmt.Fprintf(w, "%s %s %s\n", mark, o.file.Name,
		dimColor.Sprintf("(%d cases, %s)", len(o.report.Cases), formatDuration(o.duration)))

	if verbose {
		for _, line := range strings.Split(strings.TrimRight(o.raw, "\n"), "\n") {
			fmt.Fprintf(w, "    %s\n", dimColor.Sprint(line))
		}
	}
	for _, c := range o.report.Cases {
		switch c.Status {
		case report.StatusFail:
			fmt.Fprintf(w, "    %s %s\n", failColor.Sprint("FAIL"), c.Label)
			if c.Message != "" {
				fmt.Fprintf(w, "         %s\n", c.Message)
			}
		case report.StatusSkip:
			if verbose {
				fmt.Fprintf(w, "    %s %s\n", skipColor.Sprint("SKIP"), c.Label)
			}
		}
	}
	if !verbose {
		for _, line := range o.report.Other {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
}

type totals struct {
	files, failedFiles      int
	passed, failed, skipped int
	duration                time.Duration
}

func sumOutcomes(outcomes []fileOutcome) totals {
	var t totals
	for _, o := range outcomes {
		t.files++
		if !o.ok() {
			t.failedFiles++
		}
		t.passed += o.report.Passed
		t.failed += o.report.Failed
		t.skipped += o.report.Skipped
		t.duration += o.duration
	}
	return t
}

func printSummary(w io.Writer, outcomes []fileOutcome) {
	t := sumOutcomes(outcomes)
	fmt.Fprintln(w)
	fmt.Fprintf(w, " Test Files  %s\n", countLine(t.files-t.failedFiles, t.failedFiles, 0))
	fmt.Fprintf(w, "      Tests  %s\n", countLine(t.passed, t.failed, t.skipped))
	fmt.Fprintf(w, "   Duration  %s\n", formatDuration(t.duration))
	fmt.Fprintln(w)
	if t.failed == 0 && t.failedFiles == 0 {
		color.New(color.FgGreen, color.Bold, color.ReverseVideo).Fprint(w, " PASS ")
		fmt.Fprintln(w, " all spec files passed")
	} else {
		color.New(color.FgRed, color.Bold, color.ReverseVideo).Fprint(w, " FAIL ")
		fmt.Fprintf(w, " %d failed case(s) in %d file(s)\n", t.failed, t.failedFiles)
	}
	fmt.Fprintln(w)
}

func countLine(passed, failed, skipped int) string {
	parts := []string{passColor.Sprintf("%d passed", passed)}
	if failed > 0 {
		parts = append(parts, failColor.Sprintf("%d failed", failed))
	}
	if skipped > 0 {
		parts = append(parts, skipColor.Sprintf("%d skipped", skipped))
	}
	return strings.Join(parts, " | ") + dimColor.Sprintf(" (%d)", passed+failed+skipped)
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return d.Round(time.Millisecond).String()
}

var configOps = []mock.ConfigOp{
	mock.OpSetReturn, mock.OpSetDeferredReturn, mock.OpSetImplementation, mock.OpClear, mock.OpReset,
}

// printVocabulary lists, per dialect, every name and the operation it stands for, followed by
// the names that configure a mock.
func printVocabulary(w io.Writer) {
	for _, name := range dialect.Names() {
		titleColor.Fprintf(w, "%s\n", name)
		for _, alias := range dialect.Aliases(name) {
			op, _ := dialect.Canonical(name, alias)
			fmt.Fprintf(w, "  %-12s %s\n", alias, dimColor.Sprint(op))
		}
	}
	titleColor.Fprintln(w, "mock configuration")
	for _, op := range configOps {
		fmt.Fprintf(w, "  %-18s %s\n", op, strings.Join(mock.ConfigNames(op), ", "))
	}
}
