// Package report reconstructs case outcomes from the console protocol written by
// framework.ConsoleTestLogger. Host runners capture that output while a spec file runs and use
// this package to count passes and failures.
package report

import (
	"bufio"
	"io"
	"strings"

	"github.com/oneproof4all/oneproof/framework"
)

type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusSkip Status = "skip"
)

// CaseReport is one case outcome recovered from a PASS, FAIL, or SKIP line.
type CaseReport struct {
	// Group is the name of the group the case ran in, empty for cases at the root.
	Group string
	// Name is the case name.
	Name string
	// Label is "<group> › <case>", or just the case name for cases at the root.
	Label   string
	Status  Status
	Message string
}

// FileReport is everything recovered from the output of one spec file.
type FileReport struct {
	Groups  []string
	Cases   []CaseReport
	Passed  int
	Failed  int
	Skipped int
	// Other holds lines that are not part of the protocol, such as output printed by the spec
	// file itself.
	Other []string
}

func (f FileReport) OK() bool {
	return f.Failed == 0
}

// Parse reads protocol lines until EOF. Lines that carry no protocol tag are kept in Other.
func Parse(r io.Reader) (FileReport, error) {
	var report FileReport
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		report.addLine(scanner.Text())
	}
	return report, scanner.Err()
}

// ParseString is a convenience wrapper around Parse for captured output.
func ParseString(output string) FileReport {
	report, _ := Parse(strings.NewReader(output))
	return report
}

func (f *FileReport) addLine(line string) {
	switch {
	case strings.Contains(line, framework.PassTag):
		c := parseLabel(after(line, framework.PassTag), false)
		c.Status = StatusPass
		f.Cases = append(f.Cases, c)
		f.Passed++
	case strings.Contains(line, framework.FailTag):
		c := parseLabel(after(line, framework.FailTag), true)
		c.Status = StatusFail
		f.Cases = append(f.Cases, c)
		f.Failed++
	case strings.Contains(line, framework.SkipTag):
		c := parseLabel(after(line, framework.SkipTag), true)
		c.Status = StatusSkip
		f.Cases = append(f.Cases, c)
		f.Skipped++
	case strings.Contains(line, framework.GroupTag):
		f.Groups = append(f.Groups, strings.TrimSpace(after(line, framework.GroupTag)))
	case strings.Contains(line, framework.CaseTag), strings.TrimSpace(line) == "":
	default:
		f.Other = append(f.Other, line)
	}
}

func after(line, tag string) string {
	return strings.TrimSpace(line[strings.Index(line, tag)+len(tag):])
}

// parseLabel splits "<group> › <case>[ › <message>]". When the line carries a message, it is
// the last segment; a case name that itself contains the separator is therefore ambiguous, and
// everything between the group and the message is taken as the name.
func parseLabel(text string, hasMessage bool) CaseReport {
	parts := strings.Split(text, framework.PathSeparator)
	var c CaseReport
	if hasMessage && len(parts) > 2 {
		c.Message = parts[len(parts)-1]
		parts = parts[:len(parts)-1]
	}
	if len(parts) > 1 {
		c.Group = parts[0]
		c.Name = strings.Join(parts[1:], framework.PathSeparator)
	} else {
		c.Name = parts[0]
	}
	if c.Group == framework.RootSuiteName {
		c.Group = ""
	}
	if c.Group == "" {
		c.Label = c.Name
	} else {
		c.Label = c.Group + framework.PathSeparator + c.Name
	}
	return c
}
