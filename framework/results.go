package framework

import (
	"fmt"
	"strings"
	"time"
)

// RootSuiteName is the name of the synthetic suite node at the top of every tree.
const RootSuiteName = "ROOT"

// PathSeparator joins the segments of a case label in the console protocol.
const PathSeparator = " › "

type Results struct {
	Tests    []TestResult
	Failures []TestResult
	Skipped  []TestResult
}

type TestResult struct {
	TestID   TestID
	Err      error
	Skipped  bool
	Duration time.Duration
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

func (r Results) Passed() int {
	return len(r.Tests) - len(r.Failures) - len(r.Skipped)
}

// TestID identifies a case by the name of the suite node it ran in and its own name. Only
// the immediate group is part of the label; Path carries the full chain of group names for
// filtering.
type TestID struct {
	Suite string
	Name  string
	Path  []string
}

func (t TestID) String() string {
	return t.Suite + PathSeparator + t.Name
}

// FullPath returns the slash-joined group chain plus the case name, without the root node.
func (t TestID) FullPath() string {
	return strings.Join(append(append([]string(nil), t.Path...), t.Name), "/")
}

type CaseFailure struct {
	ID  TestID
	Err error
}

func (f CaseFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

func (f CaseFailure) Unwrap() error {
	return f.Err
}
