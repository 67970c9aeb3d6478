package framework

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Tags of the line-oriented console protocol. Host runners match these verbatim, so they must
// not change.
const (
	GroupTag = "📂 [GROUP] "
	CaseTag  = "📝 [CASE] "
	PassTag  = "✅ PASS: "
	FailTag  = "❌ FAIL: "
	SkipTag  = "⏭️ SKIP: "
)

// ConsoleTestLogger writes the console protocol: one marker line per group, one line per case
// start, and one PASS, FAIL, or SKIP line per case outcome.
type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *ConsoleTestLogger) GroupStarted(name string) {
	fmt.Fprintf(c.out(), "\n%s%s\n", GroupTag, name)
}

func (c *ConsoleTestLogger) TestStarted(id TestID) {
	fmt.Fprintf(c.out(), "  └─ %s%s\n", CaseTag, id.Name)
}

func (c *ConsoleTestLogger) TestFinished(id TestID, err error, debugOutput CapturedOutput) {
	failed := err != nil
	if failed {
		fmt.Fprintf(c.out(), "     %s%s%s%s\n", FailTag, id, PathSeparator, singleLine(err.Error()))
	} else {
		fmt.Fprintf(c.out(), "     %s%s\n", PassTag, id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.out(), "       DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id TestID, reason string) {
	fmt.Fprintf(c.out(), "     %s%s%s%s\n", SkipTag, id, PathSeparator, singleLine(reason))
}

// The protocol is line oriented, so multi-line messages are folded onto one line.
func singleLine(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(no message)"
	}
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, " ")
}
