package main

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/oneproof4all/oneproof/framework"
	"github.com/oneproof4all/oneproof/report"
	"github.com/oneproof4all/oneproof/specs"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// moduleImportCase names the synthetic failed case recorded when a spec file's group
// definitions panic, so that the file still shows up as failed.
const moduleImportCase = "Module import"

type fileOutcome struct {
	file     specs.File
	report   report.FileReport
	raw      string
	failures []framework.TestResult
	duration time.Duration
}

func (o fileOutcome) ok() bool {
	return o.report.OK()
}

// runner runs spec files one after another on a single engine, resetting it before each file
// and reconstructing each file's results from the console protocol it wrote.
type runner struct {
	params  commandParams
	out     io.Writer
	errOut  io.Writer
	engine  *framework.Engine
	console *framework.ConsoleTestLogger
}

func newRunner(params commandParams, out, errOut io.Writer) *runner {
	console := &framework.ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	var options []framework.Option
	if params.filters.IsDefined() {
		options = append(options, framework.WithFilter(params.filters.AsFilter))
	}
	return &runner{
		params:  params,
		out:     out,
		errOut:  errOut,
		engine:  framework.NewEngine(console, options...),
		console: console,
	}
}

func (r *runner) run(files []specs.File) bool {
	printHeader(r.out, r.params.filters, len(files))

	progressOut := r.errOut
	if r.params.noProgress {
		progressOut = io.Discard
	}
	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(color.CyanString("Running spec files")),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetWriter(progressOut),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
	)

	outcomes := make([]fileOutcome, 0, len(files))
	for _, f := range files {
		bar.Describe(color.CyanString("Running ") + f.Name)
		outcomes = append(outcomes, r.runFile(f))
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	allOK := true
	for _, o := range outcomes {
		printFileResult(r.out, o, r.params.verbose)
		if !o.ok() {
			allOK = false
		}
	}
	printSummary(r.out, outcomes)
	if !allOK {
		printRerunCommands(r.out, outcomes)
	}
	return allOK
}

func (r *runner) runFile(f specs.File) fileOutcome {
	var buf bytes.Buffer
	r.console.Out = &buf
	r.engine.Reset()

	startTime := time.Now()
	importErr := r.runCaptured(f)
	outcome := fileOutcome{
		file:     f,
		duration: time.Since(startTime),
		raw:      buf.String(),
		failures: r.engine.Results().Failures,
	}

	parsed, err := report.Parse(&buf)
	if err != nil && importErr == nil {
		importErr = fmt.Errorf("unreadable output: %w", err)
	}
	if importErr != nil {
		parsed.Cases = append(parsed.Cases, report.CaseReport{
			Name:    moduleImportCase,
			Label:   moduleImportCase,
			Status:  report.StatusFail,
			Message: importErr.Error(),
		})
		parsed.Failed++
	}
	outcome.report = parsed
	return outcome
}

// runCaptured runs the spec file, turning a panic during group definition into an error.
// Failures inside cases never get here; the engine has already recorded them.
func (r *runner) runCaptured(f specs.File) (err error) {
	defer func() {
		if p := recover(); p != nil {
			if e, ok := p.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", p)
			}
		}
	}()
	specs.RunFile(r.engine, f)
	return nil
}

func printRerunCommands(w io.Writer, outcomes []fileOutcome) {
	fmt.Fprintln(w, "To rerun the failed cases:")
	for _, o := range outcomes {
		for _, failure := range o.failures {
			var b commandBuilder
			b.add("oneproof", "run", o.file.Name, "--run", "^"+regexp.QuoteMeta(failure.TestID.FullPath())+"$")
			fmt.Fprintf(w, "  %s\n", b)
		}
	}
	fmt.Fprintln(w)
}
