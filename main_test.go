package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/oneproof4all/oneproof/dialect"
	"github.com/oneproof4all/oneproof/specs"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func testFiles() []specs.File {
	return []specs.File{
		{Name: "math.spec"},
		{Name: "narrative.spec"},
		{Name: "shopping-cart.spec"},
	}
}

func fileNames(files []specs.File) []string {
	var names []string
	for _, f := range files {
		names = append(names, f.Name)
	}
	return names
}

func TestSelectFiles(t *testing.T) {
	all, err := selectFiles(testFiles(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	some, err := selectFiles(testFiles(), []string{"*cart*", "math.spec"})
	require.NoError(t, err)
	assert.Equal(t, []string{"math.spec", "shopping-cart.spec"}, fileNames(some))

	_, err = selectFiles(testFiles(), []string{"nothing*"})
	assert.Error(t, err)

	_, err = selectFiles(testFiles(), []string{"[bad"})
	assert.Error(t, err)
}

func newTestCommand(params *commandParams, args ...string) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	params.bind(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		panic(err)
	}
	return cmd
}

func TestApplyEnvReadsEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("ONEPROOF_RUN=Checkout,Cart\nONEPROOF_DEBUG=true\n"), 0o600))

	var params commandParams
	cmd := newTestCommand(&params, "--env-file", envFile)
	require.NoError(t, params.applyEnv(cmd))

	assert.Equal(t, `"Checkout" or "Cart"`, params.filters.MustMatch.String())
	assert.True(t, params.debug)
}

func TestApplyEnvLetsFlagsWin(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("ONEPROOF_RUN=Checkout\nONEPROOF_DEBUG=true\n"), 0o600))

	var params commandParams
	cmd := newTestCommand(&params, "--env-file", envFile, "--run", "Payments", "--debug=false")
	require.NoError(t, params.applyEnv(cmd))

	assert.Equal(t, `"Payments"`, params.filters.MustMatch.String())
	assert.False(t, params.debug)
}

func TestApplyEnvFallsBackToProcessEnvironment(t *testing.T) {
	t.Setenv(envSkip, "slow")
	t.Setenv(envGlob, "Shopping*/**")

	var params commandParams
	cmd := newTestCommand(&params)
	params.envFile = filepath.Join(t.TempDir(), "missing.env")
	require.NoError(t, params.applyEnv(cmd))

	assert.Equal(t, `"slow"`, params.filters.MustNotMatch.String())
	assert.Equal(t, `"Shopping*/**"`, params.filters.Globs.String())
}

func TestApplyEnvRejectsMissingExplicitFile(t *testing.T) {
	var params commandParams
	cmd := newTestCommand(&params, "--env-file", filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, params.applyEnv(cmd))
}

func TestApplyEnvRejectsBadValues(t *testing.T) {
	t.Setenv(envDebug, "maybe")
	var params commandParams
	cmd := newTestCommand(&params)
	params.envFile = filepath.Join(t.TempDir(), "missing.env")
	assert.Error(t, params.applyEnv(cmd))
}

func TestRunnerPassesBundledFiles(t *testing.T) {
	var out, errOut bytes.Buffer
	r := newRunner(commandParams{noProgress: true}, &out, &errOut)

	ok := r.run(specs.All())

	assert.True(t, ok, out.String())
	assert.Contains(t, out.String(), "all spec files passed")
	assert.Contains(t, out.String(), "Test Files")
	assert.NotContains(t, out.String(), "To rerun")
	assert.Empty(t, errOut.String())
}

func failingFile() specs.File {
	return specs.File{Name: "broken.spec", Run: func(d dialect.All) {
		d.Describe("Checkout", func() {
			d.It("pays", func() {})
			d.It("declines", func() { d.Expect(1).ToBe(2) })
		})
	}}
}

func TestRunnerReportsFailuresAndRerunCommand(t *testing.T) {
	var out bytes.Buffer
	r := newRunner(commandParams{noProgress: true}, &out, &out)

	ok := r.run([]specs.File{failingFile()})

	assert.False(t, ok)
	assert.Contains(t, out.String(), "FAIL Checkout › declines")
	assert.Contains(t, out.String(), "Expected 1 to be 2")
	assert.Contains(t, out.String(), "oneproof run broken.spec --run '^Checkout/declines$'")
}

func TestRunnerTurnsDefinitionPanicIntoFailedCase(t *testing.T) {
	var out bytes.Buffer
	r := newRunner(commandParams{noProgress: true}, &out, &out)
	file := specs.File{Name: "panics.spec", Run: func(d dialect.All) {
		d.Describe("G", func() {
			panic(errors.New("cannot load fixtures"))
		})
	}}

	outcome := r.runFile(file)

	assert.False(t, outcome.ok())
	require.Len(t, outcome.report.Cases, 1)
	assert.Equal(t, moduleImportCase, outcome.report.Cases[0].Name)
	assert.Equal(t, "cannot load fixtures", outcome.report.Cases[0].Message)
}

func TestRunnerResetsEngineBetweenFiles(t *testing.T) {
	var out bytes.Buffer
	r := newRunner(commandParams{noProgress: true}, &out, &out)

	first := r.runFile(failingFile())
	second := r.runFile(specs.All()[0])

	assert.Equal(t, 1, first.report.Failed)
	assert.Equal(t, 0, second.report.Failed)
	assert.Empty(t, second.failures)
}

func TestRunnerAppliesCaseFilters(t *testing.T) {
	var params commandParams
	params.noProgress = true
	require.NoError(t, params.filters.MustNotMatch.Set("declines"))
	var out bytes.Buffer
	r := newRunner(params, &out, &out)

	outcome := r.runFile(failingFile())

	assert.True(t, outcome.ok())
	assert.Equal(t, 1, outcome.report.Passed)
	assert.Equal(t, 1, outcome.report.Skipped)
}

func TestCommandBuilderQuotes(t *testing.T) {
	var b commandBuilder
	b.add("oneproof", "run", "--run", "^a b$")
	assert.Equal(t, "oneproof run --run '^a b$'", b.String())
}

func TestListVocabulary(t *testing.T) {
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"list", "--vocabulary"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "classic\n")
	assert.Regexp(t, `jest\.spyOn\s+create spy`, out.String())
	assert.Regexp(t, `reset\s+hook: pre-case`, out.String())
	assert.Contains(t, out.String(), "forceReturn, mapsTo, mockReturnValue, respondsWith, yields")
}

func TestListFiles(t *testing.T) {
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"list", "*cart*"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "shopping-cart.spec\n", out.String())
}
