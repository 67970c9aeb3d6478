package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/oneproof4all/oneproof/framework"

	"github.com/alessio/shellescape"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const defaultEnvFile = ".env"

// Environment variables that supply defaults for flags that were not given explicitly.
const (
	envRun     = "ONEPROOF_RUN"
	envSkip    = "ONEPROOF_SKIP"
	envGlob    = "ONEPROOF_GLOB"
	envDebug   = "ONEPROOF_DEBUG"
	envNoColor = "ONEPROOF_NO_COLOR"
)

type commandParams struct {
	filters    framework.RegexFilters
	debug      bool
	debugAll   bool
	verbose    bool
	noColor    bool
	noProgress bool
	envFile    string
}

func (c *commandParams) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select cases to run, matched against group/case")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select cases not to run")
	fs.Var(&c.filters.Globs, "glob", "glob pattern(s) to select cases to run, such as 'Checkout*/**'")
	fs.BoolVar(&c.debug, "debug", false, "show debug output for failed cases")
	fs.BoolVar(&c.debugAll, "debug-all", false, "show debug output for all cases")
	fs.BoolVarP(&c.verbose, "verbose", "v", false, "echo the raw console protocol of each spec file")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&c.noProgress, "no-progress", false, "do not show a progress bar")
	fs.StringVar(&c.envFile, "env-file", defaultEnvFile, "file with ONEPROOF_* defaults")
}

// applyEnv fills in flags that were not set on the command line from the env file and the
// process environment, in that order of precedence after the flags themselves.
func (c *commandParams) applyEnv(cmd *cobra.Command) error {
	fileVars, err := godotenv.Read(c.envFile)
	if err != nil {
		if cmd.Flags().Changed("env-file") || !os.IsNotExist(err) {
			return fmt.Errorf("cannot read env file %s: %w", c.envFile, err)
		}
		fileVars = nil
	}
	lookup := func(name string) (string, bool) {
		if v, ok := fileVars[name]; ok {
			return v, true
		}
		return os.LookupEnv(name)
	}

	setList := func(flag, name string, target interface{ Set(string) error }) error {
		if cmd.Flags().Changed(flag) {
			return nil
		}
		value, ok := lookup(name)
		if !ok || strings.TrimSpace(value) == "" {
			return nil
		}
		for _, item := range strings.Split(value, ",") {
			if err := target.Set(strings.TrimSpace(item)); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
		return nil
	}
	setBool := func(flag, name string, target *bool) error {
		if cmd.Flags().Changed(flag) {
			return nil
		}
		value, ok := lookup(name)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*target = b
		return nil
	}

	if err := setList("run", envRun, &c.filters.MustMatch); err != nil {
		return err
	}
	if err := setList("skip", envSkip, &c.filters.MustNotMatch); err != nil {
		return err
	}
	if err := setList("glob", envGlob, &c.filters.Globs); err != nil {
		return err
	}
	if err := setBool("debug", envDebug, &c.debug); err != nil {
		return err
	}
	return setBool("no-color", envNoColor, &c.noColor)
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
