package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/oneproof4all/oneproof/specs"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "dev"

var errTestsFailed = errors.New("tests failed")

func newRootCommand() *cobra.Command {
	var params commandParams

	root := &cobra.Command{
		Use:   "oneproof",
		Short: "Run spec files written in any of the oneproof dialects",
		Long: `oneproof runs spec files written in the math, narrative, imperative, or classic dialect.
All dialects drive the same engine, so a single file may mix them.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	run := &cobra.Command{
		Use:   "run [file-pattern...]",
		Short: "Run the bundled spec files, optionally only those matching the given glob patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := params.applyEnv(cmd); err != nil {
				return err
			}
			if params.noColor {
				color.NoColor = true
			}
			files, err := selectFiles(specs.All(), args)
			if err != nil {
				return err
			}
			r := newRunner(params, os.Stdout, os.Stderr)
			if !r.run(files) {
				return errTestsFailed
			}
			return nil
		},
	}
	params.bind(run)

	var vocabulary bool
	list := &cobra.Command{
		Use:   "list [file-pattern...]",
		Short: "List the bundled spec files, or with --vocabulary the names every dialect defines",
		RunE: func(cmd *cobra.Command, args []string) error {
			if vocabulary {
				printVocabulary(cmd.OutOrStdout())
				return nil
			}
			files, err := selectFiles(specs.All(), args)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintln(cmd.OutOrStdout(), f.Name)
			}
			return nil
		},
	}
	list.Flags().BoolVar(&vocabulary, "vocabulary", false, "list dialect names and mock configuration names")

	root.AddCommand(run, list)
	root.RunE = run.RunE
	params.bind(root)
	return root
}

func selectFiles(all []specs.File, patterns []string) ([]specs.File, error) {
	if len(patterns) == 0 {
		return all, nil
	}
	var selected []specs.File
	for _, f := range all {
		for _, p := range patterns {
			ok, err := doublestar.Match(p, f.Name)
			if err != nil {
				return nil, fmt.Errorf("invalid file pattern %q: %w", p, err)
			}
			if ok || p == f.Name {
				selected = append(selected, f)
				break
			}
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("no spec files match %v", patterns)
	}
	return selected, nil
}
