package framework

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter is a function that can determine whether to run a specific case or not.
type Filter func(TestID) bool

// RegexFilters selects cases by matching their full path ("group/subgroup/case") against
// regular expressions and doublestar glob patterns.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
	Globs        GlobList
}

func (r RegexFilters) AsFilter(id TestID) bool {
	name := id.FullPath()
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(name)) &&
		!r.MustNotMatch.AnyMatch(name) &&
		(!r.Globs.IsDefined() || r.Globs.AnyMatch(name))
}

func (r RegexFilters) IsDefined() bool {
	return r.MustMatch.IsDefined() || r.MustNotMatch.IsDefined() || r.Globs.IsDefined()
}

type RegexList struct {
	patterns []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

func (r *RegexList) Type() string {
	return "regex"
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

type GlobList struct {
	patterns []string
}

func (g GlobList) String() string {
	var ss []string
	for _, p := range g.patterns {
		ss = append(ss, `"`+p+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (g *GlobList) Set(value string) error {
	if !doublestar.ValidatePattern(value) {
		return fmt.Errorf("invalid glob pattern %q", value)
	}
	g.patterns = append(g.patterns, value)
	return nil
}

func (g *GlobList) Type() string {
	return "glob"
}

func (g GlobList) IsDefined() bool {
	return len(g.patterns) != 0
}

func (g GlobList) AnyMatch(s string) bool {
	for _, p := range g.patterns {
		if ok, err := doublestar.Match(p, s); err == nil && ok {
			return true
		}
	}
	return false
}

// Describe returns a human-readable summary of the active filters, one line per rule.
func (r RegexFilters) Describe() []string {
	var lines []string
	if r.MustMatch.IsDefined() {
		lines = append(lines, fmt.Sprintf("skip any not matching %s", r.MustMatch))
	}
	if r.MustNotMatch.IsDefined() {
		lines = append(lines, fmt.Sprintf("skip any matching %s", r.MustNotMatch))
	}
	if r.Globs.IsDefined() {
		lines = append(lines, fmt.Sprintf("skip any not matching glob %s", r.Globs))
	}
	return lines
}
