package mock

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ConfigOp is one of the canonical configuration operations of a mock. Each dialect has its own
// names for these; the names only select an operation and never change what it does.
type ConfigOp int

const (
	OpSetReturn ConfigOp = iota
	OpSetDeferredReturn
	OpSetImplementation
	OpClear
	OpReset
)

func (op ConfigOp) String() string {
	switch op {
	case OpSetReturn:
		return "setReturn"
	case OpSetDeferredReturn:
		return "setDeferredReturn"
	case OpSetImplementation:
		return "setImplementation"
	case OpClear:
		return "clear"
	case OpReset:
		return "reset"
	default:
		return fmt.Sprintf("ConfigOp(%d)", int(op))
	}
}

// configAliases is the reserved configuration surface of every mock. Member lookups for these
// names always resolve to the configuration function, never to a child mock.
var configAliases = map[string]ConfigOp{
	// classic
	"mockReturnValue":    OpSetReturn,
	"mockResolvedValue":  OpSetDeferredReturn,
	"mockImplementation": OpSetImplementation,
	// math
	"yields":      OpSetReturn,
	"mapsTo":      OpSetReturn,
	"convergesTo": OpSetDeferredReturn,
	"derive":      OpSetImplementation,
	// narrative
	"respondsWith":    OpSetReturn,
	"eventuallyGives": OpSetDeferredReturn,
	"actsLike":        OpSetImplementation,
	// imperative
	"forceReturn": OpSetReturn,
	"resolveWith": OpSetDeferredReturn,
	"executes":    OpSetImplementation,
	// shared
	"clear": OpClear,
	"reset": OpReset,
}

// LookupConfigOp resolves a configuration alias. Names are matched with their first letter
// lower-cased, so "Yields" and "yields" are the same alias.
func LookupConfigOp(name string) (ConfigOp, bool) {
	op, ok := configAliases[lowerFirst(name)]
	return op, ok
}

// IsReserved reports whether name belongs to the configuration surface.
func IsReserved(name string) bool {
	_, ok := LookupConfigOp(name)
	return ok
}

// ConfigNames returns every reserved alias mapped to op, sorted.
func ConfigNames(op ConfigOp) []string {
	var names []string
	for name, o := range configAliases {
		if o == op {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsLower(r) {
		return s
	}
	return strings.ToLower(string(r)) + s[size:]
}

// toFunc accepts the ways an implementation may be passed through the untyped configuration
// surface.
func toFunc(value interface{}) (Func, error) {
	switch fn := value.(type) {
	case nil:
		return nil, nil
	case Func:
		return fn, nil
	case func(...interface{}) interface{}:
		return fn, nil
	case func() interface{}:
		return func(...interface{}) interface{} { return fn() }, nil
	default:
		return nil, fmt.Errorf("mock implementation must be a mock.Func, got %T", value)
	}
}
