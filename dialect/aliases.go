package dialect

import (
	"fmt"
	"sort"
)

// Op is one of the canonical operations every dialect renames.
type Op int

const (
	OpDefineGroup Op = iota
	OpDefineCase
	OpAssert
	OpCreateMock
	OpCreateSpy
	OpBeforeAll
	OpAfterAll
	OpBeforeEach
	OpAfterEach
)

func (o Op) String() string {
	switch o {
	case OpDefineGroup:
		return "define group"
	case OpDefineCase:
		return "define case"
	case OpAssert:
		return "assert"
	case OpCreateMock:
		return "create mock"
	case OpCreateSpy:
		return "create spy"
	case OpBeforeAll:
		return "hook: pre-suite"
	case OpAfterAll:
		return "hook: post-suite"
	case OpBeforeEach:
		return "hook: pre-case"
	case OpAfterEach:
		return "hook: post-case"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

const (
	MathName       = "math"
	NarrativeName  = "narrative"
	ImperativeName = "imperative"
	ClassicName    = "classic"
)

var aliasTable = map[string]map[string]Op{
	MathName: {
		"axiom":     OpDefineGroup,
		"proof":     OpDefineCase,
		"implies":   OpAssert,
		"arbitrary": OpCreateMock,
		"lambda":    OpCreateMock,
		"monitor":   OpCreateSpy,
		"postulate": OpBeforeAll,
		"conclude":  OpAfterAll,
		"given":     OpBeforeEach,
	},
	NarrativeName: {
		"intend":     OpDefineGroup,
		"story":      OpDefineGroup,
		"detail":     OpDefineCase,
		"scenario":   OpDefineCase,
		"to":         OpAssert,
		"dummy":      OpCreateMock,
		"standIn":    OpCreateMock,
		"watch":      OpCreateSpy,
		"shadow":     OpCreateSpy,
		"background": OpBeforeAll,
		"cleanup":    OpAfterAll,
		"before":     OpBeforeEach,
	},
	ImperativeName: {
		"ensure":     OpDefineGroup,
		"suite":      OpDefineGroup,
		"check":      OpDefineCase,
		"verify":     OpDefineCase,
		"that":       OpAssert,
		"stub":       OpCreateMock,
		"mock":       OpCreateMock,
		"inspect":    OpCreateSpy,
		"spy":        OpCreateSpy,
		"initAll":    OpBeforeAll,
		"disposeAll": OpAfterAll,
		"reset":      OpBeforeEach,
	},
	ClassicName: {
		"describe":   OpDefineGroup,
		"it":         OpDefineCase,
		"test":       OpDefineCase,
		"expect":     OpAssert,
		"jest.fn":    OpCreateMock,
		"jest.spyOn": OpCreateSpy,
		"beforeAll":  OpBeforeAll,
		"afterAll":   OpAfterAll,
		"beforeEach": OpBeforeEach,
		"afterEach":  OpAfterEach,
	},
}

// Canonical resolves a dialect's name for an operation, for example ("narrative", "story").
func Canonical(dialect, name string) (Op, bool) {
	names, ok := aliasTable[dialect]
	if !ok {
		return 0, false
	}
	op, ok := names[name]
	return op, ok
}

// Names returns the dialects that have a table.
func Names() []string {
	return []string{MathName, NarrativeName, ImperativeName, ClassicName}
}

// Aliases returns the names a dialect defines, sorted. It returns nil for an unknown dialect.
func Aliases(dialect string) []string {
	names, ok := aliasTable[dialect]
	if !ok {
		return nil
	}
	ret := make([]string, 0, len(names))
	for name := range names {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}
