package framework

import "fmt"

// HookKind selects one of the four hook buckets of a suite node.
type HookKind int

const (
	// BeforeAll hooks run once, before the first case of a node.
	BeforeAll HookKind = iota
	// AfterAll hooks run once, when the group body that created the node returns.
	AfterAll
	// BeforeEach hooks run before every case of a node.
	BeforeEach
	// AfterEach hooks run after every case of a node that succeeded.
	AfterEach
)

var hookKindNames = [...]string{"beforeAll", "afterAll", "beforeEach", "afterEach"}

func (k HookKind) String() string {
	if k < 0 || int(k) >= len(hookKindNames) {
		return fmt.Sprintf("HookKind(%d)", int(k))
	}
	return hookKindNames[k]
}

type registeredCase struct {
	name string
	body Body
}

type suiteNode struct {
	name    string
	cases   []registeredCase
	hooks   [len(hookKindNames)][]Body
	parent  *suiteNode
	started bool
}

func newSuiteNode(name string, parent *suiteNode) *suiteNode {
	return &suiteNode{name: name, parent: parent}
}

// path returns the names of the groups from the root down to this node, excluding the root.
func (s *suiteNode) path() []string {
	var names []string
	for n := s; n != nil && n.parent != nil; n = n.parent {
		names = append([]string{n.name}, names...)
	}
	return names
}

// fireHooks runs the hooks of one kind in registration order, stopping at the first failure.
func (s *suiteNode) fireHooks(kind HookKind) error {
	for _, h := range s.hooks[kind] {
		if err := callSafely(h); err != nil {
			return fmt.Errorf("%s hook failed: %w", kind, err)
		}
	}
	return nil
}
