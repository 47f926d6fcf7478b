package testutil

import (
	"fmt"
	"strings"
)

// MockResolver is a test double for depcheck.Resolver.
type MockResolver struct {
	ResolveFunc func(name string) error
	Calls       []string
}

// Resolve records the call and delegates to ResolveFunc.
func (m *MockResolver) Resolve(name string) error {
	m.Calls = append(m.Calls, name)
	return m.ResolveFunc(name)
}

// PresentSet returns a MockResolver that resolves only the given names.
func PresentSet(names ...string) *MockResolver {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return &MockResolver{ResolveFunc: func(name string) error {
		if set[name] {
			return nil
		}
		return fmt.Errorf("cannot find package %q", name)
	}}
}

// CountLines returns how many lines of out contain substr.
func CountLines(out, substr string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, substr) {
			n++
		}
	}
	return n
}
