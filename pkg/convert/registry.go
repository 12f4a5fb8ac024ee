package convert

import (
	"fmt"
	"sync"
)

// MaxDepth bounds how deeply conversions may nest before the registry gives
// up. Trees are acyclic by contract; the bound turns a self-referential
// input into an error instead of a stack overflow.
const MaxDepth = 1024

// Converter converts arbitrary values into nodes of one family.
type Converter[N any] interface {
	Convert(v any) (N, error)
}

// Rule is a typed predicate/transform pair. Convert receives a Converter
// bound to the registry that matched, so nested values are converted by the
// same family (including clones of it).
type Rule[N any] struct {
	Name    string
	Match   func(v any) bool
	Convert func(c Converter[N], v any) (N, error)
}

// Registry is an ordered rule chain. The first rule whose Match accepts a
// value converts it. An empty registry never converts anything.
type Registry[N any] struct {
	mu     sync.RWMutex
	family string
	rules  []Rule[N]
}

// New creates a registry for the named family with the given rules.
func New[N any](family string, rules ...Rule[N]) *Registry[N] {
	return &Registry[N]{
		family: family,
		rules:  append([]Rule[N](nil), rules...),
	}
}

// Family returns the family name reported in conversion errors.
func (r *Registry[N]) Family() string {
	return r.family
}

// Append adds rules to the end of the chain.
func (r *Registry[N]) Append(rules ...Rule[N]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rules...)
}

// Replace swaps the rule registered under name for rule, keeping its
// position. It reports whether a rule with that name existed.
func (r *Registry[N]) Replace(name string, rule Rule[N]) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rules {
		if r.rules[i].Name == name {
			r.rules[i] = rule
			return true
		}
	}
	return false
}

// Rules returns a copy of the chain in evaluation order.
func (r *Registry[N]) Rules() []Rule[N] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Rule[N](nil), r.rules...)
}

// Clone returns an independent registry with the same rules under a new
// family name.
func (r *Registry[N]) Clone(family string) *Registry[N] {
	return New[N](family, r.Rules()...)
}

// Convert converts v with the first matching rule.
func (r *Registry[N]) Convert(v any) (N, error) {
	return r.convert(v, 0)
}

// MustConvert is like Convert but panics on failure.
func (r *Registry[N]) MustConvert(v any) N {
	n, err := r.Convert(v)
	if err != nil {
		panic(err)
	}
	return n
}

func (r *Registry[N]) convert(v any, depth int) (N, error) {
	var zero N
	if depth > MaxDepth {
		return zero, &ConversionError{
			Family: r.family,
			Value:  v,
			Reason: fmt.Sprintf("nesting exceeds %d levels", MaxDepth),
		}
	}

	// Snapshot so rules can recurse without re-entering the lock.
	for _, rule := range r.Rules() {
		if rule.Match(v) {
			return rule.Convert(step[N]{r: r, depth: depth + 1}, v)
		}
	}
	return zero, &ConversionError{Family: r.family, Value: v, Reason: ReasonNoRule}
}

// step is the Converter handed to rules; it carries the nesting depth.
type step[N any] struct {
	r     *Registry[N]
	depth int
}

func (s step[N]) Convert(v any) (N, error) {
	return s.r.convert(v, s.depth)
}
