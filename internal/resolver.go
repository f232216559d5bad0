package dvdbind

import (
	"fmt"
	"sort"
)

// Registry resolves forward-declared native structs. Declaring a
// struct produces a shell that pointer fields can target immediately;
// defining it applies the field list, deferring when a by-value
// dependency is itself still a shell. Each shell is patched exactly
// once, when its last by-value dependency completes.
type Registry struct {
	structs  map[string]*StructDesc
	pending  map[string]*pendingDefinition
	awaiting map[string][]*pendingDefinition
}

type pendingDefinition struct {
	target    *StructDesc
	packed    bool
	fields    []Field
	waitingOn map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		structs:  map[string]*StructDesc{},
		pending:  map[string]*pendingDefinition{},
		awaiting: map[string][]*pendingDefinition{},
	}
}

// Declare returns the shell for name, creating it on first use.
func (r *Registry) Declare(name string) *StructDesc {
	if d, ok := r.structs[name]; ok {
		return d
	}
	d := NewShell(name)
	r.structs[name] = d
	return d
}

// Struct returns a declared struct by name.
func (r *Registry) Struct(name string) (*StructDesc, bool) {
	d, ok := r.structs[name]
	return d, ok
}

// Define applies the field list to name. When every by-value
// dependency is already complete the definition is applied now and any
// definitions waiting on name are drained; otherwise it is queued
// until the missing dependencies resolve.
func (r *Registry) Define(name string, packed bool, fields ...Field) error {
	d := r.Declare(name)
	if d.complete {
		return fmt.Errorf("struct %s: defined twice", name)
	}
	if _, ok := r.pending[name]; ok {
		return fmt.Errorf("struct %s: defined twice", name)
	}

	pd := &pendingDefinition{target: d, packed: packed, fields: fields, waitingOn: map[string]struct{}{}}
	for _, f := range fields {
		if f.Kind == KindStruct && f.Elem != nil && !f.Elem.complete {
			pd.waitingOn[f.Elem.name] = struct{}{}
		}
	}
	if len(pd.waitingOn) == 0 {
		return r.apply(pd)
	}
	r.pending[name] = pd
	for dep := range pd.waitingOn {
		r.awaiting[dep] = append(r.awaiting[dep], pd)
	}
	return nil
}

// apply patches the shell and cascades to definitions that were
// waiting on it.
func (r *Registry) apply(pd *pendingDefinition) error {
	if err := pd.target.setFields(pd.packed, pd.fields); err != nil {
		return err
	}
	name := pd.target.name
	waiters := r.awaiting[name]
	delete(r.awaiting, name)
	for _, w := range waiters {
		delete(w.waitingOn, name)
		if len(w.waitingOn) == 0 {
			delete(r.pending, w.target.name)
			if err := r.apply(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// Finalize verifies that every queued definition has resolved and
// every complete struct lays out. Definitions still waiting at this
// point form by-value dependency knots that no patch order can
// untangle.
func (r *Registry) Finalize() error {
	if len(r.pending) > 0 {
		names := make([]string, 0, len(r.pending))
		for name := range r.pending {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("%w: %v", ErrIrreducibleCycle, names)
	}
	names := make([]string, 0, len(r.structs))
	for name := range r.structs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d := r.structs[name]
		if !d.complete {
			// Shells that stay shells are opaque native structs
			// reached only by pointer.
			continue
		}
		if err := d.ensureLayout(); err != nil {
			return err
		}
	}
	return nil
}
