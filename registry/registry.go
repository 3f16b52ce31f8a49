// Package registry aggregates generated registration descriptors into a
// two-level category/action tree and routes parsed input to the matching
// adapter. The tree is built lazily, exactly once, and is read-only
// afterwards, so concurrent routing needs no locking.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/declgen-tools/cli/handler"
	"github.com/declgen-tools/cli/usage"
)

// Registry is the routable command tree. Read-only after construction.
type Registry struct {
	tree map[string]map[string]*RegistrationDescriptor
}

// Build constructs a registry from a descriptor set. A duplicate
// (category, action) pair is a programming error normally prevented at
// compile time by the generated guard names; it is re-checked here and
// fails fast.
func Build(descs []RegistrationDescriptor) (*Registry, error) {
	tree := make(map[string]map[string]*RegistrationDescriptor)

	for i := range descs {
		d := descs[i]
		actions, ok := tree[d.Category]
		if !ok {
			actions = make(map[string]*RegistrationDescriptor)
			tree[d.Category] = actions
		}
		if _, exists := actions[d.Action]; exists {
			return nil, fmt.Errorf("registry: duplicate command %q %q", d.Category, d.Action)
		}
		actions[d.Action] = &d
	}

	return &Registry{tree: tree}, nil
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Default builds the process-wide registry from the global registration
// collection on first use and returns the same instance afterwards.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = Build(snapshot())
	})
	return defaultReg, defaultErr
}

// Lookup resolves a (category, action) pair. On failure it returns a
// *usage.Error enumerating nearby valid names.
func (r *Registry) Lookup(category, action string) (*RegistrationDescriptor, error) {
	actions, ok := r.tree[category]
	if !ok {
		return nil, usage.CommandNotFound(category, action, similar(category, r.categoryNames())...)
	}
	desc, ok := actions[action]
	if !ok {
		return nil, usage.CommandNotFound(category, action, similar(action, actionNames(actions))...)
	}
	return desc, nil
}

// Route resolves the pair and invokes the matched adapter with the given
// input bag. Lookup failures come back as the error; adapter failures come
// back inside the output envelope.
func (r *Registry) Route(ctx context.Context, category, action string, in handler.Input) (handler.Output, error) {
	desc, err := r.Lookup(category, action)
	if err != nil {
		return handler.Output{}, err
	}
	return desc.Adapter(ctx, in), nil
}

// CommandInfo is one entry of the read-only enumeration exposed for
// documentation generators, shell completions and schema exporters.
type CommandInfo struct {
	Category string
	Action   string
	Summary  string
	Args     []ArgumentMetadata
}

// Commands enumerates every registered command, sorted by category then
// action.
func (r *Registry) Commands() []CommandInfo {
	var out []CommandInfo
	for category, actions := range r.tree {
		for action, desc := range actions {
			out = append(out, CommandInfo{
				Category: category,
				Action:   action,
				Summary:  desc.Summary,
				Args:     desc.Args,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Action < out[j].Action
	})
	return out
}

// Categories returns the sorted category names.
func (r *Registry) Categories() []string {
	names := r.categoryNames()
	sort.Strings(names)
	return names
}

func (r *Registry) categoryNames() []string {
	names := make([]string, 0, len(r.tree))
	for name := range r.tree {
		names = append(names, name)
	}
	return names
}

func actionNames(actions map[string]*RegistrationDescriptor) []string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	return names
}
