package main

import (
	"strings"

	"github.com/declgen-tools/cli/handler"
	"github.com/declgen-tools/cli/registry"
	"github.com/declgen-tools/cli/usage"
)

// buildInput converts the raw token stream after "<category> <action>" into
// the untyped argument bag the adapter consumes. Flags bind by long name or
// short alias; bare values bind positionally to required scalars in
// declaration order, then to the list argument.
func buildInput(desc *registry.RegistrationDescriptor, tokens []string) (handler.Input, error) {
	in := handler.NewInput()

	byName := make(map[string]*registry.ArgumentMetadata, len(desc.Args))
	byShort := make(map[string]*registry.ArgumentMetadata)
	for i := range desc.Args {
		arg := &desc.Args[i]
		byName[arg.Name] = arg
		if arg.Short != "" {
			byShort[arg.Short] = arg
		}
	}

	var positionals []string
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if !isFlag(tok) {
			positionals = append(positionals, tok)
			continue
		}

		name, value, hasValue := strings.Cut(strings.TrimLeft(tok, "-"), "=")
		arg := byName[name]
		if arg == nil && !strings.HasPrefix(tok, "--") {
			arg = byShort[name]
		}
		if arg == nil {
			return *in, usage.InvalidFlag(tok)
		}

		switch arg.Kind {
		case registry.KindSwitch, registry.KindCounter:
			if hasValue {
				return *in, usage.InvalidArgumentValue(arg.Name, "takes no value")
			}
			in.Mark(arg.Name)
		default:
			if !hasValue {
				if i+1 >= len(tokens) || isFlag(tokens[i+1]) {
					return *in, usage.InvalidArgumentValue(arg.Name, "expected a value")
				}
				i++
				value = tokens[i]
			}
			in.Add(arg.Name, value)
		}
	}

	if err := bindPositionals(in, desc, positionals); err != nil {
		return *in, err
	}
	if err := checkRelationships(in, desc); err != nil {
		return *in, err
	}
	return *in, nil
}

func isFlag(tok string) bool {
	return len(tok) > 1 && tok[0] == '-'
}

// bindPositionals assigns bare values to the required scalars not already
// bound by a flag, in declaration order, and overflows into the list
// argument when the command declares one.
func bindPositionals(in *handler.Input, desc *registry.RegistrationDescriptor, positionals []string) error {
	var scalars []*registry.ArgumentMetadata
	var list *registry.ArgumentMetadata
	for i := range desc.Args {
		arg := &desc.Args[i]
		switch {
		case arg.Kind == registry.KindList && list == nil:
			list = arg
		case arg.Kind == registry.KindScalar && arg.Required && !in.Present(arg.Name):
			scalars = append(scalars, arg)
		}
	}

	for _, value := range positionals {
		switch {
		case len(scalars) > 0:
			in.Add(scalars[0].Name, value)
			scalars = scalars[1:]
		case list != nil:
			in.Add(list.Name, value)
		default:
			return usage.UnexpectedArgument(value)
		}
	}
	return nil
}

// checkRelationships enforces the declared requires/conflicts/exclusive
// constraints against what the user actually passed.
func checkRelationships(in *handler.Input, desc *registry.RegistrationDescriptor) error {
	present := 0
	for i := range desc.Args {
		if in.Present(desc.Args[i].Name) {
			present++
		}
	}

	for i := range desc.Args {
		arg := &desc.Args[i]
		if !in.Present(arg.Name) {
			continue
		}
		for _, req := range arg.Relationships.Requires {
			if !in.Present(req) {
				return usage.InvalidArgumentValue(arg.Name, "requires '"+req+"'")
			}
		}
		for _, conflict := range arg.Relationships.Conflicts {
			if in.Present(conflict) {
				return usage.InvalidArgumentValue(arg.Name, "conflicts with '"+conflict+"'")
			}
		}
		if arg.Exclusive && present > 1 {
			return usage.InvalidArgumentValue(arg.Name, "must be used alone")
		}
	}
	return nil
}
