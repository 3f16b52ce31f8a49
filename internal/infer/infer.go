// Package infer maps parameter type descriptors to argument metadata. The
// mapping is a pure table lookup: the same declaration always yields the
// same metadata, with explicit doc-tag overrides taking precedence and
// inference filling the gaps.
package infer

import (
	"math"
	"strings"

	"github.com/declgen-tools/cli/internal/decl"
	"github.com/declgen-tools/cli/registry"
)

// Arguments derives the argument metadata for every parameter of a
// declaration, in declaration order.
func Arguments(d *decl.Declaration) []registry.ArgumentMetadata {
	args := make([]registry.ArgumentMetadata, 0, len(d.Params))
	for i := range d.Params {
		args = append(args, argument(&d.Params[i]))
	}
	return args
}

func argument(p *decl.Parameter) registry.ArgumentMetadata {
	meta := registry.ArgumentMetadata{
		Name: p.Name,
		Help: p.Help,
	}

	switch p.Type.Kind {
	case decl.KindBool:
		meta.Kind = registry.KindSwitch
		meta.Parser = "switch"

	case decl.KindCounter:
		meta.Kind = registry.KindCounter
		meta.Parser = "count"

	case decl.KindOptional:
		meta.Kind = registry.KindScalar
		fillScalar(&meta, p.Type.Elem)

	case decl.KindList:
		meta.Kind = registry.KindList
		fillScalar(&meta, p.Type.Elem)

	default:
		meta.Kind = registry.KindScalar
		meta.Required = true
		fillScalar(&meta, &p.Type)
	}

	applyOverrides(&meta, p.Tags)
	return meta
}

// fillScalar sets the parser hint and numeric bounds for a scalar element.
func fillScalar(meta *registry.ArgumentMetadata, t *decl.TypeDesc) {
	if t == nil {
		meta.Parser = "text"
		return
	}

	// A bool element (*bool, []bool) takes an explicit true/false value.
	if t.Kind == decl.KindBool {
		meta.Parser = "bool"
		return
	}

	meta.Parser = t.Scalar.String()
	meta.Bounds = bounds(t)
}

// bounds derives the inferred numeric range from an integer's declared bit
// width: uint8 implies [0, 255], int16 implies [-32768, 32767], and so on.
// Platform-sized int/uint get no inferred range.
func bounds(t *decl.TypeDesc) *registry.Bounds {
	if t.Bits == 0 {
		return nil
	}

	switch t.Scalar {
	case decl.ScalarUint:
		max := uint64(math.MaxUint64)
		if t.Bits < 64 {
			max = 1<<uint(t.Bits) - 1
		}
		return &registry.Bounds{Min: 0, Max: max}

	case decl.ScalarInt:
		if t.Bits == 64 {
			return &registry.Bounds{Min: math.MinInt64, Max: math.MaxInt64}
		}
		return &registry.Bounds{
			Min: -(1 << uint(t.Bits-1)),
			Max: 1<<uint(t.Bits-1) - 1,
		}

	default:
		return nil
	}
}

// applyOverrides folds explicit bracketed doc tags into the inferred
// metadata. Overrides always win; inference only fills what the developer
// left unsaid.
func applyOverrides(meta *registry.ArgumentMetadata, tags map[string]string) {
	for key, value := range tags {
		switch key {
		case "short":
			meta.Short = value
		case "default":
			meta.Default = value
			meta.Required = false
		case "env":
			meta.EnvVar = value
		case "group":
			meta.Relationships.Group = value
		case "requires":
			meta.Relationships.Requires = splitList(value)
		case "conflicts":
			meta.Relationships.Conflicts = splitList(value)
		case "hide":
			meta.Hidden = true
		case "global":
			meta.Global = true
		case "exclusive":
			meta.Exclusive = true
		}
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
