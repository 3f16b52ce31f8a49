package gen

import (
	"bytes"
	"fmt"

	"github.com/declgen-tools/cli/internal/decl"
	"github.com/declgen-tools/cli/registry"
)

// emitRegistration writes the registration guard for one declaration: a
// package variable whose initializer appends the descriptor to the global
// collection and whose name encodes the (category, action) pair.
func emitRegistration(b *bytes.Buffer, d *decl.Declaration, args []registry.ArgumentMetadata) {
	fmt.Fprintf(b, "var %s = registry.Register(registry.RegistrationDescriptor{\n", guardName(d))
	fmt.Fprintf(b, "\tCategory: %q,\n", d.Category)
	fmt.Fprintf(b, "\tAction:   %q,\n", d.Action)
	if d.Summary != "" {
		fmt.Fprintf(b, "\tSummary:  %q,\n", d.Summary)
	}
	if len(args) > 0 {
		b.WriteString("\tArgs: []registry.ArgumentMetadata{\n")
		for i := range args {
			emitArgLiteral(b, &args[i])
		}
		b.WriteString("\t},\n")
	}
	fmt.Fprintf(b, "\tAdapter: %s,\n", adapterName(d))
	b.WriteString("})\n\n")
}

func emitArgLiteral(b *bytes.Buffer, m *registry.ArgumentMetadata) {
	b.WriteString("\t\t{\n")
	fmt.Fprintf(b, "\t\t\tName: %q,\n", m.Name)
	if m.Required {
		b.WriteString("\t\t\tRequired: true,\n")
	}
	fmt.Fprintf(b, "\t\t\tKind: registry.%s,\n", kindConst(m.Kind))
	if m.Help != "" {
		fmt.Fprintf(b, "\t\t\tHelp: %q,\n", m.Help)
	}
	fmt.Fprintf(b, "\t\t\tParser: %q,\n", m.Parser)
	if m.Bounds != nil {
		fmt.Fprintf(b, "\t\t\tBounds: &registry.Bounds{Min: %d, Max: %d},\n", m.Bounds.Min, m.Bounds.Max)
	}
	if rel := m.Relationships; rel.Group != "" || len(rel.Requires) > 0 || len(rel.Conflicts) > 0 {
		b.WriteString("\t\t\tRelationships: registry.Relationships{\n")
		if len(rel.Requires) > 0 {
			fmt.Fprintf(b, "\t\t\t\tRequires: %#v,\n", rel.Requires)
		}
		if len(rel.Conflicts) > 0 {
			fmt.Fprintf(b, "\t\t\t\tConflicts: %#v,\n", rel.Conflicts)
		}
		if rel.Group != "" {
			fmt.Fprintf(b, "\t\t\t\tGroup: %q,\n", rel.Group)
		}
		b.WriteString("\t\t\t},\n")
	}
	if m.Short != "" {
		fmt.Fprintf(b, "\t\t\tShort: %q,\n", m.Short)
	}
	if m.Default != "" {
		fmt.Fprintf(b, "\t\t\tDefault: %q,\n", m.Default)
	}
	if m.EnvVar != "" {
		fmt.Fprintf(b, "\t\t\tEnvVar: %q,\n", m.EnvVar)
	}
	if m.Hidden {
		b.WriteString("\t\t\tHidden: true,\n")
	}
	if m.Global {
		b.WriteString("\t\t\tGlobal: true,\n")
	}
	if m.Exclusive {
		b.WriteString("\t\t\tExclusive: true,\n")
	}
	b.WriteString("\t\t},\n")
}

func kindConst(k registry.ArgumentKind) string {
	switch k {
	case registry.KindSwitch:
		return "KindSwitch"
	case registry.KindCounter:
		return "KindCounter"
	case registry.KindList:
		return "KindList"
	default:
		return "KindScalar"
	}
}
