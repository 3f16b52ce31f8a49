package completions

import (
	"fmt"
	"sort"
	"strings"

	"github.com/declgen-tools/cli/registry"
)

// byCategory groups the flat command list for the two-level scripts.
// Keys come back sorted from registry.Commands, but the map loses the
// order so each generator re-sorts.
func byCategory(commands []registry.CommandInfo) (map[string][]registry.CommandInfo, []string) {
	groups := make(map[string][]registry.CommandInfo)
	for _, cmd := range commands {
		groups[cmd.Category] = append(groups[cmd.Category], cmd)
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return groups, names
}

func flagWords(cmd registry.CommandInfo) []string {
	var words []string
	for _, arg := range cmd.Args {
		words = append(words, "--"+arg.Name)
		if arg.Short != "" {
			words = append(words, "-"+arg.Short)
		}
	}
	return words
}

func generateBash(commands []registry.CommandInfo) string {
	bin := BinaryName()
	groups, categories := byCategory(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s bash completion script\n", bin)
	fmt.Fprintf(&b, "_%s_completions() {\n", bin)
	b.WriteString("    local cur\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n\n")
	b.WriteString("    case \"${COMP_CWORD}\" in\n")

	b.WriteString("        1)\n")
	fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(categories, " "))
	b.WriteString("            ;;\n")

	b.WriteString("        2)\n")
	b.WriteString("            case \"${COMP_WORDS[1]}\" in\n")
	for _, category := range categories {
		var actions []string
		for _, cmd := range groups[category] {
			actions = append(actions, cmd.Action)
		}
		fmt.Fprintf(&b, "                %s) COMPREPLY=($(compgen -W %q -- \"$cur\")) ;;\n",
			category, strings.Join(actions, " "))
	}
	b.WriteString("            esac\n")
	b.WriteString("            ;;\n")

	b.WriteString("        *)\n")
	b.WriteString("            case \"${COMP_WORDS[1]}/${COMP_WORDS[2]}\" in\n")
	for _, category := range categories {
		for _, cmd := range groups[category] {
			flags := flagWords(cmd)
			if len(flags) == 0 {
				continue
			}
			fmt.Fprintf(&b, "                %s/%s) COMPREPLY=($(compgen -W %q -- \"$cur\")) ;;\n",
				category, cmd.Action, strings.Join(flags, " "))
		}
	}
	b.WriteString("            esac\n")
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	fmt.Fprintf(&b, "complete -F _%s_completions %s\n", bin, bin)
	return b.String()
}

func generateZsh(commands []registry.CommandInfo) string {
	bin := BinaryName()
	groups, categories := byCategory(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", bin)

	fmt.Fprintf(&b, "_%s_commands() {\n", bin)
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, category := range categories {
		fmt.Fprintf(&b, "        '%s:%d actions'\n", category, len(groups[category]))
	}
	b.WriteString("    )\n")
	b.WriteString("    _describe 'command' commands\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "_%s() {\n", bin)
	b.WriteString("    local state\n")
	b.WriteString("    _arguments '1: :->category' '2: :->action' '*: :->args'\n\n")
	b.WriteString("    case $state in\n")
	b.WriteString("        category)\n")
	fmt.Fprintf(&b, "            _%s_commands\n", bin)
	b.WriteString("            ;;\n")
	b.WriteString("        action)\n")
	b.WriteString("            local -a actions\n")
	b.WriteString("            case $words[2] in\n")
	for _, category := range categories {
		fmt.Fprintf(&b, "                %s)\n", category)
		b.WriteString("                    actions=(\n")
		for _, cmd := range groups[category] {
			fmt.Fprintf(&b, "                        '%s:%s'\n", cmd.Action, zshEscape(cmd.Summary))
		}
		b.WriteString("                    )\n")
		b.WriteString("                    ;;\n")
	}
	b.WriteString("            esac\n")
	b.WriteString("            _describe 'action' actions\n")
	b.WriteString("            ;;\n")
	b.WriteString("        args)\n")
	b.WriteString("            local -a flags\n")
	b.WriteString("            case \"$words[2]/$words[3]\" in\n")
	for _, category := range categories {
		for _, cmd := range groups[category] {
			flags := flagWords(cmd)
			if len(flags) == 0 {
				continue
			}
			fmt.Fprintf(&b, "                %s/%s) flags=(%s) ;;\n",
				category, cmd.Action, strings.Join(flags, " "))
		}
	}
	b.WriteString("            esac\n")
	b.WriteString("            compadd -- $flags\n")
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "_%s \"$@\"\n", bin)
	return b.String()
}

func generateFish(commands []registry.CommandInfo) string {
	bin := BinaryName()
	groups, categories := byCategory(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s fish completion script\n", bin)
	fmt.Fprintf(&b, "complete -c %s -f\n\n", bin)

	for _, category := range categories {
		fmt.Fprintf(&b, "complete -c %s -n '__fish_use_subcommand' -a %s -d '%d actions'\n",
			bin, category, len(groups[category]))
	}
	b.WriteString("\n")

	for _, category := range categories {
		for _, cmd := range groups[category] {
			fmt.Fprintf(&b, "complete -c %s -n '__fish_seen_subcommand_from %s' -a %s -d '%s'\n",
				bin, category, cmd.Action, fishEscape(cmd.Summary))
			for _, arg := range cmd.Args {
				fmt.Fprintf(&b, "complete -c %s -n '__fish_seen_subcommand_from %s; and __fish_seen_subcommand_from %s'",
					bin, category, cmd.Action)
				fmt.Fprintf(&b, " -l %s", arg.Name)
				if arg.Short != "" {
					fmt.Fprintf(&b, " -s %s", arg.Short)
				}
				if arg.Help != "" {
					fmt.Fprintf(&b, " -d '%s'", fishEscape(arg.Help))
				}
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func zshEscape(s string) string {
	return strings.ReplaceAll(s, "'", "'\\''")
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
