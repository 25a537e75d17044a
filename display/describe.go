package display

import (
	"fmt"
	"strings"

	"github.com/chriso345/decorum/core"
)

// Describe renders a human-readable outline of t: its members grouped by
// kind with the policies in effect, followed by its statics. With color set,
// headings are emphasized with ANSI escapes.
func Describe(t *core.Type, color bool) string {
	var builder strings.Builder
	heading := func(s string) string {
		if !color {
			return s
		}
		return ansiHelp(s, ansiBold, ansiUnderline)
	}

	builder.WriteString(heading("Type:") + " ")
	name := t.Name()
	if color {
		name = ansiHelp(name, ansiBold)
	}
	builder.WriteString(name)
	if t.IsFrozen() {
		builder.WriteString(" (frozen)")
	}
	builder.WriteString("\n")

	members := t.Members()
	for _, kind := range []core.Kind{core.KindField, core.KindAccessor, core.KindMethod} {
		if section := membersHelp(members, kind); section != "" {
			builder.WriteString("\n" + heading(sectionTitle(kind)) + "\n")
			builder.WriteString(section)
		}
	}

	if statics := staticsHelp(t); statics != "" {
		builder.WriteString("\n" + heading("Statics:") + "\n")
		builder.WriteString(statics)
	}
	return builder.String()
}

func sectionTitle(k core.Kind) string {
	switch k {
	case core.KindField:
		return "Fields:"
	case core.KindAccessor:
		return "Accessors:"
	}
	return "Methods:"
}

// membersHelp generates the aligned lines for every member of kind k.
func membersHelp(members []core.Member, k core.Kind) string {
	var lines []string
	maxLen := 0

	for _, m := range members {
		if m.Kind != k {
			continue
		}
		label := "  " + m.Name
		if k == core.KindMethod {
			label += "()"
		}

		var notes []string
		if k == core.KindAccessor {
			if m.HasGetterSetter() {
				notes = append(notes, "get/set")
			} else {
				notes = append(notes, "read-only")
			}
		}
		for _, p := range m.Policies() {
			notes = append(notes, p.String())
		}

		if len(label) > maxLen {
			maxLen = len(label)
		}
		lines = append(lines, fmt.Sprintf("%s||%s", label, strings.Join(notes, ", ")))
	}

	return align(lines, maxLen)
}

// staticsHelp lists the class-level values in name order.
func staticsHelp(t *core.Type) string {
	var lines []string
	maxLen := 0
	for _, name := range t.StaticNames() {
		v, _ := t.Static(name)
		label := "  " + name
		if len(label) > maxLen {
			maxLen = len(label)
		}
		lines = append(lines, fmt.Sprintf("%s||= %#v", label, v))
	}
	return align(lines, maxLen)
}

// align pads the "label||text" lines so the text column lines up.
func align(lines []string, maxLen int) string {
	var builder strings.Builder
	for _, line := range lines {
		parts := strings.SplitN(line, "||", 2)
		if parts[1] == "" {
			builder.WriteString(parts[0] + "\n")
			continue
		}
		padding := strings.Repeat(" ", maxLen-len(parts[0]))
		builder.WriteString(fmt.Sprintf("%s%s  %s\n", parts[0], padding, parts[1]))
	}
	return builder.String()
}
