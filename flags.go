package cleanrun

import (
	"fmt"
	"strings"

	"github.com/DavidGamba/go-getoptions"
)

// flagKind selects the registration call and the usage-row layout for
// a flag. Which Matches accessor is valid for the flag follows from
// its kind.
type flagKind int

const (
	flagBool flagKind = iota
	flagCount
	flagString
	flagStrings
	flagInt
)

type flagDef struct {
	short       string
	long        string
	hint        string
	description string
	kind        flagKind
}

// Name returns the canonical lookup name for the flag: the long form
// when present, the short form otherwise.
func (d flagDef) name() string {
	if d.long != "" {
		return d.long
	}
	return d.short
}

// flagSet records the declared flags in order, so the options block of
// the help output can be rendered deterministically. The actual
// command-line parsing is delegated to go-getoptions; flagSet only
// mirrors the declarations.
type flagSet struct {
	defs []flagDef
}

// Add records def and registers it with opt. A missing or malformed
// name panics: the declaration is part of the program, not of user
// input. Redeclaring a name (including the reserved "help" and
// "version" flags) makes go-getoptions panic, which is the intended
// fail-fast behavior.
func (f *flagSet) add(opt *getoptions.GetOpt, def flagDef) {
	if def.short == "" && def.long == "" {
		panic("cleanrun: flag needs a short or a long name")
	}
	if len(def.short) > 1 {
		panic(fmt.Sprintf("cleanrun: short flag %q must be a single character", def.short))
	}
	f.defs = append(f.defs, def)

	var modifiers []getoptions.ModifyFn
	if def.short != "" && def.long != "" {
		modifiers = append(modifiers, opt.Alias(def.short))
	}
	if def.description != "" {
		modifiers = append(modifiers, opt.Description(def.description))
	}
	if def.hint != "" {
		modifiers = append(modifiers, opt.ArgName(def.hint))
	}

	switch def.kind {
	case flagBool:
		opt.Bool(def.name(), false, modifiers...)
	case flagCount:
		opt.Increment(def.name(), 0, modifiers...)
	case flagString:
		opt.String(def.name(), "", modifiers...)
	case flagStrings:
		opt.StringSlice(def.name(), 1, 1, modifiers...)
	case flagInt:
		opt.Int(def.name(), 0, modifiers...)
	}
}

// Resolve maps a short or long flag name to the canonical name used
// for lookups. Asking for a name that was never declared is a defect
// in the calling program and panics.
func (f *flagSet) resolve(name string) string {
	for _, d := range f.defs {
		if name == d.short || name == d.long {
			return d.name()
		}
	}
	panic(fmt.Sprintf("cleanrun: flag %q was never declared", name))
}

// Usage renders the usage banner followed by the "Options:" block,
// one two-column row per flag in declaration order. Flags without a
// short form are indented so that the long forms line up.
func (f *flagSet) usage(brief string) string {
	var text strings.Builder

	text.WriteString(brief)
	text.WriteString("\n\nOptions:\n")
	for _, d := range f.defs {
		col1 := "    "
		switch {
		case d.short != "" && d.long != "":
			col1 += "-" + d.short + ", --" + d.long
		case d.long != "":
			col1 += "    --" + d.long
		default:
			col1 += "-" + d.short
		}
		if d.hint != "" {
			col1 += " " + d.hint
		}
		text.WriteString(formatTwoColumns(col1, d.description, col2Start, col2Width))
		text.WriteByte('\n')
	}
	return text.String()
}
