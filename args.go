package cleanrun

import (
	"fmt"
	"math"
	"strings"
)

// Unlimited may be passed as the max count of a trailing argument to
// accept any number of values.
const Unlimited = math.MaxInt

type positionalSpec struct {
	name        string
	description string
}

type trailingSpec struct {
	name        string
	min, max    int
	description string
}

// Arguments is the registry of expected free (non-flag) arguments: an
// ordered list of named positional arguments, optionally followed by a
// single trailing argument that may repeat. The registry is built
// during application configuration and read-only afterwards.
type Arguments struct {
	positional []positionalSpec
	trailing   *trailingSpec
}

// argMatches holds the validated free-argument bindings: one value per
// declared positional argument, plus the trailing values in order.
type argMatches struct {
	positional map[string]string
	trailing   []string
}

// Declared reports whether name is already taken by a positional or
// trailing declaration. Argument names must be unique; reusing one
// would silently shadow a binding, so registration treats it as a
// defect in the calling program.
func (s *Arguments) declared(name string) bool {
	for _, p := range s.positional {
		if p.name == name {
			return true
		}
	}
	return s.trailing != nil && s.trailing.name == name
}

// Positional registers the next positional argument with its name and
// the description shown in usage messages. Panics if the trailing
// argument has already been declared, or if the name is already in
// use: both indicate a defect in the calling program, not user input.
func (s *Arguments) Positional(name, description string) {
	if s.trailing != nil {
		panic("cleanrun: cannot declare positional arguments after the trailing argument")
	}
	if s.declared(name) {
		panic(fmt.Sprintf("cleanrun: argument %q declared twice", name))
	}
	s.positional = append(s.positional, positionalSpec{name: name, description: description})
}

// Trailing registers the trailing arguments with a base name and a
// description. min and max bound the number of accepted values; pass
// Unlimited as max for an unbounded list. The common cases are (0, 1)
// for an optional argument, (0, Unlimited) for an optional list, and
// (1, Unlimited) for a list with at least one entry.
//
// Panics if a trailing argument has already been declared, if the
// name is already in use, or if the bounds are inconsistent.
func (s *Arguments) Trailing(name string, min, max int, description string) {
	if s.trailing != nil {
		panic("cleanrun: cannot declare the trailing argument more than once")
	}
	if min < 0 {
		panic("cleanrun: trailing argument min count must not be negative")
	}
	if max < min {
		panic("cleanrun: trailing argument max count must not be below its min count")
	}
	if s.declared(name) {
		panic(fmt.Sprintf("cleanrun: argument %q declared twice", name))
	}
	s.trailing = &trailingSpec{name: name, min: min, max: max, description: description}
}

// TrailingBrief returns the placeholder token for the trailing
// argument in usage summaries.
func trailingBrief(name string, min, max int) string {
	switch {
	case min == 0 && max == 1:
		return "[" + name + "]"
	case min == 0 && max == Unlimited:
		return "[" + name + "1 .. " + name + "N]"
	case min == 1 && max == Unlimited:
		return name + "1 [.. " + name + "N]"
	default:
		return fmt.Sprintf("%s%d .. %s%d", name, min, name, max)
	}
}

// Brief returns a one-line summary of the declared arguments, for use
// in the usage banner. Empty if nothing has been declared.
func (s *Arguments) brief() string {
	tokens := make([]string, 0, len(s.positional)+1)
	for _, p := range s.positional {
		tokens = append(tokens, p.name)
	}
	if t := s.trailing; t != nil {
		tokens = append(tokens, trailingBrief(t.name, t.min, t.max))
	}
	return strings.Join(tokens, " ")
}

// Usage returns the multi-line "Arguments:" help block with one
// two-column row per declared argument. Empty if nothing has been
// declared. The layout matches the options block so that both help
// sections align.
func (s *Arguments) usage() string {
	if len(s.positional) == 0 && s.trailing == nil {
		return ""
	}

	var text strings.Builder
	text.WriteString("Arguments:\n")
	for _, p := range s.positional {
		text.WriteString(formatTwoColumns("    "+p.name, p.description, col2Start, col2Width))
		text.WriteByte('\n')
	}
	if t := s.trailing; t != nil {
		brief := trailingBrief(t.name, t.min, t.max)
		text.WriteString(formatTwoColumns("    "+brief, t.description, col2Start, col2Width))
		text.WriteByte('\n')
	}
	return text.String()
}

// Parse validates the free arguments left over by option parsing
// against the registry and returns their bindings. Positional
// declarations consume the free arguments in order; whatever remains
// belongs to the trailing argument, whose count must lie within its
// declared bounds. The call is all-or-nothing: on error no partial
// bindings are returned.
func (s *Arguments) parse(free []string) (*argMatches, error) {
	positional := make(map[string]string, len(s.positional))
	for i, p := range s.positional {
		if i >= len(free) {
			return nil, badUsagef("Required argument '%s' not provided", p.name)
		}
		positional[p.name] = free[i]
	}
	rest := free[len(s.positional):]

	var trailing []string
	if t := s.trailing; t != nil {
		trailing = append(trailing, rest...)
		if len(trailing) < t.min {
			if t.min == 1 {
				return nil, badUsagef("Trailing argument '%s' requires at least 1 value", t.name)
			}
			return nil, badUsagef("Trailing argument '%s' requires at least %d values", t.name, t.min)
		}
		if len(trailing) > t.max {
			return nil, badUsagef("Too many arguments")
		}
	} else if len(rest) > 0 {
		return nil, badUsagef("Too many arguments")
	}

	return &argMatches{positional: positional, trailing: trailing}, nil
}
