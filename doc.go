/*
Package cleanrun implements the startup lifecycle of a command-line
program: option processing (delegated to go-getoptions), declarative
positional and trailing arguments, standard --help and --version
handling, and the classification of failures into exit codes.

The intended use is to hand the whole main function over to the
package:

	func setup(app *cleanrun.App) *cleanrun.App {
		return app.
			BoolFlag("p", "print-args", "print free arguments").
			Positional("input", "the file to read").
			Trailing("output", 0, cleanrun.Unlimited, "files to write")
	}

	func run(m *cleanrun.Matches) (int, error) {
		...
		return 0, nil
	}

	func main() {
		setup(cleanrun.New("Example", "1.0.0")).Main(run)
	}

# Options and Arguments

Flags are declared with BoolFlag, CountFlag, StringFlag,
MultiStringFlag, and IntFlag. Parsing of the flag syntax itself is
performed by go-getoptions; this package only consumes the resulting
values and the list of leftover free arguments.

Free arguments are declared with Positional and Trailing. Positional
arguments are required, named, and bound in declaration order.
The single Trailing declaration, which must come last, absorbs the
remaining arguments; its min and max counts express an optional
argument (0, 1), an optional list (0, Unlimited), or a non-empty list
(1, Unlimited).

A command line that does not satisfy the declarations is a usage
error: the program prints one diagnostic line plus a pointer to
--help, and exits with code 2.

# Standard Flags

Every application accepts --help/-h and --version. They are registered
before all application flags and cannot be redefined or removed. Both
short-circuit the run: the requested text is printed and the process
exits with code 0, without validating the remaining arguments and
without running the application's main function.

The help output consists of a "Usage:" banner, the options block, an
"Arguments:" block when arguments are declared, optional extra help
text, and optional bug-report and home-page lines. Its layout is
stable and may be relied upon byte for byte.

# Exit Codes

	0  success, or --help/--version was handled
	2  usage error (bad flags or bad arguments)
	1  any other error returned by the application

A successful main's integer result is returned verbatim, whatever its
value.

# Programming Errors

Declaring two arguments with the same name, declaring a positional
after the trailing argument, declaring the trailing argument twice,
or looking up a flag or argument name that was never declared are
defects in the calling program, not user errors. They panic
immediately with a message naming the defect.
*/
package cleanrun
