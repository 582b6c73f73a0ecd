package cleanrun

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DavidGamba/go-getoptions"
)

// App collects an application's metadata, its option and argument
// declarations, and the settings of the startup lifecycle. It is
// configured once through chained calls and then consumed by one of
// Run, RunContext, Start, or Main.
type App struct {
	stylizedName string
	version      string
	programName  string

	copyright  string
	license    License
	manPage    string
	manSection string
	homepage   string
	bugs       string
	extraHelp  func(io.Writer) error

	initLog bool

	argv   []string
	stdout io.Writer
	stderr io.Writer

	opt   *getoptions.GetOpt
	flags *flagSet
	args  *Arguments
}

// New creates an application. stylizedName is the program's display
// name, irrespective of how it was invoked; it appears in --version
// output, and its lowercase form serves as the program name when the
// real one cannot be derived from the command line. version is the
// program's version string.
//
// The standard --help/-h and --version flags are registered here,
// before any application flag, and cannot be redefined or removed.
func New(stylizedName, version string) *App {
	a := &App{
		stylizedName: stylizedName,
		version:      version,
		initLog:      true,
		argv:         os.Args,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		opt:          getoptions.New(),
		flags:        &flagSet{},
		args:         &Arguments{},
	}
	a.programName = programName(a.argv, strings.ToLower(stylizedName))

	a.BoolFlag("h", "help", "show command-line usage information and exit")
	a.BoolFlag("", "version", "show version information and exit")

	return a
}

// Copyright sets the informational copyright line shown by --version.
// The string must start with "Copyright ".
func (a *App) Copyright(copyright string) *App {
	if !strings.HasPrefix(copyright, "Copyright ") {
		panic(`cleanrun: copyright line must start with "Copyright "`)
	}
	a.copyright = copyright
	return a
}

// Licensed sets the license reported by --version.
func (a *App) Licensed(license License) *App {
	a.license = license
	return a
}

// Manpage names the program's manual page; usage errors then point the
// user at `man section page` in addition to --help.
func (a *App) Manpage(page, section string) *App {
	a.manPage = page
	a.manSection = section
	return a
}

// Homepage sets the home page URL printed at the end of --help output.
func (a *App) Homepage(homepage string) *App {
	a.homepage = homepage
	return a
}

// Bugs sets the bug reporting URL printed at the end of --help output.
func (a *App) Bugs(bugs string) *App {
	a.bugs = bugs
	return a
}

// ExtraHelp registers a function that writes additional text into the
// --help output, after the arguments block.
func (a *App) ExtraHelp(fn func(io.Writer) error) *App {
	a.extraHelp = fn
	return a
}

// DisableLogInit tells the lifecycle not to install the default slog
// logger, so that the caller can do so at a better moment (e.g. after
// daemonizing, once a log file has been opened).
func (a *App) DisableLogInit() *App {
	a.initLog = false
	return a
}

// CommandLine replaces the command line the application operates on.
// argv[0] is the program path; the display name is derived from it
// again. The default is os.Args. Mostly useful for tests.
func (a *App) CommandLine(argv []string) *App {
	a.argv = argv
	a.programName = programName(argv, strings.ToLower(a.stylizedName))
	return a
}

// Output replaces the streams that help, version, and diagnostic text
// are written to. The defaults are os.Stdout and os.Stderr.
func (a *App) Output(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// BoolFlag declares a boolean flag. Either name may be empty, but not
// both; the long name, when present, is the one used for lookups.
func (a *App) BoolFlag(short, long, description string) *App {
	a.flags.add(a.opt, flagDef{short: short, long: long, description: description, kind: flagBool})
	return a
}

// CountFlag declares a repeatable boolean flag whose occurrences are
// counted, for the usual -v -v -v verbosity idiom.
func (a *App) CountFlag(short, long, description string) *App {
	a.flags.add(a.opt, flagDef{short: short, long: long, description: description, kind: flagCount})
	return a
}

// StringFlag declares a flag taking one string value. hint names the
// value in the help output (e.g. "FILE").
func (a *App) StringFlag(short, long, hint, description string) *App {
	a.flags.add(a.opt, flagDef{short: short, long: long, hint: hint, description: description, kind: flagString})
	return a
}

// MultiStringFlag declares a repeatable flag; each occurrence takes
// one string value and the values accumulate in order.
func (a *App) MultiStringFlag(short, long, hint, description string) *App {
	a.flags.add(a.opt, flagDef{short: short, long: long, hint: hint, description: description, kind: flagStrings})
	return a
}

// IntFlag declares a flag taking one integer value.
func (a *App) IntFlag(short, long, hint, description string) *App {
	a.flags.add(a.opt, flagDef{short: short, long: long, hint: hint, description: description, kind: flagInt})
	return a
}

// Positional declares the next positional argument. See
// Arguments.Positional.
func (a *App) Positional(name, description string) *App {
	a.args.Positional(name, description)
	return a
}

// Trailing declares the trailing arguments. See Arguments.Trailing.
func (a *App) Trailing(name string, min, max int, description string) *App {
	a.args.Trailing(name, min, max, description)
	return a
}

// Matches contains the results of option and argument processing, and
// is handed to the application's main function once the command line
// has been fully validated. It is read-only from then on.
type Matches struct {
	// ProgramName is the program's display name as derived from the
	// command line, or the configured fallback.
	ProgramName string

	// Stdout and Stderr are the application's configured output
	// streams. Mains that write here instead of to the os streams can
	// be exercised in-process by the testutil package.
	Stdout io.Writer
	Stderr io.Writer

	opt   *getoptions.GetOpt
	flags *flagSet
	args  *argMatches
}

// Called reports whether the flag was given on the command line. The
// name may be the short or the long form; an undeclared name panics.
func (m *Matches) Called(name string) bool {
	return m.opt.Called(m.flags.resolve(name))
}

// Count returns the number of occurrences of a CountFlag.
func (m *Matches) Count(name string) int {
	return m.opt.Value(m.flags.resolve(name)).(int)
}

// String returns the value of a StringFlag, or the empty string when
// the flag was not given.
func (m *Matches) String(name string) string {
	return m.opt.Value(m.flags.resolve(name)).(string)
}

// Strings returns the accumulated values of a MultiStringFlag.
func (m *Matches) Strings(name string) []string {
	return m.opt.Value(m.flags.resolve(name)).([]string)
}

// Int returns the value of an IntFlag, or zero when the flag was not
// given.
func (m *Matches) Int(name string) int {
	return m.opt.Value(m.flags.resolve(name)).(int)
}

// Value returns the raw parsed value of a flag, whatever its kind.
func (m *Matches) Value(name string) any {
	return m.opt.Value(m.flags.resolve(name))
}

// Arg returns the value bound to the named positional argument.
// Asking for a name that was never declared is a defect in the calling
// program and panics.
func (m *Matches) Arg(name string) string {
	value, ok := m.args.positional[name]
	if !ok {
		panic(fmt.Sprintf("cleanrun: positional argument %q was never declared", name))
	}
	return value
}

// Trail returns the trailing arguments left after all positional
// arguments were bound, in command-line order.
func (m *Matches) Trail() []string {
	return m.args.trailing
}
