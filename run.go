package cleanrun

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ProgramName derives the program's display name from argv[0]: its
// base name with the extension removed. Returns defaultName when the
// name cannot be determined.
func programName(argv []string, defaultName string) string {
	if len(argv) == 0 || argv[0] == "" {
		return defaultName
	}
	base := filepath.Base(argv[0])
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return defaultName
	}
	return stem
}

// PrintHelp writes the full help message: the usage banner with the
// options block, the arguments block, the application's extra help,
// and the bug-report and home-page lines. The layout is part of the
// external contract; other tooling may parse it byte for byte.
func (a *App) printHelp() {
	brief := "Usage: " + a.programName + " [options]"
	argsBrief := a.args.brief()
	if argsBrief != "" {
		brief += " " + argsBrief
	}

	fmt.Fprintln(a.stdout, a.flags.usage(brief))
	if argsBrief != "" {
		fmt.Fprintln(a.stdout, a.args.usage())
	}

	if a.extraHelp != nil {
		_ = a.extraHelp(a.stdout)
		fmt.Fprintln(a.stdout)
	}

	if a.bugs != "" {
		fmt.Fprintf(a.stdout, "Report bugs to: %s\n", a.bugs)
	}
	if a.homepage != "" {
		fmt.Fprintf(a.stdout, "%s home page: %s\n", a.stylizedName, a.homepage)
	}
}

// PrintVersion writes the version message in the GNU Standards layout.
func (a *App) printVersion() {
	fmt.Fprintf(a.stdout, "%s %s\n", a.stylizedName, a.version)
	if a.copyright != "" {
		fmt.Fprintln(a.stdout, a.copyright)
	}
	if a.license != LicenseNone {
		fmt.Fprintf(a.stdout, "License %s\n", a.license)
	}
}

// InitLogging installs a default slog text logger on the error stream,
// with the level taken from the LOG_LEVEL environment variable. It
// runs only after argument validation succeeds, so usage errors never
// produce log output.
func (a *App) initLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	handler := slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// PreRun takes the lifecycle up to the point where the application's
// own code may run: parse the command line, intercept the standard
// flags, validate the free arguments. A nil Matches with a nil error
// means a standard flag was handled and the run is over, successfully.
func (a *App) preRun() (*Matches, error) {
	var rest []string
	if len(a.argv) > 1 {
		rest = a.argv[1:]
	}

	free, err := a.opt.Parse(rest)
	if err != nil {
		return nil, &UsageError{Message: err.Error()}
	}

	if a.opt.Called("help") {
		a.printHelp()
		return nil, nil
	}
	if a.opt.Called("version") {
		a.printVersion()
		return nil, nil
	}

	args, err := a.args.parse(free)
	if err != nil {
		return nil, err
	}

	if a.initLog {
		a.initLogging()
	}

	return &Matches{
		ProgramName: a.programName,
		Stdout:      a.stdout,
		Stderr:      a.stderr,
		opt:         a.opt,
		flags:       a.flags,
		args:        args,
	}, nil
}

// HandleError prints the diagnostic for err and returns the process
// exit code: 2 for usage errors, 1 for everything else. Usage errors
// get one extra line telling the user where to find help.
func (a *App) handleError(err error) int {
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(a.stderr, "Usage error: %s\n", usageErr.Message)
		if a.manPage != "" {
			fmt.Fprintf(a.stderr, "Type `%s --help` or `man %s %s` for more information\n",
				a.programName, a.manSection, a.manPage)
		} else {
			fmt.Fprintf(a.stderr, "Type `%s --help` for more information\n", a.programName)
		}
		return 2
	}

	fmt.Fprintf(a.stderr, "%s: %s\n", a.programName, err)
	return 1
}

// Start processes the command line as previously configured and
// handles the standard flags. It returns (nil, nil) when a standard
// flag was handled and the program should exit immediately with code
// zero. Prefer Run or Main, which hide these return semantics; Start
// exists for fully imperative programs.
func (a *App) Start() (*Matches, error) {
	return a.preRun()
}

// Run executes the whole startup lifecycle and delegates to main once
// the command line has been validated. It returns the exit code the
// caller must pass to os.Exit: main's own code on success, 2 on usage
// errors, 1 on any other error, 0 after --help or --version.
func (a *App) Run(main func(*Matches) (int, error)) int {
	matches, err := a.preRun()
	if err != nil {
		return a.handleError(err)
	}
	if matches == nil {
		return 0
	}

	code, err := main(matches)
	if err != nil {
		return a.handleError(err)
	}
	return code
}

// RunContext is the variant of Run for applications whose main does
// context-aware work. The lifecycle still awaits exactly one outcome
// from main; nothing within the engine runs concurrently with it.
func (a *App) RunContext(ctx context.Context, main func(context.Context, *Matches) (int, error)) int {
	matches, err := a.preRun()
	if err != nil {
		return a.handleError(err)
	}
	if matches == nil {
		return 0
	}

	code, err := main(ctx, matches)
	if err != nil {
		return a.handleError(err)
	}
	return code
}

// Main runs the application and exits the process with the resulting
// code.
func (a *App) Main(main func(*Matches) (int, error)) {
	os.Exit(a.Run(main))
}
