package cleanrun_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/janert/cleanrun"
	"github.com/janert/cleanrun/testutil"
)

// NewMinimal builds an application with no flags or arguments of its
// own, mirroring the examples/minimal program.
func newMinimal() *cleanrun.App {
	return cleanrun.New("Minimal", "1.2.3").DisableLogInit()
}

func minimalMain(*cleanrun.Matches) (int, error) {
	return 0, nil
}

// NewEverything builds an application that exercises every optional
// hook, mirroring the examples/everything program.
func newEverything() *cleanrun.App {
	return cleanrun.New("Everything", "1.0.0").
		DisableLogInit().
		Copyright("Copyright 2025 The cleanrun authors").
		Bugs("https://example.com/everything/issues/").
		Homepage("https://everything.example.com/").
		Manpage("the-everything", "8").
		ExtraHelp(func(w io.Writer) error {
			_, err := fmt.Fprintln(w, "This is an extra help message.")
			return err
		}).
		BoolFlag("p", "print-args", "print free arguments").
		Positional("first", "this is the first required argument and contains a very long description").
		Positional("second", "short description").
		Positional("third_has_a_very_long_name", "and a short description").
		Trailing("name", 0, cleanrun.Unlimited, "file names")
}

func everythingMain(m *cleanrun.Matches) (int, error) {
	if !m.Called("print-args") {
		return 0, nil
	}

	fmt.Fprintf(m.Stdout, "First arg: %s\n", m.Arg("first"))
	fmt.Fprintf(m.Stdout, "Second arg: %s\n", m.Arg("second"))
	fmt.Fprintf(m.Stdout, "Third arg: %s\n", m.Arg("third_has_a_very_long_name"))
	for _, name := range m.Trail() {
		fmt.Fprintf(m.Stdout, "File name: %s\n", name)
	}
	return 42, nil
}

const minimalHelp = `Usage: minimal [options]

Options:
    -h, --help          show command-line usage information and exit
        --version       show version information and exit

`

const everythingHelp = `Usage: everything [options] first second third_has_a_very_long_name [name1 .. nameN]

Options:
    -h, --help          show command-line usage information and exit
        --version       show version information and exit
    -p, --print-args    print free arguments

Arguments:
    first               this is the first required argument and contains a
                        very long description
    second              short description
    third_has_a_very_long_name
                        and a short description
    [name1 .. nameN]    file names

This is an extra help message.

Report bugs to: https://example.com/everything/issues/
Everything home page: https://everything.example.com/
`

func TestMinimalNoArguments(t *testing.T) {
	testutil.Check(t, newMinimal(), minimalMain,
		[]string{"minimal"}, 0, "", "")
}

func TestMinimalHelp(t *testing.T) {
	testutil.Check(t, newMinimal(), minimalMain,
		[]string{"minimal", "--help"}, 0, minimalHelp, "")

	testutil.Check(t, newMinimal(), minimalMain,
		[]string{"minimal", "-h"}, 0, minimalHelp, "")
}

func TestMinimalVersion(t *testing.T) {
	testutil.Check(t, newMinimal(), minimalMain,
		[]string{"minimal", "--version"}, 0, "Minimal 1.2.3\n", "")
}

func TestMinimalSurplusArgument(t *testing.T) {
	testutil.Check(t, newMinimal(), minimalMain,
		[]string{"minimal", "surplus"}, 2, "",
		"Usage error: Too many arguments\n"+
			"Type `minimal --help` for more information\n")
}

func TestMinimalHelpWinsOverSurplusArgument(t *testing.T) {
	testutil.Check(t, newMinimal(), minimalMain,
		[]string{"minimal", "surplus", "--help"}, 0, minimalHelp, "")
}

func TestMinimalUnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := newMinimal().
		CommandLine([]string{"minimal", "--bogus"}).
		Output(&stdout, &stderr).
		Run(minimalMain)

	require.Equal(t, 2, code)
	require.Empty(t, stdout.String())
	require.True(t, strings.HasPrefix(stderr.String(), "Usage error: "),
		"stderr=%q", stderr.String())
	require.Contains(t, stderr.String(),
		"Type `minimal --help` for more information\n")
}

func TestMinimalApplicationError(t *testing.T) {
	testutil.Check(t, newMinimal(),
		func(*cleanrun.Matches) (int, error) {
			return 0, errors.New("something went wrong")
		},
		[]string{"minimal"}, 1, "", "minimal: something went wrong\n")
}

func TestEverythingHelp(t *testing.T) {
	testutil.Check(t, newEverything(), everythingMain,
		[]string{"everything", "--help"}, 0, everythingHelp, "")
}

func TestEverythingPrintArgsShort(t *testing.T) {
	testutil.Check(t, newEverything(), everythingMain,
		[]string{"everything", "-p", "abc", "de fg", "h", "f1"}, 42,
		"First arg: abc\n"+
			"Second arg: de fg\n"+
			"Third arg: h\n"+
			"File name: f1\n", "")
}

func TestEverythingPrintArgsLong(t *testing.T) {
	testutil.Check(t, newEverything(), everythingMain,
		[]string{"everything", "--print-args", "a", "b", "c", "f1", "f2", "f3"}, 42,
		"First arg: a\n"+
			"Second arg: b\n"+
			"Third arg: c\n"+
			"File name: f1\n"+
			"File name: f2\n"+
			"File name: f3\n", "")
}

func TestEverythingWithoutPrintArgs(t *testing.T) {
	testutil.Check(t, newEverything(), everythingMain,
		[]string{"everything", "a", "b", "c"}, 0, "", "")
}

func TestEverythingMissingArgument(t *testing.T) {
	testutil.Check(t, newEverything(), everythingMain,
		[]string{"everything", "a", "b"}, 2, "",
		"Usage error: Required argument 'third_has_a_very_long_name' not provided\n"+
			"Type `everything --help` or `man 8 the-everything` for more information\n")
}

func TestRequiredTrailingArguments(t *testing.T) {
	app := func() *cleanrun.App {
		return cleanrun.New("Gather", "0.1.0").
			DisableLogInit().
			Trailing("file", 1, cleanrun.Unlimited, "files to gather")
	}

	testutil.Check(t, app(), minimalMain,
		[]string{"gather", "f1"}, 0, "", "")

	testutil.Check(t, app(), minimalMain,
		[]string{"gather"}, 2, "",
		"Usage error: Trailing argument 'file' requires at least 1 value\n"+
			"Type `gather --help` for more information\n")
}

func TestImperativeStart(t *testing.T) {
	var stdout, stderr bytes.Buffer
	matches, err := cleanrun.New("Imperative", "0.1.0").
		DisableLogInit().
		StringFlag("o", "output", "FILE", "write to FILE").
		CommandLine([]string{"imperative", "--output", "out.txt"}).
		Output(&stdout, &stderr).
		Start()

	require.NoError(t, err)
	require.NotNil(t, matches)
	require.Equal(t, "out.txt", matches.String("output"))
	require.Empty(t, stdout.String())
	require.Empty(t, stderr.String())
}

func TestRunContextPassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "payload")

	var stdout, stderr bytes.Buffer
	code := cleanrun.New("Ctx", "0.1.0").
		DisableLogInit().
		CommandLine([]string{"ctx"}).
		Output(&stdout, &stderr).
		RunContext(ctx, func(ctx context.Context, m *cleanrun.Matches) (int, error) {
			require.Equal(t, "payload", ctx.Value(key{}))
			return 5, nil
		})

	require.Equal(t, 5, code)
}

func TestCountAndMultiStringFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := cleanrun.New("Multi", "0.1.0").
		DisableLogInit().
		CountFlag("v", "verbose", "increase verbosity").
		MultiStringFlag("I", "include", "DIR", "add DIR to the search path").
		CommandLine([]string{"multi", "-v", "-v", "-I", "a", "--include", "b"}).
		Output(&stdout, &stderr).
		Run(func(m *cleanrun.Matches) (int, error) {
			require.Equal(t, 2, m.Count("verbose"))
			require.Equal(t, []string{"a", "b"}, m.Strings("include"))
			return 0, nil
		})

	require.Equal(t, 0, code)
	require.Empty(t, stderr.String())
}
