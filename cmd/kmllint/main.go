package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cleder/fastkml-go"
	kmlerrors "github.com/cleder/fastkml-go/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("kmllint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	lenient := fs.Bool("lenient", false, "log malformed field values instead of failing")
	ns := fs.String("namespace", "", "expected document namespace URI (default OGC KML 2.2)")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s [options] <document.kml>...\n\n", os.Args[0]),
			writeln(stderr, "Parses KML documents and reports structural errors."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		if err := writeln(stderr, "error: at least one KML file argument is required"); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}

	opts := kml.NewParseOptions().WithStrict(!*lenient)
	if *ns != "" {
		opts = opts.WithNamespace(*ns)
	}

	exit := 0
	for _, path := range remaining {
		if _, err := kml.ParseFile(path, opts); err != nil {
			if perr, ok := kmlerrors.AsParse(err); ok {
				if writeErr := writeln(stderr, perr.Error()); writeErr != nil {
					return 1
				}
			} else if writeErr := writef(stderr, "error: %v\n", err); writeErr != nil {
				return 1
			}
			if writeErr := writef(stderr, "%s fails to validate\n", path); writeErr != nil {
				return 1
			}
			exit = 1
			continue
		}
		if err := writef(stdout, "%s validates\n", path); err != nil {
			return 1
		}
	}
	return exit
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
