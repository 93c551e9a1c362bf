// Command utf8check reports whether files (or stdin) are well-formed
// UTF-8, using the vectorized validator.
//
// Usage:
//
//	utf8check file1.txt file2.json
//	cat file | utf8check
//	utf8check --width 16 --scalar big.log   # force a tier, for comparison
//
// The exit status is 0 when every input is well formed and 1 otherwise.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ajroetker/go-simdutf/utf8"
	"github.com/ajroetker/go-simdutf/vec"
)

// CLI defines the utf8check command-line interface.
type CLI struct {
	Paths   []string `arg:"" optional:"" help:"Files to validate (stdin when none given)"`
	Width   int      `short:"w" help:"Vector width in byte lanes: 16, 32 or 64 (default: autodetect)"`
	Scalar  bool     `help:"Force the scalar table-gather tier"`
	Quiet   bool     `short:"q" help:"No per-file output, exit status only"`
	Verbose bool     `short:"v" help:"Print the detected CPU tier before validating"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("utf8check"),
		kong.Description("Validate that inputs are well-formed UTF-8."),
	)

	ok, err := run(&cli, os.Stdout)
	ctx.FatalIfErrorf(err)
	if !ok {
		os.Exit(1)
	}
}

func run(cli *CLI, out io.Writer) (bool, error) {
	v, err := newValidator(cli)
	if err != nil {
		return false, err
	}

	if cli.Verbose {
		fmt.Fprintf(out, "tier=%s width=%s\n", vec.CurrentName(), v.Width())
	}

	if len(cli.Paths) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return false, fmt.Errorf("read stdin: %w", err)
		}
		return report(cli, out, "-", v.Valid(data)), nil
	}

	allOK := true
	for _, path := range cli.Paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return false, fmt.Errorf("read %q: %w", path, err)
		}
		if !report(cli, out, path, v.Valid(data)) {
			allOK = false
		}
	}
	return allOK, nil
}

func newValidator(cli *CLI) (*utf8.Validator, error) {
	var opts []utf8.Option
	if cli.Width != 0 {
		w := vec.Width(cli.Width)
		if !w.Valid() {
			return nil, fmt.Errorf("unsupported width %d (want 16, 32 or 64)", cli.Width)
		}
		opts = append(opts, utf8.WithWidth(w))
	}
	if cli.Scalar {
		opts = append(opts, utf8.WithShuffler(vec.ScalarShuffler()))
	}
	return utf8.New(opts...), nil
}

func report(cli *CLI, out io.Writer, name string, ok bool) bool {
	if !cli.Quiet {
		if ok {
			fmt.Fprintf(out, "ok\t%s\n", name)
		} else {
			fmt.Fprintf(out, "INVALID\t%s\n", name)
		}
	}
	return ok
}
