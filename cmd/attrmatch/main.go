// Command attrmatch evaluates one CSS attribute condition against a tag's
// attributes given on the command line.
//
// Usage:
//
//	attrmatch [--attr name=value]... [--foreign] [--verbose] CONDITION
//
// CONDITION is one of `#id`, `.class`, `[name]` or `[name OP value]` with
// OP in `= ~= |= ^= $= *=`; the value may be quoted and followed by an
// `i` or `s` flag. The tool prints true or false and exits 0 on a match,
// 1 on no match and 2 on errors.
//
// --foreign and --verbose can also be set with ATTRMATCH_FOREIGN and
// ATTRMATCH_VERBOSE.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coregx/cssattr"
)

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	matched := false
	cmd := newRootCmd(stdout, stderr, &matched)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return exitError
	}
	if !matched {
		return exitNoMatch
	}
	return exitMatch
}

func newRootCmd(stdout, stderr io.Writer, matched *bool) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("attrmatch")
	v.AutomaticEnv()

	var attrs []string

	cmd := &cobra.Command{
		Use:           "attrmatch [--attr name=value]... CONDITION",
		Short:         "Evaluate a CSS attribute condition against a tag's attributes",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(stderr, v.GetBool("verbose"))

			cond, err := parseCondition(args[0])
			if err != nil {
				return err
			}
			logger.Debug("parsed condition",
				slog.String("kind", cond.kind.String()),
				slog.String("name", string(cond.operand.Name)),
				slog.String("value", string(cond.operand.Value)),
				slog.String("case", cond.operand.Case.String()))

			input, spans, err := layoutTag(attrs)
			if err != nil {
				return err
			}
			for i, span := range spans {
				logger.Debug("attribute",
					slog.Int("index", i),
					slog.String("name", string(span.Name.Slice(input))),
					slog.String("value", string(span.Value.Slice(input))))
			}

			isHTML := !v.GetBool("foreign")
			m := cssattr.NewMatcher(input, spans, isHTML)
			*matched = cond.eval(m)
			logger.Debug("evaluated", slog.Bool("html", isHTML), slog.Bool("matched", *matched))

			_, err = fmt.Fprintln(stdout, *matched)
			return err
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringArrayVarP(&attrs, "attr", "a", nil, "attribute as name=value, in document order (repeatable)")
	flags.Bool("foreign", false, "treat the element as foreign content (SVG, MathML)")
	flags.BoolP("verbose", "v", false, "log diagnostics to stderr")

	for _, key := range []string{"foreign", "verbose"} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(fmt.Errorf("bind flag %q: %w", key, err))
		}
	}

	return cmd
}

// newLogger returns a text logger on w; debug records are kept only when
// verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
