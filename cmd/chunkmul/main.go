// Command chunkmul is one worker of a row-partitioned matrix product.
//
// Usage:
//
//	chunkmul [flags] <id> <N> <file m1> <file m2>
//	chunkmul plan <rows> <N>
//
// Worker id of N reads only its rows of m1, the whole of m2, and prints the
// owned rows of m1×m2. Slices from different workers are combined elsewhere.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/chunkmul/internal/config"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const usageText = `Parameters: chunkmul <id> <N> <file m1> <file m2>
With:
	<id> Number of process (0..N-1)
	<N> Total number of processes
	<file m1> Matrix A ("-" reads standard input)
	<file m2> Matrix B ("-" reads standard input)
`

const planUsageText = `Parameters: chunkmul plan <rows> <N>
With:
	<rows> Number of rows of matrix A
	<N> Total number of processes
`

// usageAnnotation names the cobra annotation holding a command's usage text.
const usageAnnotation = "chunkmul/usage"

// usageError marks command-line arity and flag errors (exit code 2).
// usage is the text of the command that rejected the arguments.
type usageError struct {
	err   error
	usage string
}

// newUsageError builds a usageError carrying cmd's usage text.
func newUsageError(cmd *cobra.Command, err error) *usageError {
	usage := usageText
	if cmd != nil {
		if text, ok := cmd.Annotations[usageAnnotation]; ok {
			usage = text
		}
	}

	return &usageError{err: err, usage: usage}
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// app carries flag values and the logger shared by the commands.
type app struct {
	configPath string
	verbose    bool
	precision  int
	format     string

	cfg    *config.Config
	logger *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and maps the outcome to an exit code.
// It is the only place that reports errors to the user.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, logger: zap.NewNop()}
	root := a.newRootCmd()
	root.SetArgs(args)

	err := root.Execute()
	var ue *usageError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &ue):
		fmt.Fprint(stdout, ue.usage)
		a.logger.Debug("usage error", zap.Error(err))
		return exitUsage
	default:
		fmt.Fprintf(stdout, "Error: %s\n", err)
		return exitError
	}
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chunkmul <id> <N> <file m1> <file m2>",
		Short: "Compute one worker's row slice of a matrix product",
		Long: `chunkmul multiplies two dense float32 matrices, restricted to the rows of the
left matrix owned by one worker. Rows are split among N workers as evenly as
possible: the first R%N workers take R/N+1 rows, the others R/N.

Each worker runs independently and prints only its own slice.

Input values must be finite: nan and inf tokens are reported as malformed
input unless the config sets input.validate_nan_inf to false.`,
		Args:          exactArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runWorker,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newUsageError(cmd, err)
	})

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging on stderr")
	root.Flags().IntVar(&a.precision, "precision", -1, "digits per value (-1 = shortest)")
	root.Flags().StringVar(&a.format, "format", "g", "value format: g, f or e")

	root.AddCommand(a.newPlanCmd())

	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	// --precision and --format are local to the worker command; Lookup
	// returns nil when setup runs for plan.
	if f := cmd.Flags().Lookup("precision"); f != nil && f.Changed {
		cfg.Output.Precision = a.precision
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		cfg.Output.Format = a.format
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.Logging, a.stderr)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	return nil
}

// exactArgs is cobra.ExactArgs with arity failures classified as usage errors.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return newUsageError(cmd, err)
		}
		return nil
	}
}
