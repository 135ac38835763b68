package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/meow/internal/app"
	"github.com/MKhiriev/meow/internal/config"
	"github.com/MKhiriev/meow/internal/logger"
	"github.com/MKhiriev/meow/internal/service"
	"github.com/MKhiriev/meow/internal/store"
	"github.com/MKhiriev/meow/internal/utils"
)

// Options configures a single [Execute] call.
type Options struct {
	// Stdout receives command results. Defaults to os.Stdout.
	Stdout io.Writer
	// Stderr receives diagnostics and error reports. Defaults to os.Stderr.
	Stderr io.Writer
	// Build is reported by --version.
	Build BuildInfo
}

// application carries the state of one run from flag parsing to dispatch.
type application struct {
	stdout io.Writer
	stderr io.Writer

	inv       Invocation
	dotenvErr error

	log      *logger.Logger
	cfg      config.Config
	services *service.Services
}

// Execute runs meow with args (without the program name) and returns the
// process exit code. On failure the error message and the exit code are
// written to the error stream.
func Execute(ctx context.Context, args []string, opts Options) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	if args == nil {
		args = []string{}
	}

	a := &application{
		stdout: opts.Stdout,
		stderr: opts.Stderr,
	}
	a.dotenvErr = loadDotEnv(DotEnvFile)

	root := a.newRootCmd(opts.Build)
	root.SetArgs(reorderInput(root, args))
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		if _, ok := app.KindOf(err); !ok {
			err = app.InvalidInput(err.Error())
		}

		code := app.ExitCode(err)
		fmt.Fprintf(opts.Stderr, "Error: %v\n", err)
		fmt.Fprintf(opts.Stderr, "Exiting with code: %d\n", code)
		return code
	}

	return app.ExitSuccess
}

// setup runs before every meow command: it builds the logger, loads the
// configuration and wires the services. Cobra's own help and completion
// commands take no INPUT and skip it.
func (a *application) setup(cmd *cobra.Command, args []string) error {
	if !carriesInput(cmd) || len(args) == 0 {
		return nil
	}
	a.inv.Input = args[0]

	a.log = logger.NewLogger("meow", utils.NewRunID(), a.stderr, a.inv.Verbose)
	if a.dotenvErr != nil {
		a.log.Warn().Err(a.dotenvErr).Msg("dotenv file ignored")
	}

	ctx := a.log.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	cfg, err := config.Load(ctx, a.inv.ConfigPath)
	if err != nil {
		return app.ConfigError(err)
	}
	a.cfg = cfg
	a.log.Info().Str("mode", cfg.Mode).Msg("config loaded")

	a.services = service.NewServices(store.NewStorages(), a.stdout, a.log)

	if a.inv.Verbose > 0 {
		fmt.Fprintf(a.stdout, "Verbose mode: level %d\n", a.inv.Verbose)
		a.cfg.Display(a.stdout)
	}

	return nil
}

func (a *application) runProcess(cmd *cobra.Command, _ []string) error {
	a.dispatch(CommandProcess)
	ctx := cmd.Context()

	fmt.Fprintf(a.stdout, "Processing input file: %s\n", a.inv.Input)

	content, err := a.services.FileProcessor.ReadInput(ctx, a.inv.Input)
	if err != nil {
		return err
	}

	if a.inv.Verbose > 0 {
		fmt.Fprintf(a.stdout, "File size: %d bytes\n", len(content))
		fmt.Fprintf(a.stdout, "Line count: %d\n", countLines(content))
	}

	result, err := a.services.FileProcessor.ProcessContent(ctx, content, a.cfg.Mode)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "\n%s\n", result)
	fmt.Fprintln(a.stdout, "\nProcessing complete!")
	return nil
}

func (a *application) runTests(cmd *cobra.Command, _ []string) error {
	a.dispatch(CommandTest)

	fmt.Fprintln(a.stdout, "Running test mode")
	return a.services.TestRunner.RunTests(cmd.Context(), a.inv.Debug)
}

func (a *application) runConfig(_ *cobra.Command, _ []string) error {
	a.dispatch(CommandConfig)

	fmt.Fprintln(a.stdout, "Configuration:")
	a.cfg.Display(a.stdout)

	if home, ok := config.GetSystemEnv("HOME"); ok {
		fmt.Fprintf(a.stdout, "\nSystem HOME directory: %s\n", home)
	}
	return nil
}

func (a *application) dispatch(c Command) {
	a.inv.Command = c
	a.log.Info().Stringer("command", c).Str("input", a.inv.Input).Msg("dispatching")
}

// countLines counts newline-terminated lines plus a trailing unterminated
// one.
func countLines(content string) int {
	n := strings.Count(content, "\n")
	if content != "" && !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}
