// Command pwss checks, inspects and tries out widget stylesheets.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/npillmayer/pwss/internal/config"
)

const appName = "pwss"

// initializeAppContext prepares application context before command execution
// but after command line has been parsed.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	env := envFromContext(ctx)
	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		env.Cfg.Logging.ConsoleLogger.Level = "debug"
		env.Cfg.Logging.Tracing = "debug"
	}
	if env.Log, err = env.Cfg.Logging.Prepare(appName); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("runtime", runtime.Version()))
	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	env.Log.Debug("Program ended", zap.Duration("elapsed", env.uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	_ = env.Log.Sync()
	return nil
}

// Errors are returned from subcommands as regular errors and logged here,
// instead of using cli.Exit.
var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := envFromContext(ctx)
	if env.Cfg != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(contextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	treeFlag := &cli.StringFlag{Name: "tree", Aliases: []string{"t"}, Required: true,
		Usage: "widget tree to style, from `FILE` (YAML)"}
	app := &cli.Command{
		Name:            appName,
		Usage:           "cascading stylesheets for widget trees",
		Version:         "(" + runtime.Version() + ")",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log and trace everything"},
		},
		Commands: []*cli.Command{
			{
				Name:         "check",
				Usage:        "Checks stylesheets for errors",
				ArgsUsage:    "STYLESHEET...",
				OnUsageError: usageErrorHandler,
				Action:       runCheck,
			},
			{
				Name:         "dump",
				Usage:        "Prints the rules of a stylesheet",
				ArgsUsage:    "STYLESHEET",
				OnUsageError: usageErrorHandler,
				Action:       runDump,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "resources", Aliases: []string{"r"}, Usage: "list (and with prefetch enabled, load) referenced resources"},
				},
			},
			{
				Name:         "resolve",
				Usage:        "Prints a widget tree with the resolved style of every widget",
				ArgsUsage:    "STYLESHEET",
				OnUsageError: usageErrorHandler,
				Action:       runResolve,
				Flags: []cli.Flag{
					treeFlag,
					&cli.StringFlag{Name: "dot", Usage: "also write the styled tree to `FILE` in GraphViz format"},
				},
			},
			{
				Name:         "watch",
				Usage:        "Resolves a widget tree again every time the stylesheet changes",
				ArgsUsage:    "STYLESHEET",
				OnUsageError: usageErrorHandler,
				Action:       runWatch,
				Flags:        []cli.Flag{treeFlag},
			},
			{
				Name:         "dumpconfig",
				Usage:        "Dumps either default or actual configuration (YAML)",
				ArgsUsage:    "DESTINATION",
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
			},
		},
	}

	var err error
	// os.Exit is called at the end of main to set the exit code, make sure
	// there are no other deferred functions after that
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		state string
	)
	out := os.Stdout
	if len(fname) > 0 {
		out, err = os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer out.Close()
	}
	if cmd.Bool("default") {
		state = "default"
		data, err = config.Prepare()
	} else {
		state = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}
	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Debug("Outputting configuration", zap.String("state", state), zap.String("file", fname))
	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
