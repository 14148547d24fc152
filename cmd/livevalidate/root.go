package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/livevalidator/pkg/config"
	"github.com/dmitrymomot/livevalidator/pkg/formdef"
	"github.com/dmitrymomot/livevalidator/pkg/formhttp"
	"github.com/dmitrymomot/livevalidator/pkg/logger"
)

const (
	serviceName = "livevalidate"
	envPrefix   = "LIVEVALIDATE_"
)

// errInvalid makes the process exit non-zero after a failed check. The
// report has already been printed.
var errInvalid = errors.New("submission is invalid")

// AppConfig is read from LIVEVALIDATE_* variables. Flags win when set.
type AppConfig struct {
	Env       string `env:"ENV" envDefault:"development"`
	LogFormat string `env:"LOG_FORMAT"`
	Forms     string `env:"FORMS" envDefault:"./forms"`
	Strict    bool   `env:"STRICT"`
	Server    formhttp.ServerConfig
}

type app struct {
	cfg AppConfig
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logger.Discard()}

	cmd := &cobra.Command{
		Use:   serviceName,
		Short: "Validate form submissions against declarative rules",
		Long: `livevalidate evaluates form submissions against YAML form definitions.

Each field declares rules such as "required|email|maxlength(:64)" or an
expression; failures produce the same messages a browser would show.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("env", "", "environment: development, staging or production")
	flags.String("log-format", "", "log format: text or json")
	flags.Bool("strict", false, "reject declarations naming unknown rules")

	cmd.AddCommand(newCheckCmd(a), newServeCmd(a), newRulesCmd(a))
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.Load(&a.cfg, config.WithPrefix(envPrefix)); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("env") {
		a.cfg.Env, _ = flags.GetString("env")
	}
	if flags.Changed("log-format") {
		a.cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("strict") {
		a.cfg.Strict, _ = flags.GetBool("strict")
	}

	opts := []logger.Option{
		logger.WithEnvironment(a.cfg.Env, serviceName),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(formhttp.RequestIDExtractor),
	}
	if a.cfg.LogFormat != "" {
		format, err := logger.ParseFormat(a.cfg.LogFormat)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	a.log = logger.New(opts...)
	return nil
}

// compile loads and compiles definitions, applying the strict override.
func (a *app) compile(defs map[string]*formdef.Definition) (map[string]*formdef.Form, error) {
	if a.cfg.Strict {
		for _, def := range defs {
			def.Strict = true
		}
	}
	return formdef.CompileAll(defs)
}
