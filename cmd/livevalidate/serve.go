package main

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/livevalidator/pkg/formdef"
	"github.com/dmitrymomot/livevalidator/pkg/formhttp"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve validation for every form in the forms directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("addr") {
				a.cfg.Server.Addr, _ = flags.GetString("addr")
			}
			if flags.Changed("forms") {
				a.cfg.Forms, _ = flags.GetString("forms")
			}

			h, err := a.handler(a.cfg.Forms)
			if err != nil {
				return err
			}
			r := h.Router()
			r.Get("/healthz", formhttp.Healthz)
			return formhttp.Serve(cmd.Context(), a.cfg.Server, r, a.log)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default from LIVEVALIDATE_ADDR)")
	cmd.Flags().String("forms", "", "directory of form definitions (default from LIVEVALIDATE_FORMS)")
	return cmd
}

// handler compiles every definition under dir behind a metrics registry
// that also carries the Go runtime and process collectors.
func (a *app) handler(dir string) (*formhttp.Handler, error) {
	defs, err := formdef.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	forms, err := a.compile(defs)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	a.log.Info("forms loaded", slog.String("dir", dir), slog.Int("count", len(forms)))
	return formhttp.NewHandler(forms,
		formhttp.WithLogger(a.log),
		formhttp.WithMetrics(formhttp.NewMetrics(reg), reg),
	)
}
