package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/livevalidator/pkg/formdef"
	"github.com/dmitrymomot/livevalidator/pkg/formhttp"
	"github.com/dmitrymomot/livevalidator/pkg/logger"
	"github.com/dmitrymomot/livevalidator/pkg/validator"
)

type checkReport struct {
	Form   string                `json:"form"`
	Valid  bool                  `json:"valid"`
	Errors []formhttp.FieldError `json:"errors"`
}

func newCheckCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "check <form.yaml> <values.yaml>",
		Short: "Validate one submission against a form definition",
		Long: `Load a form definition and a submission, evaluate every field and print
the active errors. The values file is a YAML or JSON mapping of field name
to a value or list of values; checkboxes are checked when their value is
listed. Exits non-zero when the submission is invalid.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd.OutOrStdout(), args[0], args[1], format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or json")
	return cmd
}

func (a *app) runCheck(out io.Writer, formPath, valuesPath, format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown output format %q", format)
	}

	def, err := formdef.Load(formPath)
	if err != nil {
		return err
	}
	forms, err := a.compile(map[string]*formdef.Definition{def.Name: def})
	if err != nil {
		return err
	}
	form := forms[def.Name]

	values, err := loadValues(valuesPath)
	if err != nil {
		return err
	}

	sub := formhttp.NewSubmission(form.Definition, values)
	opts := append(form.Options(),
		validator.WithLogger(a.log),
		validator.WithHooks(validator.Hooks[*formhttp.Element]{
			OnFailedValidation: func(validator.Environment[*formhttp.Element]) {
				a.log.Info("submission rejected", logger.Form(def.Name))
			},
			OnSubmit: func(validator.Environment[*formhttp.Element]) {
				a.log.Info("submission accepted", logger.Form(def.Name))
			},
		}),
	)
	v, err := validator.New[*formhttp.Element](sub, opts...)
	if err != nil {
		return err
	}

	report := checkReport{Form: def.Name, Valid: v.Submit(), Errors: []formhttp.FieldError{}}
	for _, id := range v.Store().IDs() {
		e, _ := v.Store().Get(id)
		report.Errors = append(report.Errors, formhttp.FieldError{ID: id, Field: e.Field, Rule: e.Rule, Message: e.Message})
	}

	if err := writeReport(out, report, format); err != nil {
		return err
	}
	if !report.Valid {
		return errInvalid
	}
	return nil
}

func writeReport(out io.Writer, r checkReport, format string) error {
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	if r.Valid {
		_, err := fmt.Fprintf(out, "%s: valid\n", r.Form)
		return err
	}
	if _, err := fmt.Fprintf(out, "%s: %d invalid field(s)\n", r.Form, len(r.Errors)); err != nil {
		return err
	}
	for _, e := range r.Errors {
		rule := e.Rule
		if rule == "" {
			rule = "custom"
		}
		if _, err := fmt.Fprintf(out, "  %s [%s]: %s\n", e.Field, rule, e.Message); err != nil {
			return err
		}
	}
	return nil
}

// loadValues reads a mapping of field name to a scalar or a list of
// scalars. JSON input is accepted as YAML.
func loadValues(path string) (url.Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse values %s: %w", path, err)
	}

	values := make(url.Values, len(raw))
	for name, v := range raw {
		switch tv := v.(type) {
		case nil:
			values[name] = []string{""}
		case []any:
			for _, item := range tv {
				values.Add(name, fmt.Sprint(item))
			}
		default:
			values.Set(name, fmt.Sprint(tv))
		}
	}
	return values, nil
}
