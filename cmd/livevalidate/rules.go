package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/livevalidator/pkg/formdef"
	"github.com/dmitrymomot/livevalidator/pkg/messages"
	"github.com/dmitrymomot/livevalidator/pkg/rules"
)

func newRulesCmd(a *app) *cobra.Command {
	var formPath string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rules available to declarations",
		Long: `List every registered rule with its message template. With --form the
rules and messages of that definition are merged in.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry := rules.MustRegistry(nil)
			catalog := messages.NewCatalog(nil)
			if formPath != "" {
				def, err := formdef.Load(formPath)
				if err != nil {
					return err
				}
				form, err := formdef.Compile(def)
				if err != nil {
					return err
				}
				registry, catalog = form.Registry, form.Catalog
			}

			out := cmd.OutOrStdout()
			for _, name := range registry.Names() {
				msg, ok := catalog.Lookup(name)
				if !ok {
					msg = catalog.Base()
				}
				if _, err := fmt.Fprintf(out, "%-14s %s\n", name, msg); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&formPath, "form", "", "form definition whose custom rules to include")
	return cmd
}
