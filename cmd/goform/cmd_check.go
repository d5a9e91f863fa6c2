package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/goform"
	"github.com/reoring/goform/memdom"
)

func newCheckCmd(g *globalFlags) *cobra.Command {
	var manifestPath, valuesPath string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Submit a form's values and report validation issues",
		Long: `Check builds the form described by the manifest, optionally replaces its
initial values with a values file, and submits it. Every field counts as
touched. The command exits with status 1 when the form is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := loadManifest(manifestPath)
			if err != nil {
				return err
			}
			opts, err := m.Options(g.logger())
			if err != nil {
				return err
			}
			if valuesPath != "" {
				values, err := readValues(valuesPath)
				if err != nil {
					return err
				}
				opts.InitialValues = values
			}
			f, err := goform.New(opts, memdom.New(m.Action))
			if err != nil {
				return err
			}
			f.HandleSubmit()

			out := cmd.OutOrStdout()
			iss := f.Issues()
			for _, it := range iss {
				fmt.Fprintf(out, "%s: %s\n", it.Path, it.Message)
			}
			if len(iss) > 0 {
				return errInvalid
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "form manifest (YAML or JSON)")
	cmd.Flags().StringVar(&valuesPath, "values", "", "values file replacing the manifest's initial values")
	_ = cmd.MarkFlagRequired("manifest")
	return cmd
}
