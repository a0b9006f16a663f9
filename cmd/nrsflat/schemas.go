package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	refschema "github.com/jwst-datamodels/nirspec-flat/pkg/schema"
)

func newSchemasCommand(_ *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "List the registered schema identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var rows [][]string
			for _, id := range refschema.Default.IDs() {
				d, err := refschema.Default.Lookup(id)
				if err != nil {
					return err
				}
				fields, err := refschema.Default.Fields(id)
				if err != nil {
					return err
				}
				names := make([]string, 0, len(fields))
				for _, f := range fields {
					names = append(names, f.Name)
				}
				rows = append(rows, []string{id, d.Extends, strings.Join(names, ", ")})
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Schema", "Extends", "Fields"}, rows, nil))
			return err
		},
	}
}
