package main

import (
	"fmt"

	"github.com/spf13/cobra"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

func newValidateCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate reference files against their schemas",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error
			for _, path := range args {
				m, err := cc.store.Open(path)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s)\n", path, m.SchemaID())
			}
			return utilerrors.NewAggregate(errs)
		},
	}
}
