package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jwst-datamodels/nirspec-flat/api/v1alpha1"
	"github.com/jwst-datamodels/nirspec-flat/pkg/nirspec"
)

func newPromoteCommand(cc *commandContext) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "promote FLAT",
		Short: "Convert a single-quadrant flat into a quad flat with one quadrant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// The decoded model still holds the file's raw DQ bits; promotion
			// derives the canonical mask exactly once.
			m, err := cc.store.Open(args[0])
			if err != nil {
				return err
			}
			flat, ok := m.(*v1alpha1.NirspecFlat)
			if !ok {
				return fmt.Errorf("%w: %s holds %s, want NirspecFlat", nirspec.ErrWrongKind, args[0], m.SchemaID())
			}

			mapper := cc.mapper()
			quad, err := nirspec.NewNirspecQuadFlat(ctx, nirspec.Promote{Flat: flat},
				nirspec.WithMapper(mapper))
			if err != nil {
				return err
			}
			// The quadrant mask now holds canonical bits; describe them.
			q := &quad.Quadrants[0]
			if q.DQDef, err = mapper.Definitions(q.DQDef); err != nil {
				return err
			}
			if quad.DQDef, err = mapper.Definitions(quad.DQDef); err != nil {
				return err
			}
			cc.stampMeta(&quad.Meta)

			if output == "" {
				output = quadPath(args[0])
			}
			if err := cc.store.Save(ctx, output, quad); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "promoted %s -> %s (%d quadrant)\n", args[0], output, len(quad.Quadrants))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default: <input>_quad<ext>)")
	return cmd
}

func quadPath(in string) string {
	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + "_quad" + ext
}
