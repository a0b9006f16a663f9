package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwst-datamodels/nirspec-flat/api/v1alpha1"
	"github.com/jwst-datamodels/nirspec-flat/pkg/dynamicdq"
)

func newRemaskCommand(cc *commandContext) *cobra.Command {
	var (
		output  string
		inverse bool
	)
	cmd := &cobra.Command{
		Use:   "remask FILE",
		Short: "Rewrite the DQ masks of a reference file against its dq_def tables",
		Long: "Rewrite the DQ masks of a reference file. By default raw bits declared in dq_def\n" +
			"are translated to canonical pixel flags and dq_def is rewritten to describe them;\n" +
			"--inverse translates canonical flags back to the bits declared in dq_def.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []dynamicdq.Option
			if inverse {
				opts = append(opts, dynamicdq.WithInverse())
			}
			mapper := cc.mapper(opts...)

			m, err := cc.store.Open(args[0])
			if err != nil {
				return err
			}

			masked := 0
			switch model := m.(type) {
			case *v1alpha1.NirspecFlat:
				if err := remask(mapper, &model.FlatFields); err != nil {
					return err
				}
				masked++
			case *v1alpha1.NirspecQuadFlat:
				for i := range model.Quadrants {
					if err := remask(mapper, &model.Quadrants[i].FlatFields); err != nil {
						return fmt.Errorf("quadrant %d: %w", i, err)
					}
					masked++
				}
				if model.DQDef, err = mapper.Definitions(model.DQDef); err != nil {
					return err
				}
			default:
				return fmt.Errorf("%s: %s has no DQ mask", args[0], m.SchemaID())
			}

			if output == "" {
				output = args[0]
			}
			if err := cc.store.Save(cmd.Context(), output, m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "remasked %d plane(s) -> %s\n", masked, output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default: overwrite FILE)")
	cmd.Flags().BoolVar(&inverse, "inverse", false, "Translate canonical flags back to dq_def bits")
	return cmd
}

// remask replaces the mask of f with its derived mask and dq_def with the
// table describing it, so a later load derives the same mask again.
func remask(mapper *dynamicdq.Mapper, f *v1alpha1.FlatFields) error {
	dq, err := mapper.Mask(f)
	if err != nil {
		return err
	}
	defs, err := mapper.Definitions(f.DQDef)
	if err != nil {
		return err
	}
	f.DQ = &dq
	f.DQDef = defs
	return nil
}
