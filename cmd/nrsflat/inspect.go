package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/api/meta"
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/jwst-datamodels/nirspec-flat/api/v1alpha1"
	"github.com/jwst-datamodels/nirspec-flat/pkg/dqflags"
	refschema "github.com/jwst-datamodels/nirspec-flat/pkg/schema"
)

func newInspectCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Summarize the fields of a reference file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := cc.store.Open(args[0])
			if err != nil {
				return err
			}

			var rows [][]string
			switch model := m.(type) {
			case *v1alpha1.NirspecFlat:
				rows = flatRows("", &model.FlatFields, cc.mnemonics)
			case *v1alpha1.NirspecQuadFlat:
				for i := range model.Quadrants {
					prefix := fmt.Sprintf("quadrants[%d].", i)
					rows = append(rows, flatRows(prefix, &model.Quadrants[i].FlatFields, cc.mnemonics)...)
				}
				rows = append(rows, tableRow("dq_def", len(model.DQDef), model.DQDef != nil))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  schema=%s  uid=%s\n", m.GetObjectKind().GroupVersionKind().Kind, m.SchemaID(), uidOf(m))
			if md, ok := m.Field(refschema.FieldMeta); ok {
				fmt.Fprintf(out, "meta: %+v\n", md)
			}
			if len(rows) > 0 {
				fmt.Fprintln(out, renderTable([]string{"Field", "Type", "Shape", "Summary"}, rows, []columnAlignment{alignLeft, alignLeft, alignRight, alignLeft}))
			}
			return nil
		},
	}
}

func flatRows(prefix string, f *v1alpha1.FlatFields, mnemonics dqflags.Mnemonics) [][]string {
	var rows [][]string
	rows = append(rows, arrayRow(prefix+"data", "float32", f.Data != nil, shapeOf(f.Data), ""))
	var dqShape []int
	if f.DQ != nil {
		dqShape = f.DQ.Shape
	}
	rows = append(rows, arrayRow(prefix+"dq", "uint32", f.DQ != nil, dqShape, flagSummary(f.DQ, mnemonics)))
	rows = append(rows, arrayRow(prefix+"err", "float32", f.Err != nil, shapeOf(f.Err), ""))
	rows = append(rows, tableRow(prefix+"wavelength", len(f.Wavelength), f.Wavelength != nil))
	rows = append(rows, tableRow(prefix+"flat_table", len(f.FlatTable), f.FlatTable != nil))
	rows = append(rows, tableRow(prefix+"dq_def", len(f.DQDef), f.DQDef != nil))
	return rows
}

func arrayRow(name, dtype string, set bool, shape []int, summary string) []string {
	if !set {
		return []string{name, dtype, "-", "absent"}
	}
	return []string{name, dtype, formatShape(shape), summary}
}

func tableRow(name string, n int, set bool) []string {
	if !set {
		return []string{name, "table", "-", "absent"}
	}
	return []string{name, "table", strconv.Itoa(n) + " rows", ""}
}

func shapeOf(a *v1alpha1.Float32Array) []int {
	if a == nil {
		return nil
	}
	return a.Shape
}

func formatShape(shape []int) string {
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "x")
}

// flagSummary counts flagged pixels per mnemonic.
func flagSummary(dq *v1alpha1.Uint32Array, mnemonics dqflags.Mnemonics) string {
	if dq == nil {
		return ""
	}
	counts := make(map[string]int)
	for _, v := range dq.Values {
		if v == 0 {
			continue
		}
		for _, name := range mnemonics.Names(v) {
			counts[name]++
		}
	}
	if len(counts) == 0 {
		return "no flags set"
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%d", name, counts[name])
	}
	return strings.Join(parts, " ")
}

func uidOf(obj runtime.Object) string {
	accessor, err := meta.Accessor(obj)
	if err != nil {
		return ""
	}
	return string(accessor.GetUID())
}
