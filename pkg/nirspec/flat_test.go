package nirspec

import (
	"context"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jwst-datamodels/nirspec-flat/api/v1alpha1"
	"github.com/jwst-datamodels/nirspec-flat/pkg/datamodel"
	"github.com/jwst-datamodels/nirspec-flat/pkg/dqflags"
	"github.com/jwst-datamodels/nirspec-flat/pkg/dynamicdq"
)

func f32(rows ...[]float32) v1alpha1.Float32Array {
	a, err := v1alpha1.Float32Array2D(rows)
	Expect(err).NotTo(HaveOccurred())
	return a
}

func u32(rows ...[]uint32) v1alpha1.Uint32Array {
	a, err := v1alpha1.Uint32Array2D(rows)
	Expect(err).NotTo(HaveOccurred())
	return a
}

var _ = Describe("NewNRSFlat", func() {
	ctx := context.Background()

	It("should stamp identity and defaults on an empty model", func() {
		m, err := NewNRSFlat(ctx, Empty{})
		Expect(err).NotTo(HaveOccurred())
		Expect(m.SchemaID()).To(Equal("nirspec.flat.schema.yaml"))
		Expect(m.Kind).To(Equal("NRSFlat"))
		Expect(m.APIVersion).To(Equal(v1alpha1.GroupVersion.String()))
		Expect(m.UID).NotTo(BeEmpty())
		Expect(m.Meta.ModelType).To(Equal(v1alpha1.NRSFlatModelType))
		Expect(m.Meta.Instrument).To(Equal(Instrument))
	})

	It("should treat a nil initializer as empty", func() {
		m, err := NewNRSFlat(ctx, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Meta.ModelType).To(Equal(v1alpha1.NRSFlatModelType))
	})

	It("should apply metadata options", func() {
		m, err := NewNRSFlat(ctx, Empty{}, WithMeta(v1alpha1.ReferenceFileMeta{Detector: "NRS1", Author: "calwebb"}))
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Meta.Detector).To(Equal("NRS1"))
		Expect(m.Meta.Author).To(Equal("calwebb"))
		Expect(m.Meta.ModelType).To(Equal(v1alpha1.NRSFlatModelType))
	})

	It("should copy an existing model", func() {
		src := &v1alpha1.NRSFlat{Meta: v1alpha1.ReferenceFileMeta{Detector: "NRS2"}}
		m, err := NewNRSFlat(ctx, FromNRSFlat{Model: src})
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Meta.Detector).To(Equal("NRS2"))
		Expect(src.UID).To(BeEmpty())
		Expect(src.Meta.ModelType).To(BeEmpty())
	})

	It("should reject fields the family schema does not declare", func() {
		_, err := NewNRSFlat(ctx, Empty{}, WithData(f32([]float32{1})))
		Expect(err).To(MatchError(v1alpha1.ErrUnknownField))
	})
})

var _ = Describe("NewNirspecFlat", func() {
	ctx := context.Background()

	Context("with neither dq nor dq_def", func() {
		It("should allocate empty typed dq and err", func() {
			m, err := NewNirspecFlat(ctx, Empty{})
			Expect(err).NotTo(HaveOccurred())
			Expect(m.DQ).NotTo(BeNil())
			Expect(m.Err).NotTo(BeNil())
			Expect(m.DQ.Shape).To(Equal([]int{0, 0}))
			Expect(m.DQ.Values).To(BeEmpty())
			Expect(m.Err.Shape).To(Equal([]int{0, 0}))
			Expect(m.Err.Values).To(BeEmpty())
			Expect(m.Meta.ModelType).To(Equal(v1alpha1.NirspecFlatModelType))
			Expect(m.SchemaID()).To(Equal("nirspec_flat.schema.yaml"))
		})

		It("should follow the dimensionality of data", func() {
			data, err := v1alpha1.NewFloat32Array([]int{2, 1, 2}, []float32{1, 1, 1, 1})
			Expect(err).NotTo(HaveOccurred())

			m, err := NewNirspecFlat(ctx, Empty{}, WithData(data))
			Expect(err).NotTo(HaveOccurred())
			Expect(m.DQ.Shape).To(Equal([]int{0, 0, 0}))
			Expect(m.Err.Shape).To(Equal([]int{0, 0, 0}))
			Expect(m.Data.Values).To(HaveLen(4))
		})
	})

	Context("with dq or dq_def", func() {
		It("should derive the canonical mask from dq_def", func() {
			defs := []v1alpha1.DQDefinition{
				{Bit: 0, Name: "DO_NOT_USE"},
				{Bit: 3, Name: "HOT"},
			}
			raw := u32([]uint32{0, 8}, []uint32{1, 9})

			m, err := NewNirspecFlat(ctx, Empty{},
				WithData(f32([]float32{1, 1}, []float32{1, 1})),
				WithDQ(raw),
				WithDQDef(defs))
			Expect(err).NotTo(HaveOccurred())

			src := &v1alpha1.FlatQuadrant{FlatFields: v1alpha1.FlatFields{DQ: &raw, DQDef: defs}}
			want, err := dynamicdq.Mask(src)
			Expect(err).NotTo(HaveOccurred())
			Expect(*m.DQ).To(Equal(want))
			Expect(m.DQ.Values).To(Equal([]uint32{0, dqflags.Hot, dqflags.DoNotUse, dqflags.Hot | dqflags.DoNotUse}))
		})

		It("should keep a mask that has no flag definitions", func() {
			m, err := NewNirspecFlat(ctx, Empty{},
				WithData(f32([]float32{1, 1})),
				WithDQ(u32([]uint32{4, 0})))
			Expect(err).NotTo(HaveOccurred())
			Expect(m.DQ.Values).To(Equal([]uint32{4, 0}))
			Expect(m.Err.Values).To(BeEmpty())
		})

		It("should derive an empty mask when only dq_def is present", func() {
			m, err := NewNirspecFlat(ctx, Empty{},
				WithDQDef([]v1alpha1.DQDefinition{{Bit: 0, Name: "DO_NOT_USE"}}))
			Expect(err).NotTo(HaveOccurred())
			Expect(m.DQ.Shape).To(Equal([]int{0, 0}))
			Expect(m.DQ.Values).To(BeEmpty())
		})

		It("should use the configured mapper", func() {
			mn, err := dqflags.Pixel().WithAliases(map[string]string{"BAD": "DO_NOT_USE"})
			Expect(err).NotTo(HaveOccurred())

			m, err := NewNirspecFlat(ctx, Empty{},
				WithData(f32([]float32{1})),
				WithDQ(u32([]uint32{4})),
				WithDQDef([]v1alpha1.DQDefinition{{Bit: 2, Name: "BAD"}}),
				WithMapper(dynamicdq.NewMapper(dynamicdq.WithMnemonics(mn))))
			Expect(err).NotTo(HaveOccurred())
			Expect(m.DQ.Values).To(Equal([]uint32{dqflags.DoNotUse}))
		})

		It("should surface an inconsistent flag definition", func() {
			_, err := NewNirspecFlat(ctx, Empty{},
				WithDQ(u32([]uint32{1})),
				WithDQDef([]v1alpha1.DQDefinition{{Bit: 1, Value: 1, Name: "SATURATED"}}))
			Expect(err).To(MatchError(v1alpha1.ErrInvalidDQDefinition))
		})
	})

	Context("from an existing model", func() {
		It("should leave the source untouched", func() {
			src := &v1alpha1.NirspecFlat{FlatFields: v1alpha1.FlatFields{
				DQ:    &v1alpha1.Uint32Array{Shape: []int{1, 1}, Values: []uint32{8}},
				DQDef: []v1alpha1.DQDefinition{{Bit: 3, Name: "HOT"}},
			}}

			m, err := NewNirspecFlat(ctx, FromFlat{Model: src})
			Expect(err).NotTo(HaveOccurred())
			Expect(m.DQ.Values).To(Equal([]uint32{dqflags.Hot}))
			Expect(src.DQ.Values).To(Equal([]uint32{8}))
			Expect(src.Err).To(BeNil())
			Expect(src.UID).To(BeEmpty())
		})

		It("should let options override the source fields", func() {
			src := &v1alpha1.NirspecFlat{FlatFields: v1alpha1.FlatFields{Data: &v1alpha1.Float32Array{Shape: []int{1, 1}, Values: []float32{2}}}}

			m, err := NewNirspecFlat(ctx, FromFlat{Model: src}, WithData(f32([]float32{3})))
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Data.Values).To(Equal([]float32{3}))
			Expect(src.Data.Values).To(Equal([]float32{2}))
		})

		It("should reject a nil model", func() {
			_, err := NewNirspecFlat(ctx, FromFlat{})
			Expect(err).To(MatchError(ErrNilModel))
		})
	})

	Context("from a reference file", func() {
		var (
			dir   string
			store *datamodel.FileStore
		)

		BeforeEach(func() {
			dir = GinkgoT().TempDir()
			store = datamodel.NewFileStore(datamodel.FormatYAML, 0)
		})

		It("should load and normalize the document", func() {
			path := filepath.Join(dir, "fflat.yaml")
			src := &v1alpha1.NirspecFlat{
				NRSFlat: v1alpha1.NRSFlat{Meta: v1alpha1.ReferenceFileMeta{Detector: "NRS1"}},
				FlatFields: v1alpha1.FlatFields{
					Data:  &v1alpha1.Float32Array{Shape: []int{1, 2}, Values: []float32{1, 0.5}},
					DQ:    &v1alpha1.Uint32Array{Shape: []int{1, 2}, Values: []uint32{0, 8}},
					DQDef: []v1alpha1.DQDefinition{{Bit: 3, Name: "HOT"}},
				},
			}
			Expect(store.Save(ctx, path, src)).To(Succeed())

			m, err := NewNirspecFlat(ctx, FileRef{Path: path}, WithStore(store))
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Meta.Detector).To(Equal("NRS1"))
			Expect(m.DQ.Values).To(Equal([]uint32{0, dqflags.Hot}))
			Expect(m.Err).NotTo(BeNil())
		})

		It("should reject a document of another kind", func() {
			path := filepath.Join(dir, "quad.yaml")
			Expect(store.Save(ctx, path, &v1alpha1.NirspecQuadFlat{})).To(Succeed())

			_, err := NewNirspecFlat(ctx, FileRef{Path: path}, WithStore(store))
			Expect(err).To(MatchError(ErrWrongKind))
		})

		It("should surface a missing file", func() {
			_, err := NewNirspecFlat(ctx, FileRef{Path: filepath.Join(dir, "missing.yaml")})
			Expect(err).To(HaveOccurred())
		})
	})

	Context("validation", func() {
		It("should reject data with the wrong dimensionality", func() {
			data, err := v1alpha1.NewFloat32Array([]int{3}, nil)
			Expect(err).NotTo(HaveOccurred())

			_, err = NewNirspecFlat(ctx, Empty{}, WithData(data))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("nirspec_flat.schema.yaml"))
		})

		It("should reject a dq shape that disagrees with data", func() {
			_, err := NewNirspecFlat(ctx, Empty{},
				WithData(f32([]float32{1, 1})),
				WithDQ(u32([]uint32{0}, []uint32{0})))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("dq"))
		})

		It("should reject a value of the wrong type", func() {
			_, err := NewNirspecFlat(ctx, Empty{}, WithField("dq", f32([]float32{1})))
			var fe *v1alpha1.FieldError
			Expect(err).To(BeAssignableToTypeOf(fe))
			Expect(err).To(MatchError(v1alpha1.ErrFieldType))
		})
	})
})
