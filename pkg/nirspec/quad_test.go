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

var _ = Describe("NewNirspecQuadFlat", func() {
	ctx := context.Background()

	Context("normal construction", func() {
		It("should not create quadrants for an empty initializer", func() {
			q, err := NewNirspecQuadFlat(ctx, Empty{})
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Quadrants).To(BeEmpty())
			Expect(q.SchemaID()).To(Equal("nirspec_quad_flat.schema.yaml"))
			Expect(q.Meta.ModelType).To(Equal(v1alpha1.NirspecQuadFlatModelType))
		})

		It("should keep quadrants given as options", func() {
			quads := v1alpha1.FlatQuadrants{
				{FlatFields: v1alpha1.FlatFields{DQ: &v1alpha1.Uint32Array{Shape: []int{1, 1}, Values: []uint32{8}}}},
				{},
			}
			q, err := NewNirspecQuadFlat(ctx, Empty{}, WithQuadrants(quads))
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Quadrants).To(HaveLen(2))
			Expect(q.Quadrants[0].DQ.Values).To(Equal([]uint32{8}))
			Expect(q.Quadrants[1].DQ).To(BeNil())
		})

		It("should copy an existing quad model", func() {
			src := &v1alpha1.NirspecQuadFlat{Quadrants: v1alpha1.FlatQuadrants{{}}}
			q, err := NewNirspecQuadFlat(ctx, FromQuad{Model: src})
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Quadrants).To(HaveLen(1))

			q.Quadrants[0].DQDef = []v1alpha1.DQDefinition{{Name: "HOT", Bit: 3}}
			Expect(src.Quadrants[0].DQDef).To(BeNil())
		})

		It("should reject a nil model", func() {
			_, err := NewNirspecQuadFlat(ctx, FromQuad{})
			Expect(err).To(MatchError(ErrNilModel))
		})

		It("should load a quad reference file", func() {
			dir := GinkgoT().TempDir()
			path := filepath.Join(dir, "quad.json")
			store := datamodel.NewFileStore(datamodel.FormatJSON, 0)

			src := &v1alpha1.NirspecQuadFlat{Quadrants: v1alpha1.FlatQuadrants{{}, {}, {}, {}}}
			Expect(store.Save(ctx, path, src)).To(Succeed())

			q, err := NewNirspecQuadFlat(ctx, FileRef{Path: path}, WithStore(store))
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Quadrants).To(HaveLen(4))
		})
	})

	Context("promotion", func() {
		It("should promote the documented scenario", func() {
			m, err := NewNirspecFlat(ctx, Empty{},
				WithData(f32([]float32{1.0})),
				WithDQ(u32([]uint32{0})),
				WithDQDef([]v1alpha1.DQDefinition{{Name: "BAD", Bit: 0}}),
				WithErr(f32([]float32{0.1})))
			Expect(err).NotTo(HaveOccurred())

			q, err := NewNirspecQuadFlat(ctx, Promote{Flat: m})
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Quadrants).To(HaveLen(1))

			quad := q.Quadrants[0]
			Expect(quad.Data.Shape).To(Equal([]int{1, 1}))
			Expect(quad.Data.Values).To(Equal([]float32{1.0}))
			Expect(quad.Err.Values).To(Equal([]float32{0.1}))

			want, err := dynamicdq.Mask(&v1alpha1.FlatQuadrant{FlatFields: *m.FlatFields.DeepCopy()})
			Expect(err).NotTo(HaveOccurred())
			Expect(*quad.DQ).To(Equal(want))
		})

		It("should copy every per-quadrant field by value", func() {
			m := promotable()

			q, err := PromoteNirspecFlat(ctx, m)
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Quadrants).To(HaveLen(1))

			quad := &q.Quadrants[0]
			Expect(quad.Data.Equal(m.Data)).To(BeTrue())
			Expect(quad.Err.Equal(m.Err)).To(BeTrue())
			Expect(quad.Wavelength).To(Equal(m.Wavelength))
			Expect(quad.FlatTable).To(Equal(m.FlatTable))
			Expect(quad.DQDef).To(Equal(m.DQDef))

			quad.Data.Values[0] = -1
			quad.FlatTable[0].Data[0] = -1
			Expect(m.Data.Values[0]).To(Equal(float32(1)))
			Expect(m.FlatTable[0].Data[0]).To(Equal(float32(1)))
		})

		It("should carry shared top-level fields", func() {
			m := promotable()

			q, err := NewNirspecQuadFlat(ctx, Promote{Flat: m})
			Expect(err).NotTo(HaveOccurred())
			Expect(q.DQDef).To(Equal(m.DQDef))
			Expect(q.Meta.Detector).To(Equal("NRS1"))
			Expect(q.Meta.ModelType).To(Equal(v1alpha1.NirspecQuadFlatModelType))
			Expect(q.UID).NotTo(Equal(m.UID))
			Expect(q.Kind).To(Equal("NirspecQuadFlat"))
		})

		It("should rederive the quadrant mask from the copied mask", func() {
			m := promotable()
			Expect(m.DQ.Values).To(Equal([]uint32{0, dqflags.Hot}))

			q, err := PromoteNirspecFlat(ctx, m)
			Expect(err).NotTo(HaveOccurred())

			copied := &v1alpha1.FlatQuadrant{FlatFields: *m.FlatFields.DeepCopy()}
			want, err := dynamicdq.Mask(copied)
			Expect(err).NotTo(HaveOccurred())
			Expect(*q.Quadrants[0].DQ).To(Equal(want))
			// HOT is bit 3 in dq_def; the already canonical 2048 does not carry it.
			Expect(q.Quadrants[0].DQ.Values).To(Equal([]uint32{0, 0}))
		})

		It("should leave the source model unmodified", func() {
			m := promotable()
			before := m.DeepCopy()

			_, err := NewNirspecQuadFlat(ctx, Promote{Flat: m})
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(Equal(before))
		})

		It("should apply options before copying from the source", func() {
			m := promotable()
			q, err := PromoteNirspecFlat(ctx, m, WithMeta(v1alpha1.ReferenceFileMeta{Author: "override", Pedigree: "GROUND"}))
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Meta.Detector).To(Equal("NRS1"))
			Expect(q.Meta.Author).To(Equal("override"))
			Expect(q.Meta.Pedigree).To(Equal("GROUND"))
			Expect(q.Meta.ModelType).To(Equal(v1alpha1.NirspecQuadFlatModelType))
		})

		It("should let source metadata win where both are set", func() {
			m := promotable()
			q, err := PromoteNirspecFlat(ctx, m, WithMeta(v1alpha1.ReferenceFileMeta{Detector: "NRS2", Grating: "G140H"}))
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Meta.Detector).To(Equal("NRS1"))
			Expect(q.Meta.Grating).To(Equal("G140H"))
			Expect(q.Meta.RefType).To(Equal("FFLAT"))
		})

		It("should refuse preset quadrants", func() {
			_, err := PromoteNirspecFlat(ctx, promotable(), WithQuadrants(v1alpha1.FlatQuadrants{{}}))
			Expect(err).To(MatchError(ErrQuadrantsPreset))
		})

		It("should reject a nil flat model", func() {
			_, err := NewNirspecQuadFlat(ctx, Promote{})
			Expect(err).To(MatchError(ErrNilModel))
		})

		It("should promote a model with no fields set", func() {
			q, err := PromoteNirspecFlat(ctx, &v1alpha1.NirspecFlat{})
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Quadrants).To(HaveLen(1))
			Expect(q.Quadrants[0].Data).To(BeNil())
			Expect(q.Quadrants[0].DQ.Values).To(BeEmpty())
		})
	})
})

// promotable returns a constructed single-quadrant model with every
// per-quadrant field set.
func promotable() *v1alpha1.NirspecFlat {
	m, err := NewNirspecFlat(context.Background(), Empty{},
		WithMeta(v1alpha1.ReferenceFileMeta{Detector: "NRS1", RefType: "FFLAT"}),
		WithData(f32([]float32{1, 0.9})),
		WithDQ(u32([]uint32{0, 8})),
		WithErr(f32([]float32{0.01, 0.02})),
		WithWavelength([]v1alpha1.WavelengthRow{{Wavelength: 0.6}, {Wavelength: 5.3}}),
		WithFlatTable([]v1alpha1.FlatTableRow{{
			SlitName:   "S200A1",
			NElem:      2,
			Wavelength: []float32{0.6, 5.3},
			Data:       []float32{1, 1},
			Error:      []float32{0, 0},
		}}),
		WithDQDef([]v1alpha1.DQDefinition{{Bit: 3, Name: "HOT", Description: "Hot pixel"}}))
	Expect(err).NotTo(HaveOccurred())
	return m
}
