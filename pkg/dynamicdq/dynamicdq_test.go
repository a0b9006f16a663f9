package dynamicdq

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jwst-datamodels/nirspec-flat/api/v1alpha1"
	"github.com/jwst-datamodels/nirspec-flat/pkg/dqflags"
)

func makeQuadrant(dq [][]uint32, defs ...v1alpha1.DQDefinition) *v1alpha1.FlatQuadrant {
	q := &v1alpha1.FlatQuadrant{}
	if dq != nil {
		arr, err := v1alpha1.Uint32Array2D(dq)
		Expect(err).NotTo(HaveOccurred())
		q.DQ = &arr
	}
	q.DQDef = defs
	return q
}

var _ = Describe("Mapper", func() {
	var mapper *Mapper

	BeforeEach(func() {
		mapper = NewMapper()
	})

	Context("without flag definitions", func() {
		It("should return an independent copy of the mask", func() {
			src := makeQuadrant([][]uint32{{0, 4}, {8, 1}})

			out, err := mapper.Mask(src)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Shape).To(Equal([]int{2, 2}))
			Expect(out.Values).To(Equal([]uint32{0, 4, 8, 1}))

			out.Values[0] = 99
			Expect(src.DQ.Values[0]).To(Equal(uint32(0)))
		})

		It("should return the empty default when dq is unset", func() {
			src := &v1alpha1.FlatQuadrant{}
			out, err := mapper.Mask(src)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Shape).To(Equal([]int{0, 0}))
			Expect(out.Values).To(BeEmpty())
			Expect(src.DQ).To(BeNil())
		})
	})

	Context("with flag definitions", func() {
		It("should move raw bits to their canonical positions", func() {
			src := makeQuadrant([][]uint32{{0, 1}, {8, 9}},
				v1alpha1.DQDefinition{Bit: 0, Value: 1, Name: "DO_NOT_USE"},
				v1alpha1.DQDefinition{Bit: 3, Name: "HOT"},
			)

			out, err := mapper.Mask(src)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Shape).To(Equal([]int{2, 2}))
			Expect(out.Values).To(Equal([]uint32{0, dqflags.DoNotUse, dqflags.Hot, dqflags.Hot | dqflags.DoNotUse}))
		})

		It("should not modify the source mask", func() {
			src := makeQuadrant([][]uint32{{8}}, v1alpha1.DQDefinition{Bit: 3, Name: "HOT"})
			_, err := mapper.Mask(src)
			Expect(err).NotTo(HaveOccurred())
			Expect(src.DQ.Values).To(Equal([]uint32{8}))
		})

		It("should drop bits not covered by a definition", func() {
			src := makeQuadrant([][]uint32{{1 | 16}}, v1alpha1.DQDefinition{Bit: 0, Name: "DO_NOT_USE"})
			out, err := mapper.Mask(src)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Values).To(Equal([]uint32{dqflags.DoNotUse}))
		})

		It("should ignore names that are not mnemonics", func() {
			src := makeQuadrant([][]uint32{{2, 3}},
				v1alpha1.DQDefinition{Bit: 0, Name: "DO_NOT_USE"},
				v1alpha1.DQDefinition{Bit: 1, Name: "SPARKLY"},
			)
			out, err := mapper.Mask(src)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Values).To(Equal([]uint32{0, dqflags.DoNotUse}))
		})

		It("should trim surrounding whitespace from names", func() {
			src := makeQuadrant([][]uint32{{4}}, v1alpha1.DQDefinition{Bit: 2, Name: "  WARM "})
			out, err := mapper.Mask(src)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Values).To(Equal([]uint32{dqflags.Warm}))
		})

		It("should map GOOD to no flag", func() {
			src := makeQuadrant([][]uint32{{1}}, v1alpha1.DQDefinition{Bit: 0, Name: "GOOD"})
			out, err := mapper.Mask(src)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Values).To(Equal([]uint32{0}))
		})

		It("should reject a definition whose value disagrees with its bit", func() {
			src := makeQuadrant([][]uint32{{1}}, v1alpha1.DQDefinition{Bit: 1, Value: 1, Name: "SATURATED"})
			_, err := mapper.Mask(src)
			Expect(err).To(MatchError(v1alpha1.ErrInvalidDQDefinition))
		})

		It("should produce a typed empty mask when dq is unset", func() {
			src := makeQuadrant(nil, v1alpha1.DQDefinition{Bit: 0, Name: "DO_NOT_USE"})
			data, err := v1alpha1.NewFloat32Array([]int{1, 2, 2}, nil)
			Expect(err).NotTo(HaveOccurred())
			src.Data = &data

			out, err := mapper.Mask(src)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Shape).To(Equal([]int{0, 0, 0}))
			Expect(out.Values).To(BeEmpty())
		})
	})

	Context("with aliases", func() {
		It("should resolve file specific names", func() {
			m, err := dqflags.Pixel().WithAliases(map[string]string{"BAD": "DO_NOT_USE"})
			Expect(err).NotTo(HaveOccurred())
			mapper = NewMapper(WithMnemonics(m))

			src := makeQuadrant([][]uint32{{32, 0}}, v1alpha1.DQDefinition{Bit: 5, Name: "BAD"})
			out, err := mapper.Mask(src)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Values).To(Equal([]uint32{dqflags.DoNotUse, 0}))
			Expect(mapper.Mnemonics()).To(HaveKey("BAD"))
		})
	})

	Context("inverse", func() {
		It("should translate canonical bits back to the declared bits", func() {
			mapper = NewMapper(WithInverse())
			src := makeQuadrant([][]uint32{{dqflags.Hot, dqflags.Hot | dqflags.DoNotUse}},
				v1alpha1.DQDefinition{Bit: 0, Name: "DO_NOT_USE"},
				v1alpha1.DQDefinition{Bit: 3, Name: "HOT"},
			)
			out, err := mapper.Mask(src)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Values).To(Equal([]uint32{8, 9}))
		})

		It("should round trip a forward mapping", func() {
			defs := []v1alpha1.DQDefinition{
				{Bit: 0, Name: "DO_NOT_USE"},
				{Bit: 1, Name: "NO_FLAT_FIELD"},
				{Bit: 2, Name: "OPEN"},
			}
			src := makeQuadrant([][]uint32{{0, 1, 2, 7}}, defs...)

			forward, err := NewMapper().Mask(src)
			Expect(err).NotTo(HaveOccurred())

			back, err := NewMapper(WithInverse()).Mask(makeQuadrant([][]uint32{forward.Values}, defs...))
			Expect(err).NotTo(HaveOccurred())
			Expect(back.Values).To(Equal(src.DQ.Values))
		})
	})

	Context("definitions", func() {
		It("should describe the canonical bits of a forward mask", func() {
			defs := []v1alpha1.DQDefinition{
				{Bit: 3, Name: "HOT", Description: "Hot pixel"},
				{Bit: 0, Name: "DO_NOT_USE"},
				{Bit: 5, Name: "SPARKLY"},
				{Bit: 6, Name: "GOOD"},
			}
			out, err := mapper.Definitions(defs)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal([]v1alpha1.DQDefinition{
				{Bit: 0, Value: dqflags.DoNotUse, Name: "DO_NOT_USE"},
				{Bit: 11, Value: dqflags.Hot, Name: "HOT", Description: "Hot pixel"},
			}))
			Expect(defs[0].Bit).To(Equal(uint32(3)))
		})

		It("should make a derived mask stable under another derivation", func() {
			src := makeQuadrant([][]uint32{{0, 1}, {8, 9}},
				v1alpha1.DQDefinition{Bit: 0, Name: "DO_NOT_USE"},
				v1alpha1.DQDefinition{Bit: 3, Name: "HOT"},
			)
			dq, err := mapper.Mask(src)
			Expect(err).NotTo(HaveOccurred())
			defs, err := mapper.Definitions(src.DQDef)
			Expect(err).NotTo(HaveOccurred())

			again, err := mapper.Mask(makeQuadrant([][]uint32{dq.Values[:2], dq.Values[2:]}, defs...))
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(Equal(dq))
		})

		It("should use canonical names for aliases", func() {
			m, err := dqflags.Pixel().WithAliases(map[string]string{"BAD": "DO_NOT_USE"})
			Expect(err).NotTo(HaveOccurred())
			out, err := NewMapper(WithMnemonics(m)).Definitions([]v1alpha1.DQDefinition{{Bit: 4, Name: "BAD"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal([]v1alpha1.DQDefinition{{Bit: 0, Value: dqflags.DoNotUse, Name: "DO_NOT_USE"}}))
		})

		It("should keep the declared table for an inverse mask", func() {
			defs := []v1alpha1.DQDefinition{{Bit: 3, Name: "HOT"}}
			out, err := NewMapper(WithInverse()).Definitions(defs)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(defs))
		})

		It("should reject an invalid definition", func() {
			_, err := mapper.Definitions([]v1alpha1.DQDefinition{{Bit: 40, Name: "HOT"}})
			Expect(err).To(MatchError(v1alpha1.ErrInvalidDQDefinition))
		})
	})

	It("should be reachable through the package level helper", func() {
		src := makeQuadrant([][]uint32{{8}}, v1alpha1.DQDefinition{Bit: 3, Name: "HOT"})
		out, err := Mask(src)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Values).To(Equal([]uint32{dqflags.Hot}))
	})
})
