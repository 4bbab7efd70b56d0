package input_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-arc/arco/pkg/arco"
	"github.com/go-arc/arco/pkg/arco/input"
	"github.com/go-arc/arco/pkg/arco/relation"
)

func TestInput(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Model Suite")
}

var _ = Describe("Model", func() {
	var m *input.Model[int]

	BeforeEach(func() {
		m = input.NewModel[int]()
	})

	Describe("AddVariable", func() {
		It("should keep variables in declaration order", func() {
			m.AddVariable("x", 1, 2)
			m.AddVariable("y", 3)
			Expect(m.Variables()).To(Equal([]arco.Identifier{"x", "y"}))
			Expect(m.Domains()).To(Equal(map[arco.Identifier][]int{
				"x": {1, 2},
				"y": {3},
			}))
		})

		It("should allow a variable without candidates", func() {
			m.AddVariable("x")
			Expect(m.Variables()).To(Equal([]arco.Identifier{"x"}))
			Expect(m.Domains()["x"]).To(BeEmpty())
		})
	})

	Describe("AddEdge", func() {
		It("should declare a must-differ constraint", func() {
			m.AddEdge("x", "y")
			Expect(m.Edges()).To(Equal([]arco.Edge{{A: "x", B: "y"}}))

			rel := m.Relations()[arco.Edge{A: "x", B: "y"}]
			Expect(rel).NotTo(BeNil())
			Expect(rel(1, 2)).To(BeTrue())
			Expect(rel(1, 1)).To(BeFalse())
		})
	})

	Describe("Constrain", func() {
		It("should record the given relation", func() {
			m.Constrain("x", "y", relation.Equal[int]())

			rel := m.Relations()[arco.Edge{A: "x", B: "y"}]
			Expect(rel(1, 1)).To(BeTrue())
			Expect(rel(1, 2)).To(BeFalse())
		})

		It("should conjoin repeated declarations of the same pair", func() {
			m.Constrain("x", "y", relation.Allowed(
				relation.Pair[int]{A: 1, B: 2},
				relation.Pair[int]{A: 1, B: 1},
			))
			m.AddEdge("x", "y")

			Expect(m.Edges()).To(HaveLen(1))
			rel := m.Relations()[arco.Edge{A: "x", B: "y"}]
			Expect(rel(1, 2)).To(BeTrue())
			Expect(rel(1, 1)).To(BeFalse(), "must-differ filters the allowed pair (1, 1)")
		})

		It("should keep opposite orientations distinct", func() {
			m.Constrain("x", "y", relation.Equal[int]())
			m.Constrain("y", "x", relation.Equal[int]())
			Expect(m.Edges()).To(HaveLen(2))
		})
	})

	Describe("AddAllDifferent", func() {
		It("should cover every pair exactly once", func() {
			m.AddAllDifferent("a", "b", "c")
			Expect(m.Edges()).To(Equal([]arco.Edge{
				{A: "a", B: "b"},
				{A: "a", B: "c"},
				{A: "b", B: "c"},
			}))
		})

		It("should declare nothing for fewer than two variables", func() {
			m.AddAllDifferent("a")
			Expect(m.Edges()).To(BeEmpty())
		})
	})

	Describe("GetModel", func() {
		It("should return the model itself", func() {
			got, err := m.GetModel(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(got).To(BeIdenticalTo(m))
		})
	})
})
