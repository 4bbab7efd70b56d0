package sudoku_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-arc/arco/cmd/sudoku"
	"github.com/go-arc/arco/pkg/arco"
)

func TestSudoku(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Sudoku Suite")
}

var _ = Describe("Grid", func() {
	It("should fail on a short puzzle", func() {
		_, err := sudoku.NewGrid(bytes.NewReader([]byte("123456789\n")))
		Expect(err).To(MatchError("invalid puzzle: has 1 rows, want 9"))
	})

	It("should fail on a short row", func() {
		_, err := sudoku.NewGrid(bytes.NewReader([]byte("1234\n")))
		Expect(err).To(MatchError(`invalid row "1234": has 4 cells, want 9`))
	})

	It("should fail on an invalid cell", func() {
		_, err := sudoku.NewGrid(bytes.NewReader([]byte("12345678x\n")))
		Expect(err).To(MatchError(`invalid cell 'x' in row "12345678x"`))
	})

	It("should fail on too many rows", func() {
		rows := ""
		for i := 0; i < 10; i++ {
			rows += "123456789\n"
		}
		_, err := sudoku.NewGrid(bytes.NewReader([]byte(rows)))
		Expect(err).To(MatchError("invalid puzzle: more than 9 rows"))
	})

	It("should parse blanks, spacing and comments", func() {
		puzzle := "# header comment\n" +
			"5 3 . . 7 . . . .\n" +
			"600195000\n" +
			"\n" +
			".98....6.\n" +
			"8...6...3\n" +
			"4..8.3..1\n" +
			"7...2...6\n" +
			".6....28.\n" +
			"...419..5\n" +
			"....8..79"
		g, err := sudoku.NewGrid(bytes.NewReader([]byte(puzzle)))
		Expect(err).ToNot(HaveOccurred())
		Expect(g[0]).To(Equal([9]int{5, 3, 0, 0, 7, 0, 0, 0, 0}))
		Expect(g[1]).To(Equal([9]int{6, 0, 0, 1, 9, 5, 0, 0, 0}))
		Expect(g[8]).To(Equal([9]int{0, 0, 0, 0, 8, 0, 0, 7, 9}))
	})
})

var _ = Describe("Grid Model", func() {
	It("should pin given cells and leave blanks open", func() {
		var g sudoku.Grid
		g[0][0] = 5

		m, err := g.GetModel(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(m.Variables()).To(HaveLen(81))
		Expect(m.Variables()[0]).To(Equal(arco.Identifier("X11")))
		Expect(m.Variables()[80]).To(Equal(arco.Identifier("X99")))
		Expect(m.Domains()["X11"]).To(Equal([]int{5}))
		Expect(m.Domains()["X12"]).To(Equal([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}))
	})

	It("should constrain every row, column and box pair once", func() {
		var g sudoku.Grid
		m, err := g.GetModel(context.Background())
		Expect(err).ToNot(HaveOccurred())

		// 81 cells with 20 peers each.
		Expect(m.Edges()).To(HaveLen(810))
		Expect(m.Edges()).To(ContainElement(arco.Edge{A: "X11", B: "X19"}), "row pair")
		Expect(m.Edges()).To(ContainElement(arco.Edge{A: "X11", B: "X91"}), "column pair")
		Expect(m.Edges()).To(ContainElement(arco.Edge{A: "X11", B: "X33"}), "box pair")
	})
})

var _ = Describe("Sudoku Command", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	writePuzzle := func(content string) string {
		path := filepath.Join(dir, "puzzle.txt")
		Expect(os.WriteFile(path, []byte(content), 0600)).To(Succeed())
		return path
	}

	run := func(args ...string) (string, error) {
		cmd := sudoku.NewSudokuCommand()
		out := &bytes.Buffer{}
		cmd.SetOut(out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		err := cmd.Execute()
		return out.String(), err
	}

	It("should complete a near-finished board", func() {
		path := writePuzzle(".84932156\n" +
			"619.85327\n" +
			"235176.89\n" +
			"5.8261934\n" +
			"3418.7562\n" +
			"9265438.1\n" +
			"45.729618\n" +
			"86231.795\n" +
			"19765824.\n")

		out, err := run(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("7 8 4 | 9 3 2 | 1 5 6\n" +
			"6 1 9 | 4 8 5 | 3 2 7\n" +
			"2 3 5 | 1 7 6 | 4 8 9\n" +
			"------+-------+------\n" +
			"5 7 8 | 2 6 1 | 9 3 4\n" +
			"3 4 1 | 8 9 7 | 5 6 2\n" +
			"9 2 6 | 5 4 3 | 8 7 1\n" +
			"------+-------+------\n" +
			"4 5 3 | 7 2 9 | 6 1 8\n" +
			"8 6 2 | 3 1 4 | 7 9 5\n" +
			"1 9 7 | 6 5 8 | 2 4 3\n"))
	})

	It("should report a contradictory board", func() {
		// Two fives in the first row.
		path := writePuzzle("55.......\n" +
			".........\n" +
			".........\n" +
			".........\n" +
			".........\n" +
			".........\n" +
			".........\n" +
			".........\n" +
			".........\n")

		out, err := run(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(HavePrefix("no solution found: constraints not satisfiable"))
	})

	It("should print domain sizes and stats when asked", func() {
		path := writePuzzle(".84932156\n" +
			"619.85327\n" +
			"235176.89\n" +
			"5.8261934\n" +
			"3418.7562\n" +
			"9265438.1\n" +
			"45.729618\n" +
			"86231.795\n" +
			"19765824.\n")

		out, err := run(path, "--show-domains", "--stats")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("candidates left after propagation:\n" +
			"1 1 1 | 1 1 1 | 1 1 1\n"))
		Expect(out).To(ContainSubstring("propagation: removed 72 candidates in"))
		Expect(out).To(ContainSubstring("search: 82 calls, 0 failures in"))
	})

	It("should fail on a missing file", func() {
		_, err := run(filepath.Join(dir, "missing.txt"))
		Expect(err).To(MatchError(ContainSubstring("not found")))
	})
})
