package sudoku

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-arc/arco/pkg/arco"
	"github.com/go-arc/arco/pkg/arco/solver"
)

func NewSudokuCommand() *cobra.Command {
	var engine string
	var showDomains bool
	var showStats bool

	cmd := &cobra.Command{
		Use:   "sudoku <path>",
		Short: "Solves a sudoku puzzle",
		Long: `Solves a 9x9 sudoku puzzle read from a file. The file holds nine rows
of nine digits each, with 0 or . marking a blank cell. For instance:

53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd.OutOrStdout(), args[0], engine, showDomains, showStats)
		},
	}

	cmd.Flags().StringVar(&engine, "engine", "backtracking", "solving engine: backtracking or sat")
	cmd.Flags().BoolVar(&showDomains, "show-domains", false, "print per-cell candidate counts left after propagation")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print solving statistics")

	return cmd
}

func solve(out io.Writer, path string, engine string, showDomains bool, showStats bool) error {
	// open puzzle file
	puzzleFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening puzzle file (%s): %w", path, err)
	}
	defer puzzleFile.Close()

	grid, err := NewGrid(puzzleFile)
	if err != nil {
		return fmt.Errorf("error parsing puzzle file (%s): %w", path, err)
	}

	options, err := engineOptions(engine)
	if err != nil {
		return err
	}
	if showDomains {
		options = append(options, solver.WithDomainSnapshot())
	}

	// get solution
	so := solver.New[int](grid)
	solution, err := so.Solve(context.Background(), options...)
	if err != nil {
		return err
	}

	if showDomains {
		fmt.Fprintln(out, "candidates left after propagation:")
		printDomainSizes(out, solution.Domains())
	}

	if serr := solution.Error(); serr != nil {
		fmt.Fprintf(out, "no solution found: %s\n", serr)
	} else {
		printAssignment(out, solution.Assignment())
	}

	if showStats {
		printStats(out, solution.Stats())
	}

	return nil
}

func engineOptions(engine string) ([]solver.Option, error) {
	switch engine {
	case "backtracking":
		return nil, nil
	case "sat":
		return []solver.Option{solver.WithSATEngine()}, nil
	}
	return nil, fmt.Errorf("unknown engine %q: expected backtracking or sat", engine)
}

func printAssignment(out io.Writer, assignment map[arco.Identifier]int) {
	printCells(out, func(row, col int) string {
		if v, ok := assignment[CellID(row, col)]; ok {
			return strconv.Itoa(v)
		}
		return "."
	})
}

func printDomainSizes(out io.Writer, domains map[arco.Identifier][]int) {
	printCells(out, func(row, col int) string {
		return strconv.Itoa(len(domains[CellID(row, col)]))
	})
}

func printCells(out io.Writer, cell func(row, col int) string) {
	for row := 0; row < 9; row++ {
		if row == 3 || row == 6 {
			fmt.Fprintln(out, "------+-------+------")
		}
		cells := make([]string, 0, 11)
		for col := 0; col < 9; col++ {
			if col == 3 || col == 6 {
				cells = append(cells, "|")
			}
			cells = append(cells, cell(row, col))
		}
		fmt.Fprintln(out, strings.Join(cells, " "))
	}
}

func printStats(out io.Writer, stats solver.Stats) {
	fmt.Fprintf(out, "propagation: removed %d candidates in %s\n", stats.Removed, stats.PropagationTime)
	fmt.Fprintf(out, "search: %d calls, %d failures in %s\n", stats.Calls, stats.Failures, stats.SearchTime)
	fmt.Fprintf(out, "total: %s\n", stats.TotalTime)
}
