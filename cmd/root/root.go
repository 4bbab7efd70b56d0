package root

import (
	"github.com/spf13/cobra"

	"github.com/go-arc/arco/cmd/mapcolor"

	"github.com/go-arc/arco/cmd/sudoku"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arco",
		Short: "Arco is an open-source finite-domain constraint solver",
		Long: `An open-source finite-domain constraint solver written in Go.
For more information visit https://github.com/go-arc/arco`,
	}

	// add sub-commands
	rootCmd.AddCommand(mapcolor.NewMapColorCommand())
	rootCmd.AddCommand(sudoku.NewSudokuCommand())

	return rootCmd
}
