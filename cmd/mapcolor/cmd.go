package mapcolor

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/go-arc/arco/pkg/arco"
	"github.com/go-arc/arco/pkg/arco/solver"
)

func NewMapColorCommand() *cobra.Command {
	var colors []string
	var engine string
	var trace bool

	cmd := &cobra.Command{
		Use:   "mapcolor",
		Short: "Colors the map of Australia",
		Long: `Assigns a color to every Australian state and territory so that no two
bordering regions share one. Three colors suffice; try --colors with two
to see the solver prove the map uncolorable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd.OutOrStdout(), colors, engine, trace)
		},
	}

	cmd.Flags().StringSliceVar(&colors, "colors", []string{"red", "green", "blue"}, "palette available to every region")
	cmd.Flags().StringVar(&engine, "engine", "backtracking", "solving engine: backtracking or sat")
	cmd.Flags().BoolVar(&trace, "trace", false, "log propagation and search steps to stderr")

	return cmd
}

func solve(out io.Writer, colors []string, engine string, trace bool) error {
	options, err := engineOptions(engine)
	if err != nil {
		return err
	}
	if trace {
		options = append(options, solver.WithTracer(arco.LoggingTracer{Writer: os.Stderr}))
	}

	so := solver.New[string](NewAustralia(lo.Uniq(colors)...))
	solution, err := so.Solve(context.Background(), options...)
	if err != nil {
		return err
	}

	if err := solution.Error(); err != nil {
		fmt.Fprintf(out, "no solution found: %s\n", err)
		return nil
	}

	for _, region := range Regions {
		color, _ := solution.Value(region)
		fmt.Fprintf(out, "%s = %s\n", region, color)
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
