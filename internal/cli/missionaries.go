package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tardigrada777/copec-cspy-book/missionaries"
	"github.com/Tardigrada777/copec-cspy-book/search"
)

func newMissionariesCmd() *cobra.Command {
	var methodName string

	cmd := &cobra.Command{
		Use:   "missionaries",
		Short: "Solve the missionaries-and-cannibals river crossing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := search.ParseMethod(methodName)
			if err != nil {
				return err
			}
			return runMissionaries(cmd, method)
		},
	}

	cmd.Flags().StringVarP(&methodName, "method", "m", string(search.MethodBFS), "search method: dfs, bfs, astar")
	return cmd
}

func runMissionaries(cmd *cobra.Command, method search.Method) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	node, err := search.Run(method, search.Problem[missionaries.State]{
		Initial:    missionaries.Start(),
		Goal:       missionaries.State.GoalTest,
		Successors: missionaries.State.Successors,
	}, search.WithContext(ctx), search.WithLogger(loggerFromContext(ctx)))
	if err != nil {
		return fmt.Errorf("solve crossing: %w", err)
	}
	if node == nil {
		printWarning(out, "no solution found")
		return nil
	}

	printTitle(out, "Missionaries and cannibals")
	for i, line := range missionaries.Narrate(node.Path()) {
		if i%2 == 1 {
			fmt.Fprintln(out, styleDim.Render(line))
			continue
		}
		fmt.Fprintln(out, line)
	}
	printSuccess(out, "solved in %d crossings", node.Depth)
	return nil
}
