package main

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"manydice/dice"
	"manydice/domain/randvar"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "manydice",
		Short: "Roll dice and inspect exact distributions",
	}

	rootCmd.AddCommand(
		newRollCmd(),
		newPMFCmd(),
		newSumCmd(),
	)

	return rootCmd
}

func newRollCmd() *cobra.Command {
	var times int

	cmd := &cobra.Command{
		Use:   "roll [expression]",
		Short: "Roll a dice expression such as d20 or 2d6",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseExpression(args[0])
			if err != nil {
				return err
			}
			for i := 0; i < times; i++ {
				value, err := randvar.RollAlone(v)
				if err != nil {
					return err
				}
				fmt.Printf("%s: %d\n", v.Name(), value)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&times, "times", "n", 1, "number of independent rolls")
	return cmd
}

func newPMFCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pmf [expression]",
		Short: "Print the exact probability mass function of a dice expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseExpression(args[0])
			if err != nil {
				return err
			}
			masses, err := randvar.PMF(v)
			if err != nil {
				return err
			}
			values := make([]int, 0, len(masses))
			for value := range masses {
				values = append(values, value)
			}
			sort.Ints(values)
			fmt.Printf("%s\n", v.Name())
			for _, value := range values {
				fmt.Printf("%3d  %.6f\n", value, float64(masses[value]))
			}
			return nil
		},
	}
}

func newSumCmd() *cobra.Command {
	var times int

	cmd := &cobra.Command{
		Use:   "sum [expressions...]",
		Short: "Roll several dice expressions from one joint outcome and print their total",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vars := make([]randvar.Variable[int], len(args))
			for i, expr := range args {
				v, err := parseExpression(expr)
				if err != nil {
					return err
				}
				vars[i] = v
			}
			total, err := dice.Sum(vars...)
			if err != nil {
				return err
			}

			// Rolling the operands and their total together guarantees the
			// printed values satisfy the additive relation on every line.
			joint := make([]randvar.AnyVariable, 0, len(vars)+1)
			for _, v := range vars {
				joint = append(joint, v)
			}
			joint = append(joint, total)

			out := cmd.OutOrStdout()
			for i := 0; i < times; i++ {
				values, err := randvar.RollTogether(joint...)
				if err != nil {
					return err
				}
				for j, v := range vars {
					fmt.Fprintf(out, "%s=%d ", v.Name(), values[j])
				}
				fmt.Fprintf(out, "total=%d\n", values[len(vars)])
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&times, "times", "n", 1, "number of joint rolls")
	return cmd
}

var expressionPattern = regexp.MustCompile(`^(\d*)d(\d+)$`)

// parseExpression builds a variable from an NdM dice expression. A missing
// count means a single die.
func parseExpression(expr string) (randvar.Variable[int], error) {
	m := expressionPattern.FindStringSubmatch(expr)
	if m == nil {
		return nil, fmt.Errorf("invalid dice expression %q, want NdM such as 2d6", expr)
	}
	count := 1
	if m[1] != "" {
		var err error
		count, err = strconv.Atoi(m[1])
		if err != nil {
			return nil, err
		}
	}
	sides, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, err
	}
	if count == 1 {
		return dice.Fair(sides)
	}
	return dice.FairSum(count, sides)
}
