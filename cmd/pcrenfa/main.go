// Command pcrenfa is a small CLI around the pcrenfa package: compile a
// pattern, test it against input, dump its graph description, or report
// its state-count/depth statistics.
package main

import (
	"fmt"
	"os"

	"github.com/coregx/pcrenfa"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pcrenfa",
		Short: "Compile and run PCRE byte-code-backed NFAs",
	}

	rootCmd.AddCommand(matchCmd(), graphCmd(), statsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <pattern> <input>",
		Short: "Report whether input is matched by pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := pcrenfa.Compile(args[0])
			if err != nil {
				return err
			}
			if re.MatchString(args[1]) {
				fmt.Println("match")
				return nil
			}
			fmt.Println("no match")
			os.Exit(1)
			return nil
		},
	}
}

func graphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph <pattern>",
		Short: "Print the compiled NFA's graph description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := pcrenfa.Compile(args[0])
			if err != nil {
				return err
			}
			fmt.Println(re.Graph().Serialize())
			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <pattern>",
		Short: "Print state count and depth statistics for pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := pcrenfa.DefaultConfig()
			cfg.Stats = true
			re, err := pcrenfa.CompileWithConfig(args[0], cfg)
			if err != nil {
				return err
			}
			g := re.Graph()
			fmt.Printf("states: %d\n", g.NumStates())
			if ok := g.CalculateDepth(); !ok {
				fmt.Println("depth: unavailable (stats disabled)")
				return nil
			}
			fmt.Printf("max depth: %d\n", g.MaxDepth())
			start, _ := g.State(g.Start()).Depth()
			fmt.Printf("start depth: %d\n", start)
			return nil
		},
	}
}
