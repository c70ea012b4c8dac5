package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/AnatoleLucet/reactive"
)

func main() {
	var a, b, steps int

	rootCmd := &cobra.Command{
		Use:   "reactdemo",
		Short: "Watch a derived sum react to writes",
		Long: `reactdemo builds a reactive {a, b} record, derives their sum and
prints from an effect every time a write invalidates it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer glog.Flush()
			return run(cmd.OutOrStdout(), a, b, steps)
		},
	}

	rootCmd.Flags().IntVar(&a, "a", 1, "initial value of a")
	rootCmd.Flags().IntVar(&b, "b", 2, "initial value of b")
	rootCmd.Flags().IntVar(&steps, "steps", 1, "how many times to increment a")

	// expose glog flags (-v, -logtostderr, ...)
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer, a, b, steps int) error {
	if steps < 0 {
		return fmt.Errorf("steps must be >= 0, got %d", steps)
	}

	state := reactive.ReactiveObject(map[string]any{"a": a, "b": b})

	sum := reactive.NewComputed(func() int {
		fmt.Fprintln(out, "computed")
		x, _ := state.Get("a").(int)
		y, _ := state.Get("b").(int)
		return x + y
	})

	reactive.NewEffect(func() {
		fmt.Fprintln(out, "render", sum.Value())
	})

	for range steps {
		x, _ := state.Get("a").(int)
		state.Set("a", x+1)
	}

	return nil
}
