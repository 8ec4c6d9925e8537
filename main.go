package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	generate := func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context(), opts)
	}

	rootCmd := &cobra.Command{
		Use:           "gqlgenphp",
		Short:         "Generates PHP types from a GraphQL schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          generate,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file (default: search .gqlgenphp.yml upwards from the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "generate",
		Short: "Generate the PHP file configured in the config file",
		Args:  cobra.NoArgs,
		RunE:  generate,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the gqlgenphp version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("gqlgenphp v%s\n", version)
		},
	})

	return rootCmd
}
