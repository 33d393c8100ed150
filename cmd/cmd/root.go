package cmd

import (
	"github.com/spf13/cobra"

	"github.com/theplow-kwak/libutils/internal/env"
)

func Execute() error {
	rootCmd := &cobra.Command{
		Use:   env.AppName,
		Short: env.AppName + " - disk addressing and raw sector utilities",
	}

	rootCmd.AddCommand(DefineResolveCommand())
	rootCmd.AddCommand(DefineReadCommand())
	rootCmd.AddCommand(DefineVersionCommand())

	return rootCmd.Execute()
}
