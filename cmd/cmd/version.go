package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theplow-kwak/libutils/internal/env"
	"github.com/theplow-kwak/libutils/pkg/sysinfo"
)

func DefineVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "version",
		Short:        "Print version and build information",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         RunVersion,
	}
}

func RunVersion(cmd *cobra.Command, args []string) error {
	fmt.Printf("%s %s\n", env.AppName, env.Version)
	fmt.Printf("Commit:     %s\n", env.CommitHash)
	fmt.Printf("Build Time: %s\n", env.BuildTime)

	info, err := sysinfo.Stat()
	if err != nil {
		return err
	}
	fmt.Printf("OS:         %s (%s %s)\n", info.Name, info.Release, info.Version)
	return nil
}
