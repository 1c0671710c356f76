package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/javapoet/config"
)

var log = commonlog.GetLogger("javapoet.cli")

func newRootCmd() *cobra.Command {
	var verbosity int
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "javapoet",
		Short: "Generate Java source files from YAML descriptors",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "configuration file (default ./"+config.FileName+")")

	rootCmd.AddCommand(newGenCmd(&configPath))
	rootCmd.AddCommand(newDumpCmd(&configPath))
	rootCmd.AddCommand(newCheckCmd(&configPath))
	rootCmd.AddCommand(newConfigCmd(&configPath))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
