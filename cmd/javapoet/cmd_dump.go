package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/javapoet/format"
)

func newDumpCmd(configPath *string) *cobra.Command {
	var dumpFormat string

	cmd := &cobra.Command{
		Use:   "dump <descriptor.yaml>",
		Short: "Print the files a descriptor generates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, ok := format.New(dumpFormat, cmd.OutOrStdout())
			if !ok {
				return fmt.Errorf("unknown format %q (want one of %s)", dumpFormat, strings.Join(format.Names(), ", "))
			}
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			files, err := buildDescriptors(args, optionsFor(cfg))
			if err != nil {
				return err
			}
			for _, file := range files {
				if err := enc.Encode(file); err != nil {
					return fmt.Errorf("encode %s: %w", file.RelativePath(), err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "java", "output format ("+strings.Join(format.Names(), ", ")+")")

	return cmd
}
