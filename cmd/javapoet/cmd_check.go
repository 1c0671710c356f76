package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check <descriptor.yaml>...",
		Short: "Validate descriptors without writing anything",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			failed := 0
			for _, path := range args {
				files, err := buildDescriptors([]string{path}, optionsFor(cfg))
				if err == nil {
					err = renderAll(files)
				}
				if err != nil {
					failed++
					cmd.PrintErrf("%s: %v\n", path, err)
					continue
				}
				cmd.Printf("%s: ok (%d files)\n", path, len(files))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d descriptors failed", failed, len(args))
			}
			return nil
		},
	}
}
