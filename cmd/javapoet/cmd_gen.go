package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dhamidi/javapoet/sink"
)

func newGenCmd(configPath *string) *cobra.Command {
	var outputDir string
	var watchFiles bool

	cmd := &cobra.Command{
		Use:   "gen <descriptor.yaml>...",
		Short: "Generate Java files from descriptors",
		Long: `Generate Java files from descriptors.

Every file described is rendered and written below the output directory
at the path its package implies, e.g. com/example/Taco.java. With --watch
the descriptors are regenerated whenever they change.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if outputDir != "" {
				cfg.OutputDir = outputDir
			}
			out := sink.NewFilesystemSink(cfg.OutputDir)
			out.Overwrite = cfg.Overwrite

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			generate := func() error {
				files, err := buildDescriptors(args, optionsFor(cfg))
				if err != nil {
					return err
				}
				if err := sink.WriteFiles(ctx, out, files); err != nil {
					return err
				}
				cmd.Printf("wrote %d files to %s\n", len(files), cfg.OutputDir)
				return nil
			}

			if !watchFiles {
				return generate()
			}
			if err := generate(); err != nil {
				log.Errorf("%v", err)
			}
			return watch(ctx, args, generate)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "out", "o", "", "output directory (overrides output_dir)")
	cmd.Flags().BoolVarP(&watchFiles, "watch", "w", false, "regenerate when a descriptor changes")

	return cmd
}

