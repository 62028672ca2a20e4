package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *command) initDetectCmd() {
	cmd := &cobra.Command{
		Use:   "detect FILE...",
		Short: "Print the image format of files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			pipeline, err := c.newPipeline()
			if err != nil {
				return err
			}
			detector := pipeline.Registry().Detector()

			for _, arg := range args {
				path := c.cleanPath(arg)
				f, err := c.fs.Open(path)
				if err != nil {
					return fmt.Errorf("open %s: %w", path, err)
				}
				format, _, err := detector.Detect(f)
				_ = f.Close()
				if err != nil {
					return fmt.Errorf("detect %s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", path, format.Name(), format.FileExtension())
			}
			return nil
		},
	}

	c.root.AddCommand(cmd)
}
