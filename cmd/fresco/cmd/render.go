package cmd

import (
	"errors"
	"fmt"
	"image/png"

	"github.com/gogpu/fresco/drawable"
	fimage "github.com/gogpu/fresco/image"
	"github.com/spf13/cobra"
)

var errNoSize = errors.New("image has no intrinsic size, set --width and --height")

func (c *command) initRenderCmd() {
	cmd := &cobra.Command{
		Use:     "render FILE",
		Short:   "Render an image to a PNG file",
		Args:    cobra.ExactArgs(1),
		PreRunE: c.bindFlags,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			opts, err := c.decodeOptions()
			if err != nil {
				return err
			}
			pipeline, err := c.newPipeline()
			if err != nil {
				return err
			}

			path := c.cleanPath(args[0])
			encoded, err := fimage.NewEncodedImageFromFile(c.fs, path)
			if err != nil {
				return err
			}
			img, d, err := pipeline.Load(cmd.Context(), encoded, opts)
			if err != nil {
				return err
			}
			defer img.Close()

			width, height := c.config.GetInt(optionNameWidth), c.config.GetInt(optionNameHeight)
			if width <= 0 {
				width = d.IntrinsicWidth()
			}
			if height <= 0 {
				height = d.IntrinsicHeight()
			}
			if width <= 0 || height <= 0 {
				return errNoSize
			}

			out := c.config.GetString(optionNameOutput)
			if out == "" {
				out = path + ".png"
			}
			out = c.cleanPath(out)

			f, err := c.fs.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer func() {
				if cerr := f.Close(); err == nil && cerr != nil {
					err = fmt.Errorf("close %s: %w", out, cerr)
				}
			}()
			if err := png.Encode(f, drawable.Rasterize(d, width, height)); err != nil {
				return fmt.Errorf("encode %s: %w", out, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%dx%d\n", out, encoded.Format().Name(), width, height)
			return nil
		},
	}
	c.setDecodeFlags(cmd)
	cmd.Flags().StringP(optionNameOutput, "o", "", "output PNG file (default is FILE.png)")
	cmd.Flags().Int(optionNameWidth, 0, "output width (default is the image width)")
	cmd.Flags().Int(optionNameHeight, 0, "output height (default is the image height)")

	c.root.AddCommand(cmd)
}
