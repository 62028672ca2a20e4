package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/gogpu/fresco"
	"github.com/gogpu/fresco/decoder"
	fimage "github.com/gogpu/fresco/image"
	"github.com/gogpu/fresco/imageformat"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type decodeResult struct {
	path          string
	format        imageformat.ImageFormat
	width, height int
	encodedSize   int
	decodedSize   int
	err           error
}

func (c *command) initDecodeCmd() {
	cmd := &cobra.Command{
		Use:     "decode FILE...",
		Short:   "Decode images and print their dimensions",
		Args:    cobra.MinimumNArgs(1),
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

			results := make([]decodeResult, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(max(1, c.config.GetInt(optionNameJobs)))
			for i, arg := range args {
				g.Go(func() error {
					results[i] = c.decodeFile(ctx, pipeline, c.cleanPath(arg), opts)
					return ctx.Err()
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			p := message.NewPrinter(language.English)
			var failed int
			for _, r := range results {
				if r.err != nil {
					failed++
					p.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%v\n", r.path, decoder.Classify(r.err), r.err)
					continue
				}
				p.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%dx%d\t%d bytes encoded\t%d bytes decoded\n",
					r.path, r.format.Name(), r.width, r.height, r.encodedSize, r.decodedSize)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d images failed to decode", failed, len(results))
			}
			return nil
		},
	}
	c.setDecodeFlags(cmd)
	cmd.Flags().Int(optionNameJobs, runtime.NumCPU(), "number of images decoded concurrently")

	c.root.AddCommand(cmd)
}

func (c *command) decodeFile(ctx context.Context, pipeline *fresco.Pipeline, path string, opts decoder.Options) decodeResult {
	r := decodeResult{path: path}
	encoded, err := fimage.NewEncodedImageFromFile(c.fs, path)
	if err != nil {
		r.err = &decoder.ReadError{Source: path, Err: err}
		return r
	}
	img, err := pipeline.Decode(ctx, encoded, opts)
	r.format = encoded.Format()
	if err != nil {
		r.err = err
		return r
	}
	defer img.Close()

	r.width, r.height = img.Width(), img.Height()
	r.encodedSize = encoded.Size()
	r.decodedSize = img.SizeInBytes()
	return r
}
