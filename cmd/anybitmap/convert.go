package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ironsheep/anybitmap/internal/bitmap"
	"github.com/ironsheep/anybitmap/internal/pixel"
)

var convertCmd = &cobra.Command{
	Use:   "convert [source] [output]",
	Short: "Re-encode an image, optionally cropping, rotating, resizing and re-packing it",
	Long: `Convert an image to the format named by --format or by the output file
extension. Operations run in this order: crop, rotate, flip, resize, layout.
Every frame of a multi-frame image is transformed.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

var convertOpts struct {
	format string
	layout string
	rotate string
	flip   string
	resize string
	crop   string
}

func init() {
	f := convertCmd.Flags()
	f.StringVarP(&convertOpts.format, "format", "f", "", "output format (png, jpeg, gif, bmp, tiff, webp)")
	f.StringVar(&convertOpts.layout, "layout", "", "pixel layout (RGB24, BGR24, RGBA32, ARGB32, BGRA32, ABGR32, Gray8, Mono1)")
	f.StringVar(&convertOpts.rotate, "rotate", "", "clockwise rotation: 90, 180 or 270")
	f.StringVar(&convertOpts.flip, "flip", "", "flip after rotation: horizontal, vertical or both")
	f.StringVar(&convertOpts.resize, "resize", "", "new size as WIDTHxHEIGHT")
	f.StringVar(&convertOpts.crop, "crop", "", "rectangle to keep as x,y,width,height")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	src, dst := args[0], args[1]
	f, err := outputFormat(convertOpts.format, dst)
	if err != nil {
		return err
	}

	img, err := load(cmd.Context(), src)
	if err != nil {
		return fmt.Errorf("loading %s: %w", src, err)
	}
	defer func() { img.Close() }()

	// step replaces img with the result of one operation.
	step := func(next *bitmap.Image, err error) error {
		if err != nil {
			return err
		}
		img.Close()
		img = next
		return nil
	}

	if convertOpts.crop != "" {
		r, err := parseRect(convertOpts.crop)
		if err != nil {
			return err
		}
		if err := step(bitmap.Crop(img, r)); err != nil {
			return err
		}
	}

	rot, err := bitmap.ParseRotation(convertOpts.rotate)
	if err != nil {
		return err
	}
	fl, err := bitmap.ParseFlip(convertOpts.flip)
	if err != nil {
		return err
	}
	if rot != bitmap.RotateNone || fl != bitmap.FlipNone {
		if err := step(bitmap.RotateFlip(img, rot, fl)); err != nil {
			return err
		}
	}

	if convertOpts.resize != "" {
		w, h, err := parseSize(convertOpts.resize)
		if err != nil {
			return err
		}
		if err := step(bitmap.Resize(img, w, h)); err != nil {
			return err
		}
	}

	if convertOpts.layout != "" {
		l, ok := pixel.ParseLayout(convertOpts.layout)
		if !ok {
			return fmt.Errorf("%w: layout %q", bitmap.ErrArgument, convertOpts.layout)
		}
		if err := step(bitmap.Convert(img, l)); err != nil {
			return err
		}
	}

	if err := img.SaveAs(dst, f, cfg.JPEGQuality); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	if cfg.Debug() {
		log.Printf("Converted %s to %s (%dx%d, %d frames)", src, dst, img.Width(), img.Height(), img.FrameCount())
	}
	return nil
}
