package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ironsheep/anybitmap/internal/bitmap"
	"github.com/ironsheep/anybitmap/internal/format"
)

var splitCmd = &cobra.Command{
	Use:   "split [source] [directory]",
	Short: "Write every frame of a multi-frame image to its own file",
	Args:  cobra.ExactArgs(2),
	RunE:  runSplit,
}

var tiffCmd = &cobra.Command{
	Use:   "tiff [output] [source...]",
	Short: "Concatenate the frames of several images into a multi-page TIFF",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssemble(cmd, args[0], args[1:], bitmap.CreateMultiFrameTiff)
	},
}

var gifCmd = &cobra.Command{
	Use:   "gif [output] [source...]",
	Short: "Concatenate the frames of several images into an animated GIF",
	Long: `Concatenate the frames of several images into a GIF. Frames smaller than
the largest one are centered on a transparent canvas.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssemble(cmd, args[0], args[1:], bitmap.CreateMultiFrameGif)
	},
}

var splitFormat string

func init() {
	splitCmd.Flags().StringVarP(&splitFormat, "format", "f", "", "format of each frame file (default: the source format)")
	rootCmd.AddCommand(splitCmd, tiffCmd, gifCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	src, dir := args[0], args[1]
	f, err := outputFormat(splitFormat, "")
	if err != nil {
		return err
	}

	img, err := load(cmd.Context(), src)
	if err != nil {
		return fmt.Errorf("loading %s: %w", src, err)
	}
	defer img.Close()
	if f == format.Unknown {
		f = img.Format()
		if f == format.Svg {
			f = format.Png
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	i := 0
	for part := range bitmap.SplitFrames(img) {
		path := filepath.Join(dir, fmt.Sprintf("frame-%03d%s", i, f.Extension()))
		err := part.SaveAs(path, f, cfg.JPEGQuality)
		part.Close()
		if err != nil {
			return fmt.Errorf("writing frame %d: %w", i, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		i++
	}
	return nil
}

func runAssemble(cmd *cobra.Command, dst string, sources []string, create func(...*bitmap.Image) (*bitmap.Image, error)) error {
	images := make([]*bitmap.Image, 0, len(sources))
	defer func() {
		for _, img := range images {
			img.Close()
		}
	}()
	for _, src := range sources {
		img, err := load(cmd.Context(), src)
		if err != nil {
			return fmt.Errorf("loading %s: %w", src, err)
		}
		images = append(images, img)
	}

	out, err := create(images...)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := out.SaveAs(dst, out.Format(), 0); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	if cfg.Debug() {
		log.Printf("Wrote %d frames to %s", out.FrameCount(), dst)
	}
	return nil
}
