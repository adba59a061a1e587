package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/anybitmap/internal/palette"
)

var infoCmd = &cobra.Command{
	Use:   "info [source]",
	Short: "Show format, size, pixel layout and frames of an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

var infoColors int

func init() {
	infoCmd.Flags().IntVar(&infoColors, "colors", 0, "also list the N most frequent colors of frame 0")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	img, err := load(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("loading %s: %w", args[0], err)
	}
	defer img.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Source:     %s\n", args[0])
	fmt.Fprintf(out, "Format:     %s (%s)\n", img.Format(), img.MimeType())
	fmt.Fprintf(out, "Dimensions: %d x %d\n", img.Width(), img.Height())
	fmt.Fprintf(out, "Layout:     %s, %d bpp, stride %d\n", img.Layout(), img.BitsPerPixel(), img.Stride())
	fmt.Fprintf(out, "Frames:     %d\n", img.FrameCount())
	fmt.Fprintf(out, "Size:       %d bytes\n", img.Len())
	fmt.Fprintf(out, "ID:         %s\n", img.ID())

	if infoColors <= 0 {
		return nil
	}
	counts, err := img.DominantColors(infoColors)
	if err != nil {
		return err
	}
	total := float64(img.Width() * img.Height())
	fmt.Fprintln(out, "Colors:")
	for _, c := range counts {
		name, ok := palette.Name(c.Color)
		if !ok {
			near, _ := palette.Nearest(c.Color)
			name = "~" + near
		}
		fmt.Fprintf(out, "  %s  %6.2f%%  %s\n", c.Color, float64(c.Count)/total*100, name)
	}
	return nil
}
