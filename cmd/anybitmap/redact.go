package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/anybitmap/internal/bitmap"
	"github.com/ironsheep/anybitmap/internal/format"
	"github.com/ironsheep/anybitmap/internal/palette"
)

var redactCmd = &cobra.Command{
	Use:   "redact [source] [output]",
	Short: "Paint solid rectangles over parts of an image",
	Example: `  anybitmap redact scan.tiff clean.tiff --rect 10,10,200,40 --rect 10,300,120,20
  anybitmap redact shot.png out.png --rect 0,0,64,64 --color white`,
	Args: cobra.ExactArgs(2),
	RunE: runRedact,
}

var redactOpts struct {
	rects []string
	color string
}

func init() {
	redactCmd.Flags().StringArrayVar(&redactOpts.rects, "rect", nil, "rectangle as x,y,width,height (repeatable)")
	redactCmd.Flags().StringVar(&redactOpts.color, "color", "black", "fill color name or hex code")
	redactCmd.MarkFlagRequired("rect")
	rootCmd.AddCommand(redactCmd)
}

func runRedact(cmd *cobra.Command, args []string) error {
	src, dst := args[0], args[1]
	c, err := palette.Parse(redactOpts.color)
	if err != nil {
		return err
	}
	rects := make([]bitmap.Rect, len(redactOpts.rects))
	for i, s := range redactOpts.rects {
		if rects[i], err = parseRect(s); err != nil {
			return err
		}
	}

	img, err := load(cmd.Context(), src)
	if err != nil {
		return fmt.Errorf("loading %s: %w", src, err)
	}
	defer func() { img.Close() }()

	for _, r := range rects {
		out, err := bitmap.Redact(img, r, c)
		if err != nil {
			return err
		}
		img.Close()
		img = out
	}

	if err := img.SaveAs(dst, format.FromPath(dst), cfg.JPEGQuality); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
