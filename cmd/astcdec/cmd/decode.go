package cmd

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/texturekit/go-astc/astc"
)

func parseProfile(s string) (astc.Profile, error) {
	switch s {
	case "ldr":
		return astc.ProfileLDR, nil
	case "srgb":
		return astc.ProfileLDRSRGB, nil
	case "hdr":
		return astc.ProfileHDR, nil
	case "hdr-rgb-ldr-a":
		return astc.ProfileHDRRGBLDRAlpha, nil
	}
	return 0, fmt.Errorf("unknown profile %q (ldr|srgb|hdr|hdr-rgb-ldr-a)", s)
}

// NewDecodeCmd decodes a .astc file to PNG.
func NewDecodeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <input.astc>",
		Short: "decode a .astc file to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outPath, _ := cmd.Flags().GetString("out")
			profileArg, _ := cmd.Flags().GetString("profile")
			lenient, _ := cmd.Flags().GetBool("lenient")
			workers, _ := cmd.Flags().GetInt("workers")

			profile, err := parseProfile(profileArg)
			if err != nil {
				return err
			}
			if outPath == "" {
				return fmt.Errorf("missing --out")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			pix, w, h, err := astc.DecodeRGBA8(data, &astc.Options{
				Profile: profile,
				Lenient: lenient,
				Workers: workers,
			})
			if err != nil {
				return err
			}
			slog.InfoContext(ctx, "decoded",
				"file", args[0],
				"width", w,
				"height", h,
				"elapsed", time.Since(start))

			img := &image.NRGBA{
				Pix:    pix,
				Stride: w * 4,
				Rect:   image.Rect(0, 0, w, h),
			}
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := png.Encode(f, img); err != nil {
				return err
			}
			return f.Close()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("out", "o", "", "output PNG path")
	pf.StringP("profile", "p", "ldr", "decode profile (ldr|srgb|hdr|hdr-rgb-ldr-a)")
	pf.Bool("lenient", false, "replace malformed blocks with the error color instead of failing")
	pf.Int("workers", runtime.GOMAXPROCS(0), "number of decode workers")
	return cmd
}
