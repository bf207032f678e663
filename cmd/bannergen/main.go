// Command bannergen composes the LockedIn Twitter banner from the app icon and
// a screenshot.
//
//	go run ./cmd/bannergen --base ~/src/LockedInApp
//	go run ./cmd/bannergen --icon icon.png --screenshot habits.png --out banner.png --verify
//	go run ./cmd/bannergen layout > banner.yaml
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	banner "github.com/lockedinapp/banner-go"
)

const (
	defaultIconPath       = "assets/images/icon.png"
	defaultScreenshotPath = "screenshots/habits.png"
	defaultOutputPath     = "screenshots/twitter-banner.png"
)

type options struct {
	base       string
	icon       string
	screenshot string
	out        string
	layoutPath string
	fontPath   string
	base64     bool
	verify     bool
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bannergen: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	var logger *zap.Logger

	root := &cobra.Command{
		Use:   "bannergen",
		Short: "Compose the LockedIn 2500x1000 marketing banner",
		Long: `bannergen places the app icon, the tagline and a rounded, shadowed
screenshot on a 5:2 canvas and writes the result as PNG.

With no flags it reads assets/images/icon.png and screenshots/habits.png under
--base and writes screenshots/twitter-banner.png.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd, opts, logger)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.layoutPath, "layout", "", "YAML layout file overlaid on the default layout")
	pf.StringVar(&opts.fontPath, "font", banner.DefaultFontPath, "Preferred font file (.ttf/.otf/.ttc)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	f := root.Flags()
	f.StringVar(&opts.base, "base", ".", "Directory the default asset paths are resolved against")
	f.StringVar(&opts.icon, "icon", "", "App icon path or data URL (defaults to <base>/"+defaultIconPath+")")
	f.StringVar(&opts.screenshot, "screenshot", "", "Screenshot path or data URL (defaults to <base>/"+defaultScreenshotPath+")")
	f.StringVar(&opts.out, "out", "", "Output PNG path (defaults to <base>/"+defaultOutputPath+")")
	f.BoolVar(&opts.base64, "base64", false, "Write the PNG as base64 to stdout instead of a file")
	f.BoolVar(&opts.verify, "verify", false, "Check size and accent bar of the composed banner")

	root.AddCommand(newLayoutCmd(opts))
	return root
}

func newLayoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the effective layout as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := resolveLayout(cmd, opts)
			if err != nil {
				return err
			}
			return banner.WriteLayout(cmd.OutOrStdout(), layout)
		},
	}
}

func resolveLayout(cmd *cobra.Command, opts *options) (banner.Layout, error) {
	layout := banner.DefaultLayout()
	if opts.layoutPath != "" {
		var err error
		layout, err = banner.LoadLayout(opts.layoutPath)
		if err != nil {
			return banner.Layout{}, err
		}
	}
	if cmd.Flags().Changed("font") || opts.layoutPath == "" {
		layout.Fonts.Path = opts.fontPath
	}
	return layout, nil
}

func runCompose(cmd *cobra.Command, opts *options, logger *zap.Logger) error {
	layout, err := resolveLayout(cmd, opts)
	if err != nil {
		return err
	}

	iconPath := orDefault(opts.icon, filepath.Join(opts.base, defaultIconPath))
	shotPath := orDefault(opts.screenshot, filepath.Join(opts.base, defaultScreenshotPath))
	outPath := orDefault(opts.out, filepath.Join(opts.base, defaultOutputPath))

	icon, err := banner.LoadImage(iconPath)
	if err != nil {
		return fmt.Errorf("load icon: %w", err)
	}
	shot, err := banner.LoadImage(shotPath)
	if err != nil {
		return fmt.Errorf("load screenshot: %w", err)
	}
	logger.Debug("loaded assets", zap.String("icon", source(iconPath)), zap.String("screenshot", source(shotPath)))

	composer := banner.NewComposer(banner.WithLayout(layout), banner.WithLogger(logger))
	defer composer.Close()

	img, err := composer.Compose(icon, shot)
	if err != nil {
		return fmt.Errorf("compose: %w", err)
	}

	if opts.verify {
		report, err := banner.Verify(img, layout)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		if !report.OK() {
			return fmt.Errorf("verify: %s", report)
		}
		logger.Info("banner verified", zap.Stringer("report", report))
	}

	out := cmd.OutOrStdout()
	if opts.base64 {
		encoded, err := banner.EncodePNGToBase64(img)
		if err != nil {
			return fmt.Errorf("encode base64 output: %w", err)
		}
		fmt.Fprintln(out, encoded)
		return nil
	}

	if err := banner.SavePNG(outPath, img); err != nil {
		return err
	}

	w, h := layout.Width, layout.Height
	g := gcd(w, h)
	fmt.Fprintf(out, "Banner saved to: %s\n", outPath)
	fmt.Fprintf(out, "Dimensions: %dx%d (%d:%d ratio)\n", w, h, w/g, h/g)
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// source shortens data URLs for logging.
func source(src string) string {
	if strings.HasPrefix(strings.ToLower(src), "data:") {
		return "data URL"
	}
	return src
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}
