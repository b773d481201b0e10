// storeart — Play Store marketing image generator.
//
// Usage:
//
//	storeart --feature-graphic [--primary <hex>] [--accent <hex>]
//	storeart --screenshots [--workdir <dir>]
//	storeart --all-screens [--jobs <n>]
//	storeart --init
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/jessevdk/go-flags"

	"github.com/codzuregroup/storeart/pkg/assets"
	"github.com/codzuregroup/storeart/pkg/generator"
	"github.com/codzuregroup/storeart/pkg/logging"
)

// fontCandidates are the system fonts probed after --font.
var fontCandidates = assets.DefaultFontCandidates

type options struct {
	Logging logging.Opts `group:"Logging" namespace:"logging" env-namespace:"LOGGING"`

	FeatureGraphic bool `long:"feature-graphic" description:"Generate the 1024x500 feature graphic"`
	Screenshots    bool `long:"screenshots" description:"Fit raw screenshots from the input directory to 1080x1920"`
	AllScreens     bool `long:"all-screens" description:"Generate synthetic 1080x1920 screens for every app screen"`
	Init           bool `long:"init" description:"Write sample captions.json and brand.yaml into the work directory"`

	Primary string `long:"primary" description:"Primary brand color (default: #4F46E5)"`
	Accent  string `long:"accent" description:"Accent brand color (default: #22D3EE)"`
	AppName string `long:"app-name" description:"App name on the feature graphic (default: Day Call)"`
	Tagline string `long:"tagline" description:"Tagline on the feature graphic"`
	Brand   string `long:"brand" description:"YAML brand file; flags override its values"`

	WorkDir    string `long:"workdir" description:"Working directory" default:"."`
	Input      string `long:"input" description:"Raw screenshot directory (default: <workdir>/input)"`
	Output     string `long:"output" description:"Output directory (default: <workdir>/output)"`
	Captions   string `long:"captions" description:"Caption map (default: <workdir>/captions.json)"`
	Res        string `long:"res" description:"Android res directory (default: <workdir>/../../app/src/main/res)"`
	Icon       string `long:"icon" description:"App icon (default: <res>/drawable/app_icon.png)"`
	Background string `long:"background" description:"Mock screen background (default: <res>/drawable/bg.png)"`

	Font         string `long:"font" description:"Custom TTF/OTF font used instead of system fonts"`
	FontFallback string `long:"font-fallback" description:"Font used when no other loads" choice:"embedded" choice:"bitmap" default:"embedded"`

	Jobs int `long:"jobs" description:"Images rendered concurrently" default:"1"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.ErrorContext(ctx, "running", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "storeart"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return nil
		}
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("unexpected arguments: %v", rest)
	}

	if err := logging.Init(&opts.Logging); err != nil {
		return err
	}

	if opts.Init {
		created, err := assets.WriteSamples(opts.WorkDir)
		if err != nil {
			return fmt.Errorf("write samples: %w", err)
		}
		for _, path := range created {
			slog.InfoContext(ctx, "created sample", "path", path)
		}
	}

	if !opts.FeatureGraphic && !opts.Screenshots && !opts.AllScreens {
		if !opts.Init {
			parser.WriteHelp(stdout)
		}
		return nil
	}

	brand, err := resolveBrand(opts)
	if err != nil {
		return err
	}
	palette, err := assets.ResolvePalette(brand)
	if err != nil {
		return fmt.Errorf("invalid colors: %w", err)
	}
	slog.DebugContext(ctx, "resolved brand", "app_name", brand.AppName,
		"primary", generator.Hex(palette.Primary), "accent", generator.Hex(palette.Accent))

	paths := resolvePaths(opts)
	for _, dir := range []string{paths.OutputDir, paths.InputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	res, err := assets.LoadResources(assets.ResourceOptions{
		IconPath:       paths.Icon,
		BackgroundPath: paths.Background,
		Font:           fontOptions(opts),
	})
	if err != nil {
		return fmt.Errorf("load resources: %w", err)
	}

	gen := assets.New(assets.Options{Paths: paths, Brand: brand, Resources: res, Jobs: opts.Jobs})

	if opts.FeatureGraphic {
		path, err := gen.FeatureGraphic(ctx, palette)
		if err != nil {
			return err
		}
		slog.InfoContext(ctx, "wrote feature graphic", "path", path)
	}

	if opts.Screenshots {
		written, err := gen.ProcessScreenshots(ctx, palette)
		if err != nil {
			return err
		}
		slog.InfoContext(ctx, "processed screenshots", "count", len(written), "dir", paths.ScreenshotsDir())
	}

	if opts.AllScreens {
		written, err := gen.MockScreens(ctx, palette)
		if err != nil {
			return err
		}
		slog.InfoContext(ctx, "generated screens", "count", len(written), "dir", paths.ScreenshotsDir())
	}

	return nil
}

// resolveBrand layers the brand file and then the flags over the defaults.
func resolveBrand(opts options) (assets.Brand, error) {
	layers := []assets.Brand{}
	if opts.Brand != "" {
		file, err := assets.LoadBrand(opts.Brand)
		if err != nil {
			return assets.Brand{}, err
		}
		layers = append(layers, file)
	}
	layers = append(layers, assets.Brand{
		AppName: opts.AppName,
		Tagline: opts.Tagline,
		Primary: opts.Primary,
		Accent:  opts.Accent,
	})
	return assets.MergeBrand(assets.DefaultBrand(), layers...), nil
}

// fontOptions tries --font first, then the system fonts, then the fallback.
func fontOptions(opts options) assets.FontOptions {
	return assets.FontOptions{
		Path:       opts.Font,
		Candidates: fontCandidates,
		Fallback:   opts.FontFallback,
	}
}

func resolvePaths(opts options) assets.Paths {
	paths := assets.DefaultPaths(opts.WorkDir)
	if opts.Res != "" {
		paths = assets.PathsWithRes(opts.WorkDir, opts.Res)
	}

	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&paths.InputDir, opts.Input)
	override(&paths.OutputDir, opts.Output)
	override(&paths.Captions, opts.Captions)
	override(&paths.Icon, opts.Icon)
	override(&paths.Background, opts.Background)
	return paths
}
