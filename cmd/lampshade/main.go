// Command lampshade generates printable lampshade meshes, previews and profile charts.
//
// Usage:
//
//	lampshade <stl|preview|profile|random|serve> [flags]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/soypat/lampshade"
	"github.com/soypat/lampshade/internal/config"
	"github.com/soypat/lampshade/internal/logger"
	"github.com/soypat/lampshade/internal/server"
	"github.com/soypat/lampshade/render"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

const usage = `usage: lampshade <command> [flags]

commands:
  stl      write the design as a binary STL file
  preview  render a PNG preview of the design
  profile  plot the body profile of the design as PNG
  random   draw a random design and write it as STL
  serve    run the HTTP export service
  config   save the effective settings to -o or the user config directory
`

var errUsage = errors.New("unknown command")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if errors.Is(err, errUsage) {
		fmt.Fprint(os.Stderr, usage)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "lampshade:", err)
		os.Exit(1)
	}
}

// app holds the state shared by all commands.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	out    string
	seed   int64
	stdout io.Writer
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd := args[0]
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	var (
		cfgPath = fs.String("config", "", "Path to config file")
		design  = fs.String("design", "", "Path to a file holding a design line")
		out     = fs.String("o", "", "Output file path")
		outdir  = fs.String("outdir", "", "Directory for generated files")
		seed    = fs.Int64("seed", 0, "Random seed, 0 uses the clock")
		debug   = fs.Bool("debug", false, "Enable debug logging")
		detail  = fs.Int("detail", 0, "Mesh detail override")
		workers = fs.Int("workers", 0, "Build goroutines, 0 uses the config")
		listen  = fs.String("listen", "", "Address for serve")
	)
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	cfg, err := config.Load(*cfgPath, config.Overrides{
		Debug:     *debug,
		OutputDir: *outdir,
		Listen:    *listen,
		Workers:   *workers,
		Detail:    *detail,
	})
	if err != nil {
		return err
	}
	if *design != "" {
		data, err := os.ReadFile(*design)
		if err != nil {
			return err
		}
		p, err := lampshade.ParseDesign(string(data), cfg.Params)
		if err != nil {
			return fmt.Errorf("%s: %w", *design, err)
		}
		if *detail > 0 {
			p.Detail = *detail
		}
		cfg.Params = p.Derive()
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.File, logger.Stderr)
	defer log.Sync()
	a := &app{cfg: cfg, log: log, out: *out, seed: *seed, stdout: stdout}

	switch cmd {
	case "stl":
		return a.writeSTL(ctx, cfg.Params.Derive())
	case "preview":
		return a.writePreview(ctx)
	case "profile":
		return a.writeProfile()
	case "random":
		return a.random(ctx)
	case "serve":
		return server.New(cfg, log).Run(ctx)
	case "config":
		return a.saveConfig()
	}
	return fmt.Errorf("%w %q", errUsage, cmd)
}

// outputPath returns the -o path or a name derived from the design in the output directory.
func (a *app) outputPath(p lampshade.Params, ext string) string {
	if a.out != "" {
		return a.out
	}
	return filepath.Join(a.cfg.Output.Dir, p.Name()+ext)
}

func (a *app) build(ctx context.Context, p lampshade.Params) (lampshade.Mesh, error) {
	if err := lampshade.DefaultLimits().Validate(p); err != nil {
		a.log.Warn("design outside recommended limits", zap.Error(err))
	}
	start := time.Now()
	m, err := lampshade.BuildConcurrent(ctx, p, a.cfg.Build.Workers)
	if err != nil {
		return lampshade.Mesh{}, err
	}
	a.log.Info("mesh built",
		zap.String("design", p.DesignString()),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", m.NumTriangles()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return m, nil
}

func (a *app) writeSTL(ctx context.Context, p lampshade.Params) error {
	raw, err := a.build(ctx, p)
	if err != nil {
		return err
	}
	m := render.Export(raw)
	path := a.outputPath(p, ".stl")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := render.CreateSTL(path, m); err != nil {
		return err
	}
	a.log.Info("wrote STL", zap.String("path", path), zap.Int("triangles", m.NumTriangles()))
	return nil
}

func (a *app) writePreview(ctx context.Context) error {
	p := a.cfg.Params.Derive()
	m, err := a.build(ctx, p)
	if err != nil {
		return err
	}
	cfg := render.DefaultPreviewConfig()
	cfg.Width, cfg.Height, cfg.Supersample = a.cfg.Preview.Width, a.cfg.Preview.Height, a.cfg.Preview.Supersample
	path := a.outputPath(p, ".png")
	err = createFile(path, func(w io.Writer) error { return render.WritePreviewPNG(w, m, cfg) })
	if err != nil {
		return err
	}
	a.log.Info("wrote preview", zap.String("path", path))
	return nil
}

func (a *app) writeProfile() error {
	p := a.cfg.Params.Derive()
	path := a.outputPath(p, "_profile.png")
	err := createFile(path, func(w io.Writer) error {
		return render.WriteProfilePlot(w, p, 12*vg.Centimeter, 8*vg.Centimeter)
	})
	if err != nil {
		return err
	}
	a.log.Info("wrote profile", zap.String("path", path))
	return nil
}

// random draws a design, prints its line and writes it as STL.
func (a *app) random(ctx context.Context) error {
	seed := a.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p := lampshade.Randomize(rand.New(rand.NewSource(seed)), a.cfg.Params, lampshade.DefaultLimits())
	a.log.Debug("random design", zap.Int64("seed", seed), zap.String("pattern", p.Pattern.String()))
	fmt.Fprintln(a.stdout, p.DesignString())
	return a.writeSTL(ctx, p)
}

func (a *app) saveConfig() error {
	if a.out != "" {
		if err := a.cfg.SaveTo(a.out); err != nil {
			return err
		}
		a.log.Info("saved config", zap.String("path", a.out))
		return nil
	}
	if err := a.cfg.Save(); err != nil {
		return err
	}
	a.log.Info("saved config", zap.String("dir", config.Dir()))
	return nil
}

func createFile(path string, write func(w io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
