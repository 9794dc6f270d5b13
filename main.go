package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/output"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// publishTimeout bounds each S3 upload
const publishTimeout = 30 * time.Second

// options holds the command line configuration; zero values keep the scene's defaults
type options struct {
	scene     string
	width     int
	height    int
	spp       int
	depth     int
	workers   int
	seed      int64
	out       string
	aux       bool
	thumbnail int
	publish   bool
	envFile   string
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	renderID := uuid.NewString()
	logger := renderer.NewDefaultLogger(renderID[:8])

	if err := run(opts, renderID, logger); err != nil {
		logger.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, usageOut io.Writer) (options, error) {
	var opts options
	flags := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	flags.SetOutput(usageOut)

	flags.StringVar(&opts.scene, "scene", "random-spheres", "Scene name: "+strings.Join(scene.Names(), ", "))
	flags.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	flags.IntVar(&opts.height, "height", 0, "Image height in pixels (0 = scene default)")
	flags.IntVar(&opts.spp, "spp", 0, "Samples per pixel (0 = scene default)")
	flags.IntVar(&opts.depth, "depth", -1, "Maximum bounces (-1 = scene default)")
	flags.IntVar(&opts.workers, "workers", 0, "Parallel row bands (0 = hardware parallelism)")
	flags.Int64Var(&opts.seed, "seed", 0, "Base random seed (0 = scene default)")
	flags.StringVar(&opts.out, "out", "", "Output file (.png, .bmp, .tif); default output/<scene>/render_<timestamp>.png")
	flags.BoolVar(&opts.aux, "aux", false, "Also write albedo, normal and depth passes")
	flags.IntVar(&opts.thumbnail, "thumbnail", 0, "Also write a thumbnail of this width (0 = none)")
	flags.BoolVar(&opts.publish, "publish", false, "Upload the outputs to S3 (configured through S3_* variables)")
	flags.StringVar(&opts.envFile, "env", ".env", "Environment file with S3 settings")

	flags.Usage = func() {
		fmt.Fprintln(usageOut, "Sphere Path Tracer")
		fmt.Fprintln(usageOut, "Usage: pathtracer [options]")
		fmt.Fprintln(usageOut)
		fmt.Fprintln(usageOut, "Options:")
		flags.PrintDefaults()
		fmt.Fprintln(usageOut)
		fmt.Fprintln(usageOut, "Available scenes:")
		for _, info := range scene.List() {
			fmt.Fprintf(usageOut, "  %-15s %s\n", info.Name, info.Description)
		}
	}

	if err := flags.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

// applyOptions overrides the scene's sampling configuration with the flags that were set
func applyOptions(sc *scene.Scene, opts options) {
	if opts.width > 0 {
		sc.Sampling.Width = opts.width
	}
	if opts.height > 0 {
		sc.Sampling.Height = opts.height
	}
	if opts.spp > 0 {
		sc.Sampling.SamplesPerPixel = opts.spp
	}
	if opts.depth >= 0 {
		sc.Sampling.MaxBounces = opts.depth
	}
	if opts.seed != 0 {
		sc.Sampling.Seed = opts.seed
	}
	sc.Sampling.NumWorkers = opts.workers
	sc.Sampling.AuxPasses = opts.aux
}

// outputPath returns opts.out or a timestamped default under output/<scene>
func outputPath(opts options, now time.Time) string {
	if opts.out != "" {
		return opts.out
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", opts.scene, fmt.Sprintf("render_%s.png", timestamp))
}

// loadEnv loads the environment file if it exists
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

func run(opts options, renderID string, logger core.Logger) error {
	if err := loadEnv(opts.envFile); err != nil {
		return err
	}

	selectedScene, err := scene.Create(opts.scene)
	if err != nil {
		return err
	}
	applyOptions(selectedScene, opts)
	logger.Printf("Scene %q with %d spheres\n", selectedScene.Name, selectedScene.GetPrimitiveCount())

	raytracer := renderer.NewRaytracer(selectedScene, logger)
	if err := raytracer.Init(); err != nil {
		return err
	}
	stats, err := raytracer.Render()
	if err != nil {
		return err
	}
	logger.Printf("%d samples over %d pixels (%d workers)\n", stats.TotalSamples, stats.TotalPixels, stats.Workers)

	outputs, err := writeOutputs(raytracer.Frame(), outputPath(opts, time.Now()), opts)
	if err != nil {
		return err
	}
	for _, path := range outputs {
		logger.Printf("Render saved as %s\n", path)
	}

	if !opts.publish {
		return nil
	}
	publisher, err := output.NewS3Publisher(output.S3ConfigFromEnv())
	if err != nil {
		return err
	}
	return publishOutputs(context.Background(), publisher, renderID, outputs, logger)
}

// namedImage is an image and the path it is saved to
type namedImage struct {
	path string
	img  image.Image
}

// writeOutputs saves the color image and any requested extras, returning the written paths
func writeOutputs(frame *renderer.FrameBuffer, path string, opts options) ([]string, error) {
	color := output.ToImage(frame)
	images := []namedImage{{path, color}}

	if opts.aux && frame.HasAux() {
		images = append(images,
			namedImage{output.AuxPath(path, "albedo"), output.AlbedoImage(frame)},
			namedImage{output.AuxPath(path, "normal"), output.NormalImage(frame)},
			namedImage{output.AuxPath(path, "depth"), output.DepthImage(frame)},
		)
	}
	if opts.thumbnail > 0 {
		images = append(images, namedImage{output.AuxPath(path, "thumb"), output.Thumbnail(color, opts.thumbnail)})
	}

	paths := make([]string, 0, len(images))
	for _, entry := range images {
		if err := output.SaveImage(entry.path, entry.img); err != nil {
			return paths, err
		}
		paths = append(paths, entry.path)
	}
	return paths, nil
}

// publisher is the upload side of output.S3Publisher
type publisher interface {
	Publish(ctx context.Context, key string, data []byte, contentType string) error
}

// publishOutputs uploads each written file under <renderID>/<file name>
func publishOutputs(ctx context.Context, p publisher, renderID string, paths []string, logger core.Logger) error {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", path, err)
		}
		format, err := output.FormatFromPath(path)
		if err != nil {
			return err
		}

		key := renderID + "/" + filepath.Base(path)
		uploadCtx, cancel := context.WithTimeout(ctx, publishTimeout)
		err = p.Publish(uploadCtx, key, data, format.ContentType())
		cancel()
		if err != nil {
			return err
		}
		logger.Printf("Uploaded %s (%d bytes)\n", key, len(data))
	}
	return nil
}
