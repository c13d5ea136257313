package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/woozymasta/maskmap/internal/config"
	"github.com/woozymasta/maskmap/internal/logger"
	"github.com/woozymasta/maskmap/internal/mapgen"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Dir        string `short:"d" long:"dir"       env:"MASKMAP_DIR"      description:"Base directory for relative paths (default: executable directory)"`
	Points     string `short:"x" long:"points"    env:"MASKMAP_POINTS"   description:"Spreadsheet with points" default:"points.xlsx"`
	Boundary   string `short:"b" long:"boundary"  env:"MASKMAP_BOUNDARY" description:"GeoJSON with the country boundary" default:"japan_boundary.geojson"`
	Output     string `short:"o" long:"out"       env:"MASKMAP_OUT"      description:"Output HTML file" default:"japan_map.html"`
	Sheet      string `short:"s" long:"sheet"     env:"MASKMAP_SHEET"    description:"Spreadsheet sheet name (default: first sheet)"`
	ConfigFile string `short:"c" long:"config"    env:"CONFIG_FILE"      description:"Path to optional YAML configuration file"`
	Center     string `long:"center"              env:"MASKMAP_CENTER"   description:"Map center as lat,lon"`
	Zoom       int    `short:"z" long:"zoom"      env:"MASKMAP_ZOOM"     description:"Initial zoom level"`
	NoMinify   bool   `long:"no-minify"           description:"Write the document without minification"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := loadConfig(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	baseDir, err := resolveBaseDir(opts.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to resolve base directory")
	}

	in := mapgen.Inputs{
		PointsPath:   resolvePath(baseDir, opts.Points),
		BoundaryPath: resolvePath(baseDir, opts.Boundary),
		OutputPath:   resolvePath(baseDir, opts.Output),
		Sheet:        opts.Sheet,
	}

	log.Debug().
		Str("points", in.PointsPath).
		Str("boundary", in.BoundaryPath).
		Str("out", in.OutputPath).
		Msg("Starting map generation")

	if _, err := mapgen.Generate(cfg, in); err != nil {
		log.Fatal().Err(err).Msg("Failed to create map")
	}

	fmt.Printf("Map created: %s\n", in.OutputPath)
}

// loadConfig builds the configuration from defaults, the optional file and flags.
func loadConfig(opts Options) (config.Config, error) {
	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigFile); err != nil {
			return cfg, err
		}
	}

	if opts.Center != "" {
		center, err := parseCenter(opts.Center)
		if err != nil {
			return cfg, err
		}
		cfg.Center = center
	}
	if opts.Zoom > 0 {
		cfg.Zoom = opts.Zoom
	}
	if opts.NoMinify {
		cfg.Minify = false
	}

	return cfg, cfg.Validate()
}

func parseCenter(s string) ([2]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return [2]float64{}, fmt.Errorf("center %q: want lat,lon", s)
	}

	var center [2]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return [2]float64{}, fmt.Errorf("center %q: %w", s, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return [2]float64{}, fmt.Errorf("center %q: not a finite number", s)
		}
		center[i] = v
	}

	return center, nil
}

// resolveBaseDir returns dir, or the directory holding the executable when dir is empty.
func resolveBaseDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Dir(exe), nil
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
