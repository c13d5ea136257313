package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/woozymasta/maskmap/internal/config"
	"github.com/woozymasta/maskmap/internal/leaflet"
	"github.com/woozymasta/maskmap/internal/logger"
	"github.com/woozymasta/maskmap/internal/mapgen"
	"github.com/woozymasta/maskmap/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"   env:"CONFIG_FILE"      description:"Path to optional YAML configuration file"`
	Points     string `short:"x" long:"points"   env:"MASKMAP_POINTS"   description:"Spreadsheet with points" default:"points.xlsx"`
	Boundary   string `short:"b" long:"boundary" env:"MASKMAP_BOUNDARY" description:"GeoJSON with the country boundary" default:"japan_boundary.geojson"`
	Sheet      string `short:"s" long:"sheet"    env:"MASKMAP_SHEET"    description:"Spreadsheet sheet name (default: first sheet)"`
	Addr       string `short:"a" long:"addr"     env:"LISTEN_ADDRESS"   description:"Address to listen on" default:"0.0.0.0"`
	Port       int    `short:"p" long:"port"     env:"LISTEN_PORT"      description:"Port to listen on"    default:"8080"`
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

	// Setup Logging
	opts.Logger.Setup()

	// Load Config
	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigFile); err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
	}

	ds, err := mapgen.Load(mapgen.Inputs{
		PointsPath:   opts.Points,
		BoundaryPath: opts.Boundary,
		Sheet:        opts.Sheet,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load map data")
	}

	srvCtx, err := server.NewServerContext(
		mapgen.Build(cfg, ds),
		leaflet.RenderOptions{Title: cfg.Title, Minify: cfg.Minify})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to render map")
	}

	// Routes
	mux := http.NewServeMux()
	mux.HandleFunc("/api/map", srvCtx.HandleMap)
	mux.HandleFunc("/", srvCtx.HandleIndex)

	handler := server.RequestLogger(mux)

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	log.Info().
		Str("addr", listenAddr).
		Int("points", len(ds.Points)).
		Msg("Web server started")

	if err := http.ListenAndServe(listenAddr, handler); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
