package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/coreman2200/hangarbay/internal/app"
	"github.com/coreman2200/hangarbay/internal/asset"
	"github.com/coreman2200/hangarbay/internal/config"
	"github.com/coreman2200/hangarbay/internal/driver/fake"
	"github.com/coreman2200/hangarbay/internal/metrics"
	"github.com/coreman2200/hangarbay/internal/render"
	"github.com/coreman2200/hangarbay/internal/ws"
)

func main() {
	// flags stay usable; config.yaml overrides them where set
	var (
		addr       = flag.String("addr", ":8080", "HTTP listen address")
		fps        = flag.Int("fps", 60, "target frames per second")
		driver     = flag.String("driver", "none", "extra driver: none | console")
		every      = flag.Int("every", 60, "console driver prints every Nth frame")
		manifest   = flag.String("assets", "", "asset manifest (YAML); built-in keys when empty")
		policy     = flag.String("indicator", "", "emergency light policy: first_line | all_lines")
		throttle   = flag.Duration("ws-throttle", 50*time.Millisecond, "minimum interval between /ws frames")
		withCalls  = flag.Bool("ws-calls", false, "include the draw list in /ws frames")
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		writeCfg   = flag.Bool("write-config", false, "write the effective config to -config and exit")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg := config.Default()
	if c, err := config.Load(*configPath); err != nil {
		if errors.Is(err, config.ErrInvalid) {
			log.Fatal().Err(err).Str("path", *configPath).Msg("config rejected")
		}
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
	} else {
		cfg = c
	}

	// flags fill whatever the file left at its default
	def := config.Default()
	cfg.Listen = firstNonDefault(cfg.Listen, def.Listen, *addr)
	cfg.FPS = firstNonDefault(cfg.FPS, def.FPS, *fps)
	cfg.Driver = firstNonDefault(cfg.Driver, def.Driver, *driver)
	cfg.AssetManifest = firstNonDefault(cfg.AssetManifest, def.AssetManifest, *manifest)
	cfg.IndicatorPolicy = firstNonDefault(cfg.IndicatorPolicy, def.IndicatorPolicy, *policy)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}

	if *writeCfg {
		if err := config.Save(*configPath, cfg); err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("write config")
		}
		log.Info().Str("path", *configPath).Msg("config written")
		return
	}

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level; using info")
	}

	store := asset.Default()
	if cfg.AssetManifest != "" {
		s, err := asset.LoadManifest(cfg.AssetManifest)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.AssetManifest).Msg("asset manifest")
		}
		store = s
	}

	col, err := metrics.New(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("metrics")
	}

	// the hub needs the core for control and the core needs the hub as a
	// driver, so the controller is bound after InitCore
	hub := ws.NewHub(nil, nil, log.Logger.With().Str("component", "ws").Logger())
	hub.Throttle = *throttle
	hub.IncludeCalls = *withCalls

	drivers := render.MultiDriver{hub}
	if cfg.Driver == "console" {
		drivers = append(drivers, fake.New(os.Stdout, *every))
	}

	core, err := app.InitCore(app.Options{
		Scene:    cfg.Scene(),
		Assets:   store,
		Driver:   drivers,
		FPS:      cfg.FPS,
		MaxDelta: cfg.MaxDelta,
		Log:      log.Logger.With().Str("component", "core").Logger(),
		Metrics:  col,
		Diag:     hub.Diag,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init")
	}
	hub.Ctl = core
	hub.Snapshot = core.Scene.Snapshot

	mux := http.NewServeMux()
	hub.Routes(mux)
	mux.Handle("/metrics", col.Handler())

	srv := &http.Server{
		Addr:         cfg.Listen,
		Handler:      withCORS(mux),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return core.Run(ctx) })
	g.Go(func() error {
		log.Info().Str("addr", cfg.Listen).Str("driver", cfg.Driver).Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		h.ServeHTTP(w, r)
	})
}

func firstNonDefault[T comparable](v, def, flagVal T) T {
	if v != def {
		return v
	}
	return flagVal
}
