package main

import (
	"flag"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/hangarbay/internal/app"
	"github.com/coreman2200/hangarbay/internal/config"
	"github.com/coreman2200/hangarbay/internal/tui"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		fps        = flag.Int("fps", 30, "terminal refresh rate")
		logPath    = flag.String("log", "", "write logs to this file; the terminal is taken by the UI")
		mouse      = flag.Bool("mouse", false, "mouse motion drives the camera")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	logger := zerolog.Nop()
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatal().Err(err).Str("path", *logPath).Msg("open log")
		}
		defer f.Close()
		logger = zerolog.New(f).With().Timestamp().Logger()
	}

	cfg := config.Default()
	if c, err := config.Load(*configPath); err == nil {
		cfg = c
	} else {
		logger.Warn().Err(err).Str("path", *configPath).Msg("config load failed; using defaults")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(lvl)
	}

	core, err := app.InitCore(app.Options{
		Scene:    cfg.Scene(),
		MaxDelta: cfg.MaxDelta,
		FPS:      *fps,
		Log:      logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init")
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if *mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	if _, err := tea.NewProgram(tui.New(core, *fps), opts...).Run(); err != nil {
		log.Fatal().Err(err).Msg("terminal ui")
	}
}
