package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/hangarbay/internal/app"
	"github.com/coreman2200/hangarbay/internal/config"
	diag "github.com/coreman2200/hangarbay/internal/diagnostics"
	"github.com/coreman2200/hangarbay/internal/drill"
	"github.com/coreman2200/hangarbay/internal/driver/fake"
	"github.com/coreman2200/hangarbay/internal/input"
)

func main() {
	var (
		configPath = flag.String("config", "", "optional config.yaml")
		drillName  = flag.String("drill", "cycle", "drill: none | cycle | reverse")
		command    = flag.String("command", "", "single command instead of a drill, e.g. open_all")
		reverse    = flag.Int("reverse-after", 20, "frames before a reverse drill closes")
		dt         = flag.Float64("dt", 0.03, "fixed frame delta in seconds")
		maxFrames  = flag.Int("frames", 5000, "stop after this many frames")
		every      = flag.Int("every", 10, "print every Nth frame")
		policy     = flag.String("indicator", "", "emergency light policy: first_line | all_lines")
		dump       = flag.Bool("json", false, "print the final scene snapshot as JSON")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg := config.Default()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("config")
		}
		cfg = c
	}
	if *policy != "" {
		cfg.IndicatorPolicy = *policy
	}
	// a batch run has no starfield to look at
	cfg.Stars.Count = 0

	core, err := app.InitCore(app.Options{
		Scene:  cfg.Scene(),
		Driver: fake.New(os.Stdout, *every),
		Log:    log.Logger,
		Diag: func(d diag.Diagnostic) {
			fmt.Printf("[%s] %s %s\n", d.Code, d.Summary, d.Detail)
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init")
	}

	// leave edit mode so the run mirrors a live session
	core.Command(input.ToggleEdit)

	switch {
	case *command != "":
		c, err := input.ParseCommand(*command)
		if err != nil {
			log.Fatal().Err(err).Msg("command")
		}
		core.Command(c)
	case *drillName != "none":
		k, err := drill.ParseKind(*drillName)
		if err != nil {
			log.Fatal().Err(err).Msg("drill")
		}
		if err := core.RunDrill(drill.Plan{Kind: k, ReverseAfter: *reverse, MaxFrames: *maxFrames}); err != nil {
			log.Fatal().Err(err).Msg("drill")
		}
	}

	frames := 0
	for frames < *maxFrames {
		if _, err := core.Step(float32(*dt)); err != nil {
			log.Error().Err(err).Msg("step")
		}
		frames++
		if !core.DrillRunning() && core.Scene.Idle() {
			break
		}
	}
	fmt.Printf("done after %d frames (%.2fs simulated)\n", frames, float64(frames)**dt)

	if *dump {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(core.Scene.Snapshot()); err != nil {
			log.Fatal().Err(err).Msg("snapshot")
		}
	}
}
