package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/courtship/config"
	"github.com/pthm-cable/courtship/game"
	"github.com/pthm-cable/courtship/sim"
	"github.com/pthm-cable/courtship/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output per-day stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = config seed, then time-based)")
	days := flag.Int("days", 0, "Number of days to simulate (0 = use config)")
	strictApp := flag.Bool("strict-app", false, "App population only pairs agents who met at university")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *days > 0 {
		cfg.Run.TotalDays = *days
	}
	if *strictApp {
		cfg.Pairing.StrictApp = true
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = cfg.Run.Seed
	}
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	cfg.Run.Seed = rngSeed

	driver, err := sim.NewDriver(cfg, rngSeed)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	rec := &recorder{
		output:    output,
		perf:      driver.Perf(),
		bookmarks: telemetry.NewBookmarkDetector(cfg.Telemetry.BookmarkHistory),
		logStats:  *logStats,
		logEvery:  cfg.Telemetry.LogEvery,
	}

	slog.Info("starting simulation",
		"seed", rngSeed,
		"agents", cfg.Population.TotalAgents,
		"days", cfg.Run.TotalDays,
		"initial_pairs", cfg.Derived.InitialPairs,
		"strict_app", cfg.Pairing.StrictApp,
		"headless", *headless,
	)

	if *headless {
		for {
			frame, ok := driver.Step()
			if !ok {
				break
			}
			rec.onFrame(frame)
		}
	} else {
		rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Courtship: no app vs app")
		defer rl.CloseWindow()

		rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

		g := game.NewGame(driver, game.Options{
			Width:         cfg.Screen.Width,
			Height:        cfg.Screen.Height,
			DaysPerSecond: cfg.Screen.DaysPerSecond,
			OnFrame:       rec.onFrame,
		})

		for !rl.WindowShouldClose() {
			g.Update(rl.GetFrameTime())
			g.Draw()
		}
	}

	rec.finish(driver)
}

// recorder forwards each simulated day to logs and output files.
type recorder struct {
	output    *telemetry.OutputManager
	perf      *telemetry.PerfCollector
	bookmarks *telemetry.BookmarkDetector
	logStats  bool
	logEvery  int
	last      sim.Frame
	seen      bool
}

func (r *recorder) onFrame(frame sim.Frame) {
	r.last, r.seen = frame, true

	if err := r.output.WriteDay(frame.Stats); err != nil {
		slog.Error("failed to write history", "day", frame.Day, "error", err)
	}

	if r.logEvery <= 1 || frame.Day%r.logEvery == 0 {
		perfStats := r.perf.Stats()
		if r.logStats {
			frame.Stats.LogStats()
			perfStats.LogStats()
		}
		if err := r.output.WritePerf(perfStats, frame.Day); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}

	for _, bm := range r.bookmarks.Check(frame.Stats) {
		if r.logStats {
			bm.LogBookmark()
		}
		if err := r.output.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}

func (r *recorder) finish(d *sim.Driver) {
	noApp, app := d.Histories()
	slog.Info("run complete",
		"days", d.Day(),
		"seed", d.Seed(),
		"noapp", telemetry.Summarize(noApp),
		"app", telemetry.Summarize(app),
	)

	if !r.seen {
		return
	}
	records := append(r.last.NoApp.Records(sim.LabelNoApp), r.last.App.Records(sim.LabelApp)...)
	if err := r.output.WriteAgents(records); err != nil {
		slog.Error("failed to write agents", "error", err)
	}
}
