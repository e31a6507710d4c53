// Command dominion runs the treasury-allocation simulation: a hex world,
// a handful of AI polities, and one budget decision cycle per polity per
// loop iteration.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/talgya/dominion/internal/persistence"
	"github.com/talgya/dominion/internal/ruleset"
	"github.com/talgya/dominion/internal/sim"
	"github.com/talgya/dominion/internal/world"
)

func main() {
	var (
		seed        = flag.Int64("seed", 42, "world generation seed")
		cycles      = flag.Uint64("cycles", 50, "decision cycles to run (0 = until interrupted)")
		dbPath      = flag.String("db", "data/dominion.db", "sqlite database path")
		rulesetPath = flag.String("ruleset", "", "optional YAML ruleset override")
		numMajors   = flag.Int("majors", 4, "major AI polities")
		numMinors   = flag.Int("minors", 3, "minor city-states")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("DOMINION — treasury allocation simulation", "seed", *seed)

	// ── Ruleset ───────────────────────────────────────────────────────
	rules := ruleset.Default()
	if *rulesetPath != "" {
		var err error
		rules, err = ruleset.Load(*rulesetPath)
		if err != nil {
			slog.Error("failed to load ruleset", "path", *rulesetPath, "error", err)
			os.Exit(1)
		}
		slog.Info("ruleset loaded", "path", *rulesetPath)
	}

	// ── Database ──────────────────────────────────────────────────────
	os.MkdirAll("data", 0755)
	db, err := persistence.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", *dbPath)

	// ── World Map (deterministic from seed) ───────────────────────────
	slog.Info("generating world map...")
	cfg := world.DefaultGenConfig()
	cfg.Seed = *seed
	worldMap := world.Generate(cfg)

	for t, c := range world.TerrainCounts(worldMap) {
		slog.Info("terrain", "type", world.TerrainName(t), "count", c)
	}

	// ── Polities ──────────────────────────────────────────────────────
	polities := seedPolities(worldMap, rules, *seed, *numMajors, *numMinors)
	for _, p := range polities {
		slog.Info("polity founded",
			"name", p.Name,
			"kind", p.Kind,
			"persona", p.Persona,
			"treasury", humanize.Comma(p.Treasury),
			"settlements", len(p.Settlements),
			"units", len(p.Units),
		)
	}

	// ── Simulation ────────────────────────────────────────────────────
	simulation := sim.NewSimulation(worldMap, rules, polities)

	loop := sim.NewLoop()
	loop.Interval = 200 * time.Millisecond
	loop.MaxCycles = *cycles
	loop.OnCycle = func(cycle uint64) {
		simulation.RunCycle(cycle)
		if err := db.SaveCycle(simulation); err != nil {
			slog.Error("cycle save failed", "cycle", cycle, "error", err)
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		loop.Stop()
	}()

	fmt.Printf("\nDominion: %d polities on %d parcels. Running %d cycles...\n",
		len(polities), worldMap.ParcelCount(), *cycles)

	loop.Run()

	// ── Summary ───────────────────────────────────────────────────────
	rows, err := db.SpendByCategory()
	if err != nil {
		slog.Error("summary query failed", "error", err)
		return
	}
	nameByID := make(map[uint64]string, len(polities))
	for _, p := range polities {
		nameByID[uint64(p.ID)] = p.Name
	}
	fmt.Println("\nSpend by category:")
	for _, row := range rows {
		fmt.Printf("  %-14s %-14s %8s crowns over %d purchases\n",
			nameByID[row.PolityID], row.Category, humanize.Comma(row.Total), row.Count)
	}
}
