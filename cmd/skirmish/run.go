package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dmfed/skirmish/internal/sim"
	"github.com/dmfed/skirmish/internal/storage"
)

var (
	flagFrames int
	flagSave   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a battle headless and print the final digest",
	Long: `Simulate a battle without a UI and print the final-state digest.

The digest is a stable summary of the surviving armies. Two runs with
the same seed and scenario always print the same digest, so the command
doubles as a determinism check: save results with --save and the run
warns when a digest for the same seed diverges from history.

Examples:
  skirmish run --seed 42
  skirmish run --scenario crowded --frames 9000
  skirmish run --seed 42 --save`,
	Run: runHeadless,
}

func init() {
	runCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of fixed ticks to simulate")
	runCmd.Flags().BoolVar(&flagSave, "save", false, "Record the result in the match database")
}

func runHeadless(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skirmish",
	})

	cfg, label, err := loadScenario()
	if err != nil {
		logger.Fatal("cannot load scenario", "error", err)
	}

	params, board, control := cfg.ToSim()
	world, err := sim.New(params, board, control)
	if err != nil {
		logger.Fatal("cannot create world", "error", err)
	}

	logger.Info("running battle",
		"scenario", label,
		"seed", params.Seed,
		"players", board.Players,
		"frames", flagFrames,
	)

	started := time.Now()
	step := time.Duration(float64(time.Second) * params.FixedDelta)
	for i := 0; i < flagFrames; i++ {
		world.Advance(step, sim.CommandBatch{})
	}
	elapsed := time.Since(started)

	digest := world.Digest()
	logger.Info("battle finished",
		"ticks", world.Tick(),
		"elapsed", elapsed.Round(time.Millisecond),
		"units", len(world.Units()),
	)
	fmt.Println(digest)

	if !flagSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("cannot open match database", "error", err)
	}
	defer store.Close()

	previous, err := store.DigestsForSeed(label, params.Seed, 1)
	if err != nil {
		logger.Warn("cannot read digest history", "error", err)
	}
	if len(previous) > 0 && previous[0] != digest {
		logger.Warn("digest differs from the last recorded run for this seed",
			"recorded", previous[0],
			"current", digest,
		)
	}

	rec := headlessRecord(world, label, elapsed)
	id, err := store.SaveMatch(rec)
	if err != nil {
		logger.Fatal("cannot save match", "error", err)
	}
	logger.Info("match recorded", "id", id)
}

// headlessRecord snapshots a finished headless run for storage.
func headlessRecord(w *sim.World, scenario string, elapsed time.Duration) storage.MatchRecord {
	centroids := w.PlayerCentroids()

	winner := -1
	survivors := 0
	for _, c := range centroids {
		if c.Alive > 0 {
			survivors++
			winner = int(c.Player)
		}
	}
	reason := "timeout"
	if survivors == 1 {
		reason = "completed"
	} else {
		winner = -1
	}

	standings := make([]storage.PlayerStanding, len(centroids))
	for i, c := range centroids {
		standings[i] = storage.PlayerStanding{
			Player: int(c.Player),
			Alive:  c.Alive,
			X:      c.X,
			Y:      c.Y,
		}
	}

	return storage.MatchRecord{
		Scenario:      scenario,
		Seed:          w.Seed(),
		Players:       w.Players(),
		BoardSize:     w.BoardSize(),
		SpawnInterval: w.SpawnInterval(),
		Ticks:         w.Tick(),
		Duration:      int(elapsed.Seconds()),
		Digest:        w.Digest(),
		Winner:        winner,
		EndReason:     reason,
		Standings:     standings,
	}
}
