// Package objectives parses objectives command flags and runs the
// replay/settlement tooling: list catalog levels, describe a level's
// objectives, seed the store from the catalog, or replay a recorded
// session and settle it.
package objectives

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/chess"
	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/objective"
	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/objective/catalog"
	entrypoint "github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/platform/cmd"
	apperrors "github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/platform/errors"
	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/storage"
	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/storage/sqlite"
	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/telemetry"
)

// Config holds objectives command configuration.
type Config struct {
	StoragePath string `env:"DICE_CHESS_OBJECTIVES_DB" envDefault:"objectives.db"`

	ListLevels  bool
	Describe    bool
	Seed        bool
	LevelID     string
	Difficulty  string
	SessionFile string
	DryRun      bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.StoragePath, "db", cfg.StoragePath, "objectives database path")
	fs.BoolVar(&cfg.ListLevels, "list-levels", false, "list catalog levels")
	fs.BoolVar(&cfg.Describe, "describe", false, "print a level's objectives")
	fs.BoolVar(&cfg.Seed, "seed", false, "load the embedded catalog into the database")
	fs.StringVar(&cfg.LevelID, "level", "", "level id for -describe")
	fs.StringVar(&cfg.Difficulty, "difficulty", "", "difficulty for -describe (easy, normal, hard)")
	fs.StringVar(&cfg.SessionFile, "session", "", "replay a recorded session log (JSON file)")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "replay without persisting the settlement")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the objectives command.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceObjectives, func(ctx context.Context) error {
		switch {
		case cfg.ListLevels:
			return runListLevels(out)
		case cfg.Describe:
			return runDescribe(cfg, out)
		case cfg.Seed:
			return runSeed(ctx, cfg, out)
		case strings.TrimSpace(cfg.SessionFile) != "":
			return runReplay(ctx, cfg, out)
		default:
			return errors.New("nothing to do: pass -list-levels, -describe, -seed or -session")
		}
	})
}

func runListLevels(out io.Writer) error {
	levels, err := catalog.Levels()
	if err != nil {
		return err
	}
	for _, level := range levels {
		fmt.Fprintln(out, level)
	}
	return nil
}

func runDescribe(cfg Config, out io.Writer) error {
	levelID := strings.TrimSpace(cfg.LevelID)
	if levelID == "" {
		return errors.New("-describe requires -level")
	}
	defs, err := catalog.LevelObjectives(levelID)
	if err != nil {
		return err
	}

	difficulty := chess.Difficulty(strings.TrimSpace(cfg.Difficulty))
	fmt.Fprintf(out, "%s (%d objectives)\n", levelID, len(defs))
	for _, def := range defs {
		text := objective.Describe(def, nil, difficulty, nil)
		fmt.Fprintf(out, "  %-24s %s  [+%d]\n", def.ID, text, objective.RewardFor(def, difficulty))
	}
	return nil
}

func runSeed(ctx context.Context, cfg Config, out io.Writer) error {
	store, err := sqlite.Open(cfg.StoragePath)
	if err != nil {
		return err
	}
	defer store.Close()

	levels, err := catalog.Levels()
	if err != nil {
		return err
	}
	for _, level := range levels {
		defs, err := catalog.LevelObjectives(level)
		if err != nil {
			return err
		}
		if err := store.PutLevelDefinitions(ctx, level, defs); err != nil {
			return fmt.Errorf("seed level %s: %w", level, err)
		}
		fmt.Fprintf(out, "seeded %s (%d objectives)\n", level, len(defs))
	}
	return nil
}

func runReplay(ctx context.Context, cfg Config, out io.Writer) error {
	file, err := os.Open(cfg.SessionFile)
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}
	defer file.Close()

	log, err := objective.DecodeSessionLog(file)
	if err != nil {
		return err
	}
	if strings.TrimSpace(log.SessionID) == "" {
		return apperrors.New(apperrors.CodeSettlementEmptySessionID, "session log has no session id")
	}
	if strings.TrimSpace(log.LevelID) == "" {
		return apperrors.New(apperrors.CodeSettlementEmptyLevelID, "session log has no level id")
	}

	var store *sqlite.Store
	if !cfg.DryRun {
		store, err = sqlite.Open(cfg.StoragePath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	defs, err := loadDefinitions(ctx, store, log.LevelID)
	if err != nil {
		return err
	}

	var notifier objective.Notifier
	if store != nil {
		notifier = telemetry.NewEmitter(store, log.SessionID)
	}

	tracking, states, err := objective.Replay(defs, log, nil, notifier)
	if err != nil {
		return err
	}
	bonus := objective.Bonus(defs, states, tracking.Difficulty())

	printSettlement(out, log, defs, states, tracking, bonus)

	if store == nil {
		return nil
	}
	settlement := storage.Settlement{
		SessionID:  log.SessionID,
		LevelID:    log.LevelID,
		Difficulty: log.Difficulty,
		Bonus:      bonus,
	}
	for _, state := range states {
		settlement.States = append(settlement.States, *state)
	}
	if err := store.SaveSettlement(ctx, settlement); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return apperrors.WithMetadata(
				apperrors.CodeSessionAlreadySettled,
				fmt.Sprintf("session %s is already settled", log.SessionID),
				map[string]string{"SessionID": log.SessionID},
			)
		}
		return err
	}
	fmt.Fprintf(out, "settlement saved for %s\n", log.SessionID)
	return nil
}

// loadDefinitions prefers the store's authored definitions and falls
// back to the embedded catalog.
func loadDefinitions(ctx context.Context, store *sqlite.Store, levelID string) ([]objective.Definition, error) {
	if store != nil {
		defs, err := store.LevelDefinitions(ctx, levelID)
		if err == nil {
			return defs, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
	}
	return catalog.LevelObjectives(levelID)
}

func printSettlement(out io.Writer, log objective.SessionLog, defs []objective.Definition, states []*objective.State, tracking *objective.Tracking, bonus int) {
	byID := make(map[string]*objective.State, len(states))
	for _, state := range states {
		byID[state.ID] = state
	}

	fmt.Fprintf(out, "session %s on %s (%d turns)\n", log.SessionID, log.LevelID, tracking.Turn())
	for _, def := range defs {
		state := byID[def.ID]
		status := "pending"
		switch {
		case state.Completed:
			status = fmt.Sprintf("completed on turn %d", derefTurn(state.CompletedTurn))
		case state.Failed:
			status = fmt.Sprintf("failed on turn %d", derefTurn(state.FailedTurn))
		}
		text := objective.Describe(def, state, tracking.Difficulty(), nil)
		fmt.Fprintf(out, "  %-24s %s [%s]\n", def.ID, text, status)
	}
	fmt.Fprintf(out, "bonus: %d\n", bonus)
}

func derefTurn(turn *int) int {
	if turn == nil {
		return 0
	}
	return *turn
}
