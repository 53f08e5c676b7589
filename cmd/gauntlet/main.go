// Package main plays headless games of the gauntlet with autopilot players
// and logs who won.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/KirkDiggler/gauntlet/internal/common/clock"
	"github.com/KirkDiggler/gauntlet/internal/common/uuid"
	"github.com/KirkDiggler/gauntlet/internal/config"
	"github.com/KirkDiggler/gauntlet/internal/dice"
	"github.com/KirkDiggler/gauntlet/internal/handlers/autopilot"
	"github.com/KirkDiggler/gauntlet/internal/models"
	"github.com/KirkDiggler/gauntlet/internal/observability"
	gameRepo "github.com/KirkDiggler/gauntlet/internal/repositories/game"
	gameService "github.com/KirkDiggler/gauntlet/internal/services/game"
	"github.com/KirkDiggler/gauntlet/internal/victory"
)

func main() {
	configPath := flag.String("config", "", "path to an optional YAML configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging, cfg.Game.Seed)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	random := dice.New(&dice.Config{Seed: cfg.Game.Seed})

	svc, err := gameService.New(&gameService.Config{
		Repository:    gameRepo.NewMemory(),
		DiceRoller:    dice.NewLoggedRoller(random, logger.Named("dice")),
		DeckSource:    random,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		Logger:        logger.Named("game"),
	})
	if err != nil {
		logger.Fatal("creating game service", zap.Error(err))
	}

	pilot, err := autopilot.New(&autopilot.Config{
		GameService:     svc,
		Logger:          logger.Named("autopilot"),
		EscapeThreshold: cfg.Autopilot.EscapeThreshold,
		BetAmount:       cfg.Autopilot.BetAmount,
		MaxTurns:        cfg.Game.MaxTurns,
	})
	if err != nil {
		logger.Fatal("creating autopilot", zap.Error(err))
	}

	logger.Info("starting gauntlet",
		zap.Strings("players", cfg.Game.Players),
		zap.Int("rounds", cfg.Game.Rounds),
		zap.Int64("seed", cfg.Game.Seed))

	wins := make(map[string]int)
	finished, totalTurns := 0, 0
	for round := 1; round <= cfg.Game.Rounds; round++ {
		res, err := pilot.PlayGame(ctx, cfg.Game.Players)
		if err != nil {
			logger.Fatal("playing game", zap.Int("round", round), zap.Error(err))
		}
		totalTurns += res.Turns
		if res.Finished {
			finished++
			logResult(logger, round, res, wins)
		}
		if err := pilot.Discard(ctx, res.State.ID); err != nil {
			logger.Warn("discarding game", zap.Int("round", round), zap.Error(err))
		}
	}

	fields := []zap.Field{
		zap.Int("rounds", cfg.Game.Rounds),
		zap.Int("finished", finished),
		zap.Int("total_turns", totalTurns),
	}
	for _, name := range cfg.Game.Players {
		fields = append(fields, zap.Int("wins."+name, wins[name]))
	}
	logger.Info("summary", fields...)
}

// logResult counts the winners of a finished game and logs the standings
func logResult(logger *zap.Logger, round int, res *autopilot.GameResult, wins map[string]int) {
	names := winnerNames(res.State)
	for _, name := range names {
		wins[name]++
	}
	logger.Info("game over",
		zap.Int("round", round),
		zap.Int("turns", res.Turns),
		zap.Strings("winners", names),
		zap.Bool("shared", len(names) > 1))

	for rank, p := range victory.Standings(res.State.Players, res.State.DamageLeaderID) {
		logger.Debug("standing",
			zap.Int("round", round),
			zap.Int("rank", rank+1),
			zap.String("player", p.Name),
			zap.Int("victory_points", victory.Effective(p, res.State.DamageLeaderID)),
			zap.Int("gold", p.Gold),
			zap.Int("damage", p.DamageCount))
	}
}

func winnerNames(state *models.GameState) []string {
	names := make([]string, 0, len(state.WinnerIDs))
	for _, id := range state.WinnerIDs {
		if p, ok := state.PlayerByID(id); ok {
			names = append(names, p.Name)
		}
	}
	return names
}
