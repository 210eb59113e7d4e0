package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/transport/console"
)

// RunApp - plays one game on the console. A won or drawn game returns nil.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var recorder tictactoe.ResultRecorder
	if conf.Scoreboard.Enabled {
		redisAddr := conf.Redis.GetRedisAddr()

		redisStorage, err := storage.New(ctx, redisAddr)
		if err != nil {
			log.Warn("scoreboard is disabled, could not connect to redis storage", "addr", redisAddr, "error", err)
		} else {
			defer func() {
				if err = redisStorage.Close(); err != nil {
					log.Error("could not close redis storage", "error", err)
				}
			}()

			recorder = repository.NewScoreRepository(redisStorage)
		}
	}

	gameConsole := console.New(logger, in, out)
	gameController := tictactoe.NewGameController(logger, gameConsole, gameConsole, recorder)

	game, err := gameController.Run(ctx)
	if err != nil {
		return fmt.Errorf("game %s aborted: %w", game.ID, err)
	}

	log.Debug("game over", "gameID", game.ID, "status", game.Status)

	return nil
}
