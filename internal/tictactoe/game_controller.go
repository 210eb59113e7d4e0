package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type MoveReader interface {
	ReadLegalMove(board *entity.Board) (entity.Position, error)
}

type GameView interface {
	ShowBoard(board *entity.Board)
	ShowMove(board *entity.Board)
	ShowTurn(player entity.Player)
	ShowWinner(player entity.Player)
	ShowDraw()
	ShowScore(score *entity.Score)
}

// ResultRecorder keeps a tally of finished games.
type ResultRecorder interface {
	Record(ctx context.Context, game *entity.Game) (*entity.Score, error)
}

type GameController struct {
	logger *slog.Logger

	moves    MoveReader
	view     GameView
	recorder ResultRecorder
}

// NewGameController builds the game loop. recorder may be nil.
func NewGameController(logger *slog.Logger, moves MoveReader, view GameView, recorder ResultRecorder) *GameController {
	return &GameController{
		logger:   logger.With("component", "game_controller"),
		moves:    moves,
		view:     view,
		recorder: recorder,
	}
}

// Run plays one game to the end and returns it in its terminal state.
// The only error is a move that could not be read.
func (that *GameController) Run(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame()
	log := that.logger.With("gameID", game.ID)

	log.Info("game started")
	that.view.ShowBoard(&game.Board)

	for !game.IsFinished() {
		that.view.ShowTurn(game.Turn)

		pos, err := that.moves.ReadLegalMove(&game.Board)
		if err != nil {
			return game, fmt.Errorf("could not read move of %s: %w", game.Turn, err)
		}

		player := game.Turn
		if err = MakeTurn(game, pos); err != nil {
			// the reader guarantees an empty cell, so this is a bug
			return game, fmt.Errorf("failed to make turn: %w", err)
		}

		log.Debug("move accepted", "player", player.No, "row", pos.Row, "col", pos.Col, "moves", game.Moves)
		that.view.ShowMove(&game.Board)
	}

	if game.IsWon() {
		that.view.ShowWinner(*game.Winner)
		log.Info("game won", "winner", game.Winner.No, "moves", game.Moves)
	} else {
		that.view.ShowDraw()
		log.Info("game drawn", "moves", game.Moves)
	}

	that.recordResult(ctx, log, game)

	return game, nil
}

func (that *GameController) recordResult(ctx context.Context, log *slog.Logger, game *entity.Game) {
	if that.recorder == nil {
		return
	}

	score, err := that.recorder.Record(ctx, game)
	if err != nil {
		log.Error("could not record game result", "error", err)
		return
	}

	that.view.ShowScore(score)
}
