package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	player1ScoreKey = "score:player1"
	player2ScoreKey = "score:player2"
	drawScoreKey    = "score:draw"
	lastGameKey     = "score:last-game"
)

var (
	ErrGameNotFinished  = errors.New("game is not finished")
	ErrMalformedCounter = errors.New("malformed score counter")
)

type ScoreRepository interface {
	Record(ctx context.Context, game *entity.Game) (*entity.Score, error)
	Get(ctx context.Context) (*entity.Score, error)
	LastGameID(ctx context.Context) (string, error)
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

// Record - adds a finished game to the tally and returns the updated score.
func (that *dbScore) Record(ctx context.Context, game *entity.Game) (*entity.Score, error) {
	key, err := scoreKey(game)
	if err != nil {
		return nil, err
	}

	var counters [3]*redis.IntCmd
	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		pipe.Set(ctx, lastGameKey, game.ID, 0)
		// incrementing by zero reads every counter inside the same transaction
		counters = [3]*redis.IntCmd{
			pipe.IncrBy(ctx, player1ScoreKey, 0),
			pipe.IncrBy(ctx, player2ScoreKey, 0),
			pipe.IncrBy(ctx, drawScoreKey, 0),
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record game result: %w", err)
	}

	return &entity.Score{
		Player1: counters[0].Val(),
		Player2: counters[1].Val(),
		Draws:   counters[2].Val(),
	}, nil
}

func (that *dbScore) Get(ctx context.Context) (*entity.Score, error) {
	values, err := that.client.MGet(ctx, player1ScoreKey, player2ScoreKey, drawScoreKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	counts := make([]int64, len(values))
	for i, value := range values {
		if value == nil {
			continue
		}

		raw, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrMalformedCounter, value)
		}

		if counts[i], err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedCounter, err)
		}
	}

	return &entity.Score{
		Player1: counts[0],
		Player2: counts[1],
		Draws:   counts[2],
	}, nil
}

// LastGameID - returns the id of the most recently recorded game, or "" if none.
func (that *dbScore) LastGameID(ctx context.Context) (string, error) {
	id, err := that.client.Get(ctx, lastGameKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get last game id: %w", err)
	}

	return id, nil
}

func scoreKey(game *entity.Game) (string, error) {
	switch {
	case game.IsDraw():
		return drawScoreKey, nil
	case game.IsWon() && game.Winner != nil && *game.Winner == entity.Player1:
		return player1ScoreKey, nil
	case game.IsWon() && game.Winner != nil && *game.Winner == entity.Player2:
		return player2ScoreKey, nil
	default:
		return "", fmt.Errorf("%w: status %s", ErrGameNotFinished, game.Status)
	}
}
