package storage

import (
	"context"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/testing/suite"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Connects to a running redis", func(t *testing.T) {
		ctx, st := suite.New(t)

		client, err := New(ctx, st.Storage.Options().Addr)
		require.NoError(t, err)
		require.NoError(t, client.Close())
	})

	t.Run("Unreachable address", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		// nothing listens on port 1
		client, err := New(ctx, "127.0.0.1:1")

		require.Error(t, err)
		require.Nil(t, client)
	})
}
