package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
)

func TestAutomated_GetMove_RedisCache(t *testing.T) {
	ctx, st := suite.New(t)

	positions := repository.NewPositionRepository(st.Storage, time.Minute)

	// Given: a bot backed by the Redis position cache
	bot := NewAutomated(st.Logger, entity.O, positions)
	board := boardOf(entity.X, entity.X, entity.Empty, entity.O, entity.O)

	// When: the bot moves
	cell, err := bot.GetMove(ctx, board)
	require.NoError(t, err)

	// Then: the searched result is cached with the configured lifetime
	assert.Equal(t, 5, cell)

	cached, err := positions.GetByBoard(ctx, board, entity.O)
	require.NoError(t, err)
	assert.Equal(t, minimax.Result{Position: 5, Score: 5}, cached)

	ttl, err := st.Storage.TTL(ctx, "position:XX-OO----:O").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)

	t.Run("A second bot reuses the cached move", func(t *testing.T) {
		other := NewAutomated(st.Logger, entity.O, positions)

		again, err := other.GetMove(ctx, board)

		require.NoError(t, err)
		assert.Equal(t, cell, again)
	})
}
