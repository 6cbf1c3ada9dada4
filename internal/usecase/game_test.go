package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/player"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-minimax/mocks/usecase"
)

var errKeyboardUnplugged = errors.New("keyboard unplugged")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMockPlayer(t *testing.T, mark entity.Mark, cells ...int) *mockedUseCase.MockPlayer {
	t.Helper()

	mockPlayer := mockedUseCase.NewMockPlayer(t)
	mockPlayer.EXPECT().Mark().Return(mark).Maybe()

	for _, cell := range cells {
		mockPlayer.EXPECT().
			GetMove(mock.Anything, mock.AnythingOfType("entity.Board")).
			Return(cell, nil).
			Once()
	}

	return mockPlayer
}

func TestGameUseCase_Play(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays until a line is completed", func(t *testing.T) {
		// Given: X takes the top row while O plays the middle row
		playerX := newMockPlayer(t, entity.X, 0, 1, 2)
		playerO := newMockPlayer(t, entity.O, 3, 4)

		mockRenderer := mockedUseCase.NewMockrenderer(t)
		mockRenderer.EXPECT().GameStarted(mock.AnythingOfType("*entity.Game")).Return().Once()
		mockRenderer.EXPECT().TurnMade(mock.AnythingOfType("*entity.Game"), mock.AnythingOfType("entity.Move")).Return().Times(5)
		mockRenderer.EXPECT().GameFinished(mock.AnythingOfType("*entity.Game")).Return().Once()

		useCase := NewGameUseCase(discardLogger(), mockRenderer)

		// When: the game is played
		game, err := useCase.Play(ctx, playerX, playerO)

		// Then: X wins after five moves
		require.NoError(t, err)
		assert.True(t, game.IsWon())
		assert.Equal(t, entity.X, game.Winner)
		assert.Equal(t, []entity.Move{
			{Cell: 0, Mark: entity.X},
			{Cell: 3, Mark: entity.O},
			{Cell: 1, Mark: entity.X},
			{Cell: 4, Mark: entity.O},
			{Cell: 2, Mark: entity.X},
		}, game.Moves)

		_, err = uuid.Parse(game.ID)
		require.NoError(t, err)
	})

	t.Run("Re-requests a move on an occupied cell", func(t *testing.T) {
		// Given: O first tries to play on X's cell
		playerX := newMockPlayer(t, entity.X, 0, 1, 2)
		playerO := newMockPlayer(t, entity.O, 0, 9, 3, 4)

		var rendered []entity.Move

		mockRenderer := mockedUseCase.NewMockrenderer(t)
		mockRenderer.EXPECT().GameStarted(mock.Anything).Return().Once()
		mockRenderer.EXPECT().TurnMade(mock.Anything, mock.Anything).
			Run(func(_ *entity.Game, move entity.Move) {
				rendered = append(rendered, move)
			}).
			Return()
		mockRenderer.EXPECT().GameFinished(mock.Anything).Return().Once()

		useCase := NewGameUseCase(discardLogger(), mockRenderer)

		// When: the game is played
		game, err := useCase.Play(ctx, playerX, playerO)

		// Then: the rejected moves are neither applied nor rendered
		require.NoError(t, err)
		assert.Equal(t, entity.X, game.Winner)
		assert.Equal(t, game.Moves, rendered)
		assert.Equal(t, entity.O, game.Board.Cell(3))
	})

	t.Run("Ends in a draw when the board fills up", func(t *testing.T) {
		// Given: a sequence with no completed line
		//  X | O | X
		//  X | O | O
		//  O | X | X
		playerX := newMockPlayer(t, entity.X, 0, 2, 3, 7, 8)
		playerO := newMockPlayer(t, entity.O, 1, 4, 5, 6)

		mockRenderer := mockedUseCase.NewMockrenderer(t)
		mockRenderer.EXPECT().GameStarted(mock.Anything).Return().Once()
		mockRenderer.EXPECT().TurnMade(mock.Anything, mock.Anything).Return().Times(9)
		mockRenderer.EXPECT().GameFinished(mock.Anything).Return().Once()

		useCase := NewGameUseCase(discardLogger(), mockRenderer)

		// When: the game is played
		game, err := useCase.Play(ctx, playerX, playerO)

		// Then: nobody wins
		require.NoError(t, err)
		assert.True(t, game.IsDraw())
		assert.Equal(t, entity.Empty, game.Winner)
		assert.Equal(t, entity.Empty, game.Turn)
	})

	t.Run("Returns player errors with the unfinished game", func(t *testing.T) {
		// Given: O cannot provide a move
		playerX := newMockPlayer(t, entity.X, 4)
		playerO := newMockPlayer(t, entity.O)
		playerO.EXPECT().GetMove(mock.Anything, mock.Anything).Return(0, errKeyboardUnplugged).Once()

		mockRenderer := mockedUseCase.NewMockrenderer(t)
		mockRenderer.EXPECT().GameStarted(mock.Anything).Return().Once()
		mockRenderer.EXPECT().TurnMade(mock.Anything, mock.Anything).Return().Once()

		useCase := NewGameUseCase(discardLogger(), mockRenderer)

		// When: the game is played
		game, err := useCase.Play(ctx, playerX, playerO)

		// Then: the error surfaces and the game stays in progress
		require.ErrorIs(t, err, errKeyboardUnplugged)
		require.NotNil(t, game)
		assert.False(t, game.IsFinished())
		assert.Len(t, game.Moves, 1)
	})

	t.Run("Closed input ends the game", func(t *testing.T) {
		playerX := newMockPlayer(t, entity.X)
		playerX.EXPECT().GetMove(mock.Anything, mock.Anything).Return(0, apperror.ErrInputClosed).Once()
		playerO := newMockPlayer(t, entity.O)

		mockRenderer := mockedUseCase.NewMockrenderer(t)
		mockRenderer.EXPECT().GameStarted(mock.Anything).Return().Once()

		_, err := NewGameUseCase(discardLogger(), mockRenderer).Play(ctx, playerX, playerO)

		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})

	t.Run("Stops when the context is cancelled", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		playerX := newMockPlayer(t, entity.X)
		playerO := newMockPlayer(t, entity.O)

		mockRenderer := mockedUseCase.NewMockrenderer(t)
		mockRenderer.EXPECT().GameStarted(mock.Anything).Return().Once()

		_, err := NewGameUseCase(discardLogger(), mockRenderer).Play(cancelled, playerX, playerO)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Rejects players in the wrong seats", func(t *testing.T) {
		// Given: two players that both play X
		playerX := newMockPlayer(t, entity.X)
		playerO := newMockPlayer(t, entity.X)

		mockRenderer := mockedUseCase.NewMockrenderer(t)

		// When: the game is played
		game, err := NewGameUseCase(discardLogger(), mockRenderer).Play(ctx, playerX, playerO)

		// Then: nothing is started
		require.ErrorIs(t, err, ErrPlayerMarkMismatch)
		assert.Nil(t, game)
	})
}

func TestGameUseCase_Play_AutomatedPlayersDraw(t *testing.T) {
	ctx := context.Background()

	// Given: two search-driven players
	playerX := player.NewAutomated(discardLogger(), entity.X, nil)
	playerO := player.NewAutomated(discardLogger(), entity.O, nil)

	mockRenderer := mockedUseCase.NewMockrenderer(t)
	mockRenderer.EXPECT().GameStarted(mock.Anything).Return().Once()
	mockRenderer.EXPECT().TurnMade(mock.Anything, mock.Anything).Return().Times(9)
	mockRenderer.EXPECT().GameFinished(mock.Anything).Return().Once()

	// When: they play each other
	game, err := NewGameUseCase(discardLogger(), mockRenderer).Play(ctx, playerX, playerO)

	// Then: optimal play fills the board without a winner
	require.NoError(t, err)
	assert.True(t, game.IsDraw())
}
