package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/trade-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("  alice ", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "alice", user.ID)
		assert.Equal(t, int64(0), user.ReputationPoints)
		assert.False(t, user.Blocked)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Empty user ID", func(t *testing.T) {
		user, err := NewUser("   ", mockTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestUser_ApplyAward(t *testing.T) {
	created := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)

	testCases := []struct {
		name     string
		start    int64
		award    int
		expected int64
	}{
		{"Positive award", 5, 10, 15},
		{"Zero award", 7, 0, 7},
		{"Negative award above zero", 20, -5, 15},
		{"Negative award clamps at zero", 3, -10, 0},
		{"Award from zero", 0, 1, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockTime := coremocks.NewMockTimeProvider(t)
			mockTime.EXPECT().Now().Return(later).Once()

			user := &User{ID: "bob", ReputationPoints: tc.start, CreatedAt: created, UpdatedAt: created}
			user.ApplyAward(tc.award, mockTime)

			assert.Equal(t, tc.expected, user.ReputationPoints)
			assert.Equal(t, later, user.UpdatedAt)
			assert.Equal(t, created, user.CreatedAt)
		})
	}
}

func TestUser_SetBlocked(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Times(2)

	user := &User{ID: "carol"}
	assert.True(t, user.CanTrade())

	user.SetBlocked(true, mockTime)
	assert.True(t, user.Blocked)
	assert.False(t, user.CanTrade())

	user.SetBlocked(false, mockTime)
	assert.True(t, user.CanTrade())
	assert.Equal(t, fixedTime, user.UpdatedAt)
}

func TestUser_Clone(t *testing.T) {
	original := &User{ID: "dave", ReputationPoints: 42}
	clone := original.Clone()
	clone.ReputationPoints = 0

	assert.Equal(t, int64(42), original.ReputationPoints)
	assert.Equal(t, original.ID, clone.ID)
}

func TestClampReputation(t *testing.T) {
	assert.Equal(t, int64(0), ClampReputation(-1))
	assert.Equal(t, int64(0), ClampReputation(0))
	assert.Equal(t, int64(9), ClampReputation(9))
}
