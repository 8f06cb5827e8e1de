package service

import (
	"context"
	"testing"

	"pawnder/internal/database"
	"pawnder/internal/models"
	"pawnder/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type engine struct {
	db        *gorm.DB
	matches   *MatchService
	stats     *StatsService
	discovery *DiscoveryService
	blocks    *BlockService
}

func newTestEngine(t *testing.T) *engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	matchRepo := repository.NewMatchRepository(db)
	petRepo := repository.NewPetRepository(db)
	blockRepo := repository.NewBlockRepository(db)
	quotaRepo := repository.NewQuotaRepository(db)
	subs := NewSubscriptionSource(repository.NewSubscriptionRepository(db))
	chat := repository.NewChatActivityRepository(db)
	quota := NewQuotaService(quotaRepo, subs, nil, 10)

	return &engine{
		db:        db,
		matches:   NewMatchService(matchRepo, petRepo, blockRepo, quota),
		stats:     NewStatsService(matchRepo, petRepo, chat),
		discovery: NewDiscoveryService(petRepo, matchRepo, blockRepo, nil),
		blocks:    NewBlockService(blockRepo, repository.NewUserRepository(db)),
	}
}

func (e *engine) seedUserWithActivePet(t *testing.T, username string) (uint, uint) {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, e.db.Create(user).Error)
	pet := &models.Pet{UserID: user.ID, Name: username + "'s pet", Species: "dog", IsActive: true}
	require.NoError(t, e.db.Create(pet).Error)
	return user.ID, pet.ID
}

// Full lifecycle: like, reciprocal match, unmatch, re-like.
func TestEngineLikeMatchUnmatch(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	user1, petA := e.seedUserWithActivePet(t, "user1")
	user2, petB := e.seedUserWithActivePet(t, "user2")

	liked, err := e.matches.SendLike(ctx, user1, petA, user2, petB)
	require.NoError(t, err)
	assert.False(t, liked.IsMatch)
	assert.Equal(t, models.MatchStatusPending, liked.Status)

	// The reciprocal like flips the existing edge instead of adding one.
	matched, err := e.matches.SendLike(ctx, user2, petB, user1, petA)
	require.NoError(t, err)
	assert.True(t, matched.IsMatch)
	assert.Equal(t, liked.MatchID, matched.MatchID)
	assert.Equal(t, "It's a match!", matched.Message)

	stats, err := e.stats.GetStats(ctx, user1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Matches)

	unmatched, err := e.matches.RespondToLike(ctx, user1, matched.MatchID, "pass")
	require.NoError(t, err)
	assert.Equal(t, "Unmatched", unmatched.Message)

	stats, err = e.stats.GetStats(ctx, user1)
	require.NoError(t, err)
	assert.Zero(t, stats.Matches)

	// The soft-deleted edge no longer blocks a fresh like.
	again, err := e.matches.SendLike(ctx, user1, petA, user2, petB)
	require.NoError(t, err)
	assert.False(t, again.IsMatch)
	assert.NotEqual(t, matched.MatchID, again.MatchID)
}

func TestEngineRespondMatchFlow(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	user1, petA := e.seedUserWithActivePet(t, "sender")
	user2, petB := e.seedUserWithActivePet(t, "recipient")

	liked, err := e.matches.SendLike(ctx, user1, petA, user2, petB)
	require.NoError(t, err)

	likes, err := e.matches.GetLikesReceived(ctx, user2, 0)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, liked.MatchID, likes[0].ID)

	result, err := e.matches.RespondToLike(ctx, user2, liked.MatchID, "match")
	require.NoError(t, err)
	assert.True(t, result.IsMatch)

	// A second confirm finds no pending edge.
	_, err = e.matches.RespondToLike(ctx, user2, liked.MatchID, "match")
	requireAppError(t, err, "NOT_FOUND")
}

func TestEngineBlockSuppressesEverything(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	user1, petA := e.seedUserWithActivePet(t, "blocker")
	user2, petB := e.seedUserWithActivePet(t, "blocked")

	_, err := e.matches.SendLike(ctx, user2, petB, user1, petA)
	require.NoError(t, err)

	require.NoError(t, e.blocks.BlockUser(ctx, user1, user2))

	// The pending like disappears from the recipient's inbox.
	likes, err := e.matches.GetLikesReceived(ctx, user1, 0)
	require.NoError(t, err)
	assert.Empty(t, likes)

	stats, err := e.stats.GetStats(ctx, user1)
	require.NoError(t, err)
	assert.Zero(t, stats.Likes)

	// Neither side sees the other in discovery, in either direction.
	cands, err := e.discovery.GetCandidates(ctx, user1)
	require.NoError(t, err)
	assert.Empty(t, cands)
	cands, err = e.discovery.GetCandidates(ctx, user2)
	require.NoError(t, err)
	assert.Empty(t, cands)

	// New likes toward the blocked party are masked as not found.
	_, err = e.matches.SendLike(ctx, user1, petA, user2, petB)
	requireAppError(t, err, "NOT_FOUND")
}

func TestEngineDiscoveryExcludesLiked(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	user1, petA := e.seedUserWithActivePet(t, "viewer")
	user2, petB := e.seedUserWithActivePet(t, "seen")
	_, petC := e.seedUserWithActivePet(t, "fresh")

	cands, err := e.discovery.GetCandidates(ctx, user1)
	require.NoError(t, err)
	assert.Len(t, cands, 2)

	_, err = e.matches.SendLike(ctx, user1, petA, user2, petB)
	require.NoError(t, err)

	cands, err = e.discovery.GetCandidates(ctx, user1)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, petC, cands[0].ID)
}

func TestEngineQuotaAcrossServices(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	user1, petA := e.seedUserWithActivePet(t, "liker")

	var targets []struct{ userID, petID uint }
	for i := 0; i < 11; i++ {
		uid, pid := e.seedUserWithActivePet(t, "target"+string(rune('a'+i)))
		targets = append(targets, struct{ userID, petID uint }{uid, pid})
	}

	for i := 0; i < 10; i++ {
		_, err := e.matches.SendLike(ctx, user1, petA, targets[i].userID, targets[i].petID)
		require.NoError(t, err)
	}

	_, err := e.matches.SendLike(ctx, user1, petA, targets[10].userID, targets[10].petID)
	requireAppError(t, err, "QUOTA_EXCEEDED")
}
