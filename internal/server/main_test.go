package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"testing"

	"pawnder/internal/config"
	"pawnder/internal/database"
	"pawnder/internal/featureflags"
	"pawnder/internal/models"
	"pawnder/internal/repository"
	"pawnder/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testUserHeader = "X-Test-User"

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// newTestServer wires a Server against sqlite without Redis or the Prometheus
// middleware, which registers global collectors and must only be constructed
// once per process.
func newTestServer(t *testing.T, db *gorm.DB) *Server {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:      "test-secret-key",
		DailyLikeLimit: 10,
		Env:            "test",
	}

	userRepo := repository.NewUserRepository(db)
	petRepo := repository.NewPetRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	blockRepo := repository.NewBlockRepository(db)
	quotaRepo := repository.NewQuotaRepository(db)
	subs := service.NewSubscriptionSource(repository.NewSubscriptionRepository(db))
	chatRepo := repository.NewChatActivityRepository(db)
	flags := featureflags.NewManager(cfg.FeatureFlags)
	quota := service.NewQuotaService(quotaRepo, subs, flags, cfg.DailyLikeLimit)

	return &Server{
		config:           cfg,
		db:               db,
		petRepo:          petRepo,
		matchRepo:        matchRepo,
		featureFlags:     flags,
		matchService:     service.NewMatchService(matchRepo, petRepo, blockRepo, quota),
		statsService:     service.NewStatsService(matchRepo, petRepo, chatRepo),
		discoveryService: service.NewDiscoveryService(petRepo, matchRepo, blockRepo, flags),
		petService:       service.NewPetService(petRepo),
		blockService:     service.NewBlockService(blockRepo, userRepo),
	}
}

// newTestApp registers the API routes behind a header-based identity shim so
// tests can act as any user without minting JWTs.
func newTestApp(s *Server) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		raw := c.Get(testUserHeader)
		if raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
				c.Locals("userID", uint(id))
			}
		}
		return c.Next()
	})

	api := app.Group("/api")
	api.Post("/pets", s.CreatePet)
	api.Get("/pets/me", s.GetMyPets)
	api.Post("/pets/:petId/activate", s.ActivatePet)
	api.Delete("/pets/:petId", s.DeletePet)
	api.Post("/matches/request", s.RequestMatch)
	api.Get("/matches/likes", s.GetLikesReceived)
	api.Post("/matches/:matchId/respond", s.RespondToLike)
	api.Get("/discovery/candidates", s.GetCandidates)
	api.Get("/stats", s.GetStats)
	api.Get("/stats/badges", s.GetBadgeCounts)
	api.Post("/blocks/:userId", s.BlockUser)
	api.Get("/feature-flags", s.GetFeatureFlags)
	return app
}

func seedUserWithActivePet(t *testing.T, db *gorm.DB, username string) (uint, uint) {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, db.Create(user).Error)
	pet := &models.Pet{UserID: user.ID, Name: username + "'s pet", Species: "dog", IsActive: true}
	require.NoError(t, db.Create(pet).Error)
	return user.ID, pet.ID
}

func seedBareUser(t *testing.T, db *gorm.DB, username string) uint {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, db.Create(user).Error)
	return user.ID
}

// decodeJSONBody decodes a response body into out, for endpoints that return
// a top-level array instead of an object.
func decodeJSONBody(resp *http.Response, out any) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, userID uint, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != 0 {
		req.Header.Set(testUserHeader, strconv.FormatUint(uint64(userID), 10))
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	var decoded map[string]any
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}
