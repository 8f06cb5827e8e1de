package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateIDs(t *testing.T, body map[string]any) []uint {
	t.Helper()
	raw, ok := body["candidates"].([]any)
	require.True(t, ok)
	ids := make([]uint, 0, len(raw))
	for _, entry := range raw {
		pet, ok := entry.(map[string]any)
		require.True(t, ok)
		ids = append(ids, uint(pet["id"].(float64)))
	}
	return ids
}

func TestGetCandidatesExcludesSelfLikedAndBlocked(t *testing.T) {
	db := setupTestDB(t)
	s := newTestServer(t, db)
	app := newTestApp(s)

	alice, alicePet := seedUserWithActivePet(t, db, "alice")
	_, bobPet := seedUserWithActivePet(t, db, "bob")
	carol, carolPet := seedUserWithActivePet(t, db, "carol")
	_, davePet := seedUserWithActivePet(t, db, "dave")

	// alice already liked bob and blocked carol.
	resp, _ := doJSON(t, app, "POST", "/api/matches/request", alice, RequestMatchInput{
		FromPetID: alicePet, ToPetID: bobPet,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, app, "POST", fmt.Sprintf("/api/blocks/%d", carol), alice, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, "GET", "/api/discovery/candidates", alice, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	ids := candidateIDs(t, body)
	assert.Equal(t, []uint{davePet}, ids)
	assert.NotContains(t, ids, alicePet)
	assert.NotContains(t, ids, bobPet)
	assert.NotContains(t, ids, carolPet)
	assert.Equal(t, float64(1), body["count"])
}

func TestGetCandidatesSkipsInactivePets(t *testing.T) {
	db := setupTestDB(t)
	s := newTestServer(t, db)
	app := newTestApp(s)

	alice, _ := seedUserWithActivePet(t, db, "alice")
	_, bobPet := seedUserWithActivePet(t, db, "bob")
	require.NoError(t, db.Table("pets").Where("id = ?", bobPet).Update("is_active", false).Error)

	resp, body := doJSON(t, app, "GET", "/api/discovery/candidates", alice, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, candidateIDs(t, body))
	assert.Equal(t, float64(0), body["count"])
}
