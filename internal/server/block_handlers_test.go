package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockUser(t *testing.T) {
	db := setupTestDB(t)
	s := newTestServer(t, db)
	app := newTestApp(s)

	alice := seedBareUser(t, db, "alice")
	bob := seedBareUser(t, db, "bob")

	resp, body := doJSON(t, app, "POST", fmt.Sprintf("/api/blocks/%d", bob), alice, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, float64(bob), body["blocked_user_id"])

	t.Run("blocking again conflicts", func(t *testing.T) {
		resp, body := doJSON(t, app, "POST", fmt.Sprintf("/api/blocks/%d", bob), alice, nil)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "CONFLICT", body["code"])
	})

	t.Run("self block rejected", func(t *testing.T) {
		resp, body := doJSON(t, app, "POST", fmt.Sprintf("/api/blocks/%d", alice), alice, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", body["code"])
	})

	t.Run("unknown target", func(t *testing.T) {
		resp, body := doJSON(t, app, "POST", "/api/blocks/9999", alice, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", body["code"])
	})

	t.Run("malformed target id", func(t *testing.T) {
		resp, body := doJSON(t, app, "POST", "/api/blocks/not-a-number", alice, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", body["code"])
	})
}
