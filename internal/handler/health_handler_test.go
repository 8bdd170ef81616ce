package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-dashboard/internal/infrastructure/database"
)

func TestHealthEndpoints(t *testing.T) {
	db, err := database.NewSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	h := NewHealthHandler(db)
	router := gin.New()
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
	router.GET("/live", h.Live)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Contains(t, w.Body.String(), "session_store")
}

func TestHealth_UnhealthyAfterClose(t *testing.T) {
	db, err := database.NewSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	h := NewHealthHandler(db)
	router := gin.New()
	router.GET("/health", h.Health)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
