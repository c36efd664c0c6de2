package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qankor386/BookApp/internal/entities"
	"github.com/Qankor386/BookApp/internal/notify"
	"github.com/Qankor386/BookApp/internal/repository"
	"github.com/Qankor386/BookApp/internal/storage"
)

// setupAppTest wires the full router the way the entrypoint does.
func setupAppTest(t *testing.T) (*gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_app_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	store, err := storage.NewSQLiteStore(dbPath)
	require.NoError(t, err)

	router := NewRouter(RouterConfig{
		Repository: repository.New(store),
		Bus:        notify.NewBus(),
		Store:      store,
		Version:    "test",
	})

	cleanup := func() {
		store.Close()
		os.Remove(dbPath)
	}
	return router, cleanup
}

func storageVersion(t *testing.T, router *gin.Engine) int64 {
	t.Helper()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/storage/version", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var response StorageVersionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Version
}

func TestStorageVersion(t *testing.T) {
	router, cleanup := setupAppTest(t)
	defer cleanup()

	assert.Equal(t, int64(0), storageVersion(t, router))

	// Every successful mutation moves the version.
	body, _ := json.Marshal(entities.Book{Title: "Hyperion"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/current-book", bytes.NewBuffer(body))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, int64(1), storageVersion(t, router))

	body, _ = json.Marshal(entities.Book{Title: "Dune"})
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/api/reading-list", bytes.NewBuffer(body))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, int64(2), storageVersion(t, router))
}

func TestClearStorage(t *testing.T) {
	router, cleanup := setupAppTest(t)
	defer cleanup()

	// Seed every entity kind.
	body, _ := json.Marshal(entities.Book{Title: "Current"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/current-book", bytes.NewBuffer(body))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	body, _ = json.Marshal(entities.Book{Title: "Listed"})
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/api/reading-list", bytes.NewBuffer(body))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	body, _ = json.Marshal(CreateCollectionRequest{Name: "X"})
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/api/collections", bytes.NewBuffer(body))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	versionBefore := storageVersion(t, router)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/api/storage/clear", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, versionBefore+1, storageVersion(t, router))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/current-book", nil)
	router.ServeHTTP(w, req)
	var current CurrentBookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))
	assert.Nil(t, current.Book)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/reading-list", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/collections", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}
