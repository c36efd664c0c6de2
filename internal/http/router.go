package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Qankor386/BookApp/internal/notify"
	"github.com/Qankor386/BookApp/internal/repository"
	"github.com/Qankor386/BookApp/internal/storage"
)

// RouterConfig carries the dependencies of every controller. A single
// config struct keeps construction testable and the parameter list short.
type RouterConfig struct {
	Repository *repository.Repository
	Bus        *notify.Bus
	Store      storage.Store
	Version    string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Store, cfg.Version)
	reading := NewReadingController(cfg.Repository, cfg.Bus)
	collections := NewCollectionsController(cfg.Repository, cfg.Bus)
	settings := NewSettingsController(cfg.Repository, cfg.Bus)

	router.GET("/health", health.Status)

	api := router.Group("/api")
	{
		api.GET("/current-book", reading.GetCurrentBook)
		api.PUT("/current-book", reading.SetCurrentBook)

		api.GET("/reading-list", reading.GetReadingList)
		api.POST("/reading-list", reading.AppendToReadingList)
		api.DELETE("/reading-list/:index", reading.RemoveFromReadingList)

		api.GET("/collections", collections.ListCollections)
		api.POST("/collections", collections.CreateCollection)
		api.DELETE("/collections/:name", collections.DeleteCollection)
		api.GET("/collections/:name/books", collections.GetCollectionBooks)
		api.POST("/collections/:name/books", collections.AddCollectionBook)
		api.DELETE("/collections/:name/books/:index", collections.RemoveCollectionBook)

		api.GET("/storage/version", settings.StorageVersion)
		api.POST("/storage/clear", settings.ClearStorage)
	}

	return router
}
