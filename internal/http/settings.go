package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Qankor386/BookApp/internal/notify"
	"github.com/Qankor386/BookApp/internal/repository"
)

// SettingsController serves the settings screen operations: wiping the
// store and exposing the reload version for polling clients.
type SettingsController struct {
	repo *repository.Repository
	bus  *notify.Bus
}

func NewSettingsController(repo *repository.Repository, bus *notify.Bus) *SettingsController {
	return &SettingsController{repo: repo, bus: bus}
}

type StorageVersionResponse struct {
	Version int64 `json:"version"`
}

// StorageVersion returns the current reload counter. Clients compare it
// against the last version they rendered and re-fetch on any difference.
func (ctl *SettingsController) StorageVersion(c *gin.Context) {
	c.JSON(http.StatusOK, StorageVersionResponse{Version: ctl.bus.CurrentVersion()})
}

// ClearStorage destroys every persisted entity.
func (ctl *SettingsController) ClearStorage(c *gin.Context) {
	if err := ctl.repo.ClearAll(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	ctl.bus.NotifyChanged()
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
