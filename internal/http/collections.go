package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Qankor386/BookApp/internal/entities"
	"github.com/Qankor386/BookApp/internal/notify"
	"github.com/Qankor386/BookApp/internal/repository"
)

// CollectionsController serves named collections and their book lists.
type CollectionsController struct {
	repo *repository.Repository
	bus  *notify.Bus
}

func NewCollectionsController(repo *repository.Repository, bus *notify.Bus) *CollectionsController {
	return &CollectionsController{repo: repo, bus: bus}
}

// CollectionSummary is one row of the collections overview.
type CollectionSummary struct {
	Name      string `json:"name"`
	BookCount int    `json:"bookCount"`
}

type CreateCollectionRequest struct {
	Name string `json:"name"`
}

func (ctl *CollectionsController) ListCollections(c *gin.Context) {
	ctx := c.Request.Context()

	names, err := ctl.repo.LoadCollectionNames(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	counts, err := ctl.repo.LoadBookCounts(ctx, names)
	if err != nil {
		respondError(c, err)
		return
	}

	summaries := make([]CollectionSummary, 0, len(names))
	for _, name := range names {
		summaries = append(summaries, CollectionSummary{Name: name, BookCount: counts[name]})
	}
	c.JSON(http.StatusOK, summaries)
}

func (ctl *CollectionsController) CreateCollection(c *gin.Context) {
	var req CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := ctl.repo.AddCollectionName(c.Request.Context(), req.Name); err != nil {
		respondError(c, err)
		return
	}

	ctl.bus.NotifyChanged()
	c.JSON(http.StatusCreated, CollectionSummary{Name: req.Name, BookCount: 0})
}

func (ctl *CollectionsController) DeleteCollection(c *gin.Context) {
	name := c.Param("name")

	if err := ctl.repo.RemoveCollectionName(c.Request.Context(), name); err != nil {
		respondError(c, err)
		return
	}

	ctl.bus.NotifyChanged()
	c.Status(http.StatusNoContent)
}

func (ctl *CollectionsController) GetCollectionBooks(c *gin.Context) {
	books, err := ctl.repo.LoadCollectionBooks(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

func (ctl *CollectionsController) AddCollectionBook(c *gin.Context) {
	var book entities.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if book.AddedDate == "" {
		book.AddedDate = time.Now().UTC().Format(time.RFC3339)
	}

	if err := ctl.repo.AppendToCollectionBooks(c.Request.Context(), c.Param("name"), book); err != nil {
		respondError(c, err)
		return
	}

	ctl.bus.NotifyChanged()
	c.JSON(http.StatusCreated, book)
}

func (ctl *CollectionsController) RemoveCollectionBook(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}

	if err := ctl.repo.RemoveFromCollectionBooks(c.Request.Context(), c.Param("name"), index); err != nil {
		respondError(c, err)
		return
	}

	ctl.bus.NotifyChanged()
	c.Status(http.StatusNoContent)
}
