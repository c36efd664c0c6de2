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

// ReadingController serves the "currently reading" book and the ordered
// reading list.
type ReadingController struct {
	repo *repository.Repository
	bus  *notify.Bus
}

func NewReadingController(repo *repository.Repository, bus *notify.Bus) *ReadingController {
	return &ReadingController{repo: repo, bus: bus}
}

type CurrentBookResponse struct {
	Book *entities.Book `json:"book"`
}

func (ctl *ReadingController) GetCurrentBook(c *gin.Context) {
	book, err := ctl.repo.LoadCurrentBook(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, CurrentBookResponse{Book: book})
}

func (ctl *ReadingController) SetCurrentBook(c *gin.Context) {
	var book entities.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if book.AddedDate == "" {
		book.AddedDate = time.Now().UTC().Format(time.RFC3339)
	}

	if err := ctl.repo.SaveCurrentBook(c.Request.Context(), book); err != nil {
		respondError(c, err)
		return
	}

	ctl.bus.NotifyChanged()
	c.JSON(http.StatusOK, book)
}

func (ctl *ReadingController) GetReadingList(c *gin.Context) {
	list, err := ctl.repo.LoadReadingList(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctl *ReadingController) AppendToReadingList(c *gin.Context) {
	var book entities.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if book.AddedDate == "" {
		book.AddedDate = time.Now().UTC().Format(time.RFC3339)
	}

	if err := ctl.repo.AppendToReadingList(c.Request.Context(), book); err != nil {
		respondError(c, err)
		return
	}

	ctl.bus.NotifyChanged()
	c.JSON(http.StatusCreated, book)
}

func (ctl *ReadingController) RemoveFromReadingList(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}

	if err := ctl.repo.RemoveFromReadingList(c.Request.Context(), index); err != nil {
		respondError(c, err)
		return
	}

	ctl.bus.NotifyChanged()
	c.Status(http.StatusNoContent)
}
