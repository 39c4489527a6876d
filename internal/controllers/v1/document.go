package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/httperror"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/ledger"
	"github.com/pocketplan/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// FileEditable represents all user configurable parameters
type FileEditable struct {
	Path string `json:"path" example:"/data/budget.json"` // Path of the budget file to use from now on
}

// Storage reports where the budget is saved and how the last save went.
type Storage struct {
	File      string  `json:"file" example:"/data/budget.json"` // The current budget file, empty when none is selected
	LastError *string `json:"lastError"`                        // The error of the most recent save, null when it succeeded
}

type StorageResponse struct {
	Data  *Storage `json:"data"`  // Data for the storage state
	Error *string  `json:"error"` // The error, if any occurred
}

// RegisterDocumentRoutes registers the routes for the document itself
// with the RouterGroup that is passed.
func (co *Controller) RegisterDocumentRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetDocument)
		r.POST("", co.ImportDocument)
	}

	{
		r.OPTIONS("/file", httputil.OptionsPost)
		r.POST("/file", co.SetFile)
	}
}

// RegisterStorageRoutes registers the storage status route with
// the RouterGroup that is passed.
func (co *Controller) RegisterStorageRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetStorage)
}

// @Summary		Export document
// @Description	Returns the complete budget document
// @Tags			Document
// @Produce		json
// @Success		200	{object}	models.Document
// @Router			/v1/document [get]
func (co *Controller) GetDocument(c *gin.Context) {
	co.mu.Lock()
	defer co.mu.Unlock()

	c.JSON(http.StatusOK, co.ledger.Document())
}

// @Summary		Import document
// @Description	Replaces the complete budget with the document in the request body. Older document versions are migrated on the fly.
// @Tags			Document
// @Produce		json
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Router			/v1/document [post]
// @Param			document	body	models.Document	true	"Document"
func (co *Controller) ImportDocument(c *gin.Context) {
	var doc models.Document
	if err := httputil.BindData(c, &doc); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	models.Migrate(&doc, time.Now())
	co.ledger = ledger.New(&doc)

	co.persist()
	c.Status(http.StatusNoContent)
}

// @Summary		Select budget file
// @Description	Switches to another budget file and reloads the budget from it. The choice is remembered across restarts.
// @Tags			Document
// @Produce		json
// @Success		200	{object}	StorageResponse
// @Failure		400	{object}	StorageResponse
// @Failure		500	{object}	StorageResponse
// @Router			/v1/document/file [post]
// @Param			file	body	FileEditable	true	"File"
func (co *Controller) SetFile(c *gin.Context) {
	var editable FileEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, StorageResponse{Error: &e})
		return
	}

	if editable.Path == "" {
		e := errFilePathNotSet.Error()
		c.JSON(http.StatusBadRequest, StorageResponse{Error: &e})
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	// The target only switches together with the budget. Keeping the
	// new path while the old budget stays live would overwrite the
	// selected file on the next mutation.
	previous := co.gateway.File()
	co.gateway.SetFile(editable.Path)

	doc, err := co.gateway.Read()
	if err != nil {
		co.gateway.SetFile(previous)
		e := err.Error()
		c.JSON(status(err), StorageResponse{Error: &e})
		return
	}
	co.ledger = ledger.New(doc)

	if co.handles != nil {
		if err := co.handles.Save(editable.Path); err != nil {
			log.Warn().Err(err).Msg("failed to remember the budget file")
		}
	}

	c.JSON(http.StatusOK, StorageResponse{Data: co.storage()})
}

// @Summary		Get storage state
// @Description	Returns the current budget file and the error of the most recent save, if any
// @Tags			Document
// @Produce		json
// @Success		200	{object}	StorageResponse
// @Router			/v1/storage [get]
func (co *Controller) GetStorage(c *gin.Context) {
	co.mu.Lock()
	defer co.mu.Unlock()

	c.JSON(http.StatusOK, StorageResponse{Data: co.storage()})
}

func (co *Controller) storage() *Storage {
	storage := Storage{File: co.gateway.File()}
	if err := co.gateway.LastError(); err != nil {
		e := err.Error()
		storage.LastError = &e
	}

	return &storage
}
