package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/httperror"
	"github.com/pocketplan/backend/internal/ledger"
	"github.com/pocketplan/backend/internal/models"
)

// RegisterCleanupRoutes registers the routes for cleanup with
// the RouterGroup that is passed.
func (co *Controller) RegisterCleanupRoutes(r *gin.RouterGroup) {
	r.DELETE("", co.Cleanup)
}

// @Summary		Delete everything
// @Description	Permanently deletes the whole budget: all categories, months, transactions, debts and goals. Requires the confirmation parameter.
// @Tags			v1
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Router			/v1 [delete]
// @Param			confirm	query	string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
func (co *Controller) Cleanup(c *gin.Context) {
	if c.Query("confirm") != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httperror.New(errCleanupConfirmation))
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	co.ledger = ledger.New(models.DefaultDocument())

	co.persist()
	c.Status(http.StatusNoContent)
}
