package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/httperror"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co *Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Router			/v1/transactions/{id} [options]
func (co *Controller) OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	if _, err := co.ledger.Transaction(uri.ID.UUID); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create transaction
// @Description	Creates a new transaction. A transaction matching an existing one in date, amount and description is rejected with 409 unless confirm=duplicate is set.
// @Tags			Transactions
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		409			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Param			confirm		query		string				false	"Set to 'duplicate' to insert a suspected duplicate anyway"
// @Router			/v1/transactions [post]
func (co *Controller) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	transaction, err := co.ledger.AddTransaction(editable.input(), c.Query("confirm") == "duplicate")
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	co.persist()
	c.JSON(http.StatusCreated, TransactionResponse{Data: &transaction})
}

// @Summary		Get transactions
// @Description	Returns a list of transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			month		query	string	false	"Filter by month in YYYY-MM format"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			type		query	string	false	"Filter by type"
// @Param			description	query	string	false	"Filter by description, supports * globbing"
// @Param			offset		query	uint	false	"The offset of the first transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of transactions to return. Defaults to 50."
func (co *Controller) GetTransactions(c *gin.Context) {
	filter := TransactionQueryFilter{Limit: 50}
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &e})
		return
	}

	var month types.Month
	if filter.Month != "" {
		var err error
		month, err = types.ParseMonth(filter.Month)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &e})
			return
		}
	}

	var categoryID uuid.UUID
	if filter.CategoryID != "" {
		var err error
		categoryID, err = uuid.Parse(filter.CategoryID)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &e})
			return
		}
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	transactions := make([]models.Transaction, 0)
	for _, transaction := range co.ledger.Transactions() {
		if filter.Month != "" && !transaction.Date.Month().Equal(month) {
			continue
		}
		if filter.CategoryID != "" && (transaction.CategoryID == nil || *transaction.CategoryID != categoryID) {
			continue
		}
		if filter.Type != "" && string(transaction.Type) != filter.Type {
			continue
		}
		if filter.Description != "" && !glob.Glob(filter.Description, transaction.Description) {
			continue
		}

		transactions = append(transactions, transaction)
	}

	// The pagination window is cut out after filtering so that total
	// reflects the filtered count. The clamps happen before any
	// conversion or addition so that oversized values cannot wrap.
	total := len(transactions)
	offset := total
	if filter.Offset < uint(total) {
		offset = int(filter.Offset)
	}
	end := total
	if filter.Limit >= 0 && filter.Limit < end-offset {
		end = offset + filter.Limit
	}
	data := slices.Clone(transactions[offset:end])

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Offset: filter.Offset,
			Limit:  filter.Limit,
			Total:  total,
		},
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Router			/v1/transactions/{id} [get]
func (co *Controller) GetTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	transaction, err := co.ledger.Transaction(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// @Summary		Update transaction
// @Description	Replaces the transaction's data, moving it between months when the date changes
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func (co *Controller) UpdateTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
		return
	}

	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	transaction, err := co.ledger.EditTransaction(uri.ID.UUID, editable.input())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	co.persist()
	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// @Summary		Delete transaction
// @Description	Deletes the transaction. Deleting income takes its amount back out of the pool.
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Router			/v1/transactions/{id} [delete]
func (co *Controller) DeleteTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	if err := co.ledger.DeleteTransaction(uri.ID.UUID); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	co.persist()
	c.Status(http.StatusNoContent)
}
