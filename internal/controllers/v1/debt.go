package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/httperror"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/ledger"
)

// RegisterDebtRoutes registers the routes for debts with
// the RouterGroup that is passed.
func (co *Controller) RegisterDebtRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetDebts)
		r.POST("", co.CreateDebt)
	}

	{
		r.OPTIONS("/:id", co.OptionsDebtDetail)
		r.GET("/:id", co.GetDebt)
		r.DELETE("/:id", co.DeleteDebt)
	}

	{
		r.OPTIONS("/:id/payments", httputil.OptionsPost)
		r.POST("/:id/payments", co.RecordDebtPayment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Router			/v1/debts/{id} [options]
func (co *Controller) OptionsDebtDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	if _, err := co.ledger.Debt(uri.ID.UUID); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create debt
// @Description	Starts tracking a debt
// @Tags			Debts
// @Produce		json
// @Success		201		{object}	DebtResponse
// @Failure		400		{object}	DebtResponse
// @Param			debt	body		DebtEditable	true	"Debt"
// @Router			/v1/debts [post]
func (co *Controller) CreateDebt(c *gin.Context) {
	var editable DebtEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DebtResponse{Error: &e})
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	debt, err := co.ledger.AddDebt(editable.Name, editable.OriginalBalance, editable.CurrentBalance, editable.InterestRate, editable.MinPayment)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{Error: &e})
		return
	}

	co.persist()
	c.JSON(http.StatusCreated, DebtResponse{Data: &debt})
}

// @Summary		Get debts
// @Description	Returns the list of debts, ordered by the payoff method when one is passed
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtListResponse
// @Failure		400	{object}	DebtListResponse
// @Router			/v1/debts [get]
// @Param			sort	query	string	false	"Payoff ordering, 'snowball' or 'avalanche'"
func (co *Controller) GetDebts(c *gin.Context) {
	method := ledger.SortMethod(c.Query("sort"))
	if method != "" && !method.Valid() {
		e := errSortMethodInvalid.Error()
		c.JSON(http.StatusBadRequest, DebtListResponse{Error: &e})
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	c.JSON(http.StatusOK, DebtListResponse{Data: co.ledger.Debts(method)})
}

// @Summary		Get debt
// @Description	Returns a specific debt with its payment history
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtResponse
// @Failure		400	{object}	DebtResponse
// @Failure		404	{object}	DebtResponse
// @Router			/v1/debts/{id} [get]
func (co *Controller) GetDebt(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DebtResponse{Error: &e})
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	debt, err := co.ledger.Debt(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, DebtResponse{Data: &debt})
}

// @Summary		Record debt payment
// @Description	Pays an amount towards the debt from the pool and books a linked expense. Overpayments clamp the balance at zero.
// @Tags			Debts
// @Produce		json
// @Success		201		{object}	DebtResponse
// @Failure		400		{object}	DebtResponse
// @Failure		404		{object}	DebtResponse
// @Param			payment	body		PaymentEditable	true	"Payment"
// @Router			/v1/debts/{id}/payments [post]
func (co *Controller) RecordDebtPayment(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DebtResponse{Error: &e})
		return
	}

	var editable PaymentEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DebtResponse{Error: &e})
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	debt, err := co.ledger.RecordDebtPayment(uri.ID.UUID, editable.Amount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{Error: &e})
		return
	}

	co.persist()
	c.JSON(http.StatusCreated, DebtResponse{Data: &debt})
}

// @Summary		Delete debt
// @Description	Stops tracking the debt. Payments already made are not refunded.
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Router			/v1/debts/{id} [delete]
func (co *Controller) DeleteDebt(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	if err := co.ledger.DeleteDebt(uri.ID.UUID); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	co.persist()
	c.Status(http.StatusNoContent)
}
