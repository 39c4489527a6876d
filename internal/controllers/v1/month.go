package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/httperror"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
)

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func (co *Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/:month", httputil.OptionsGet)
		r.GET("/:month", co.GetMonth)
	}

	{
		r.OPTIONS("/:month/categories/:id", httputil.OptionsPatch)
		r.PATCH("/:month/categories/:id", co.SetAllocation)
	}

	{
		r.OPTIONS("/:month/categories/:id/quick-budget", httputil.OptionsPost)
		r.POST("/:month/categories/:id/quick-budget", co.QuickBudget)
	}

	{
		r.OPTIONS("/:month/copy-forward", httputil.OptionsPost)
		r.POST("/:month/copy-forward", co.CopyCategoriesForward)
	}
}

// bindMonth parses the month out of the URI. Responds with 400 itself
// when the value is unparseable and reports success to the caller.
func bindMonth(c *gin.Context) (types.Month, bool) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return types.Month{}, false
	}

	month, err := types.ParseMonth(uri.Month)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return types.Month{}, false
	}

	return month, true
}

// @Summary		Get month overview
// @Description	Returns income, budgeted, activity and available per category for the month
// @Tags			Months
// @Produce		json
// @Success		200	{object}	MonthResponse
// @Failure		400	{object}	httperror.Error
// @Router			/v1/months/{month} [get]
// @Param			month	path	string	true	"The month in YYYY-MM format"
func (co *Controller) GetMonth(c *gin.Context) {
	month, ok := bindMonth(c)
	if !ok {
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	data := co.newMonth(co.ledger.MonthView(month))
	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// @Summary		Set allocation
// @Description	Budgets an amount for a category in this month. The difference to the previous amount is taken from or returned to the pool.
// @Tags			Months
// @Produce		json
// @Success		200			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		404			{object}	AllocationResponse
// @Param			month		path		string				true	"The month in YYYY-MM format"
// @Param			id			path		string				true	"ID of the category"
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Router			/v1/months/{month}/categories/{id} [patch]
func (co *Controller) SetAllocation(c *gin.Context) {
	month, ok := bindMonth(c)
	if !ok {
		return
	}

	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{Error: &e})
		return
	}

	var editable AllocationEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{Error: &e})
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	if err := co.ledger.SetAllocation(month, uri.ID.UUID, editable.Assigned); err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &e})
		return
	}

	co.persist()
	c.JSON(http.StatusOK, AllocationResponse{Data: &models.Allocation{Assigned: editable.Assigned}})
}

// @Summary		Quick budget
// @Description	Tops the category up to its previous month's budgeted amount
// @Tags			Months
// @Produce		json
// @Success		200		{object}	QuickBudgetResponse
// @Failure		400		{object}	QuickBudgetResponse
// @Failure		404		{object}	QuickBudgetResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Param			id		path		string	true	"ID of the category"
// @Router			/v1/months/{month}/categories/{id}/quick-budget [post]
func (co *Controller) QuickBudget(c *gin.Context) {
	month, ok := bindMonth(c)
	if !ok {
		return
	}

	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, QuickBudgetResponse{Error: &e})
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	budgeted, err := co.ledger.QuickBudget(month, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), QuickBudgetResponse{Error: &e})
		return
	}

	co.persist()
	c.JSON(http.StatusOK, QuickBudgetResponse{Data: &QuickBudgetResult{Budgeted: budgeted}})
}

// @Summary		Copy categories forward
// @Description	Creates zero allocations in the following month for every active category that has none yet
// @Tags			Months
// @Produce		json
// @Success		200		{object}	CopyForwardResponse
// @Failure		400		{object}	CopyForwardResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month}/copy-forward [post]
func (co *Controller) CopyCategoriesForward(c *gin.Context) {
	month, ok := bindMonth(c)
	if !ok {
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	copied := co.ledger.CopyCategoriesForward(month)

	co.persist()
	c.JSON(http.StatusOK, CopyForwardResponse{Data: &CopyForwardResult{Copied: copied}})
}
