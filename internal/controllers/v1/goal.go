package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/httperror"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
	"github.com/shopspring/decimal"
)

// RegisterGoalRoutes registers the routes for goals with
// the RouterGroup that is passed.
func (co *Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetGoals)
		r.POST("", co.CreateGoal)
	}

	{
		r.OPTIONS("/:id", co.OptionsGoalDetail)
		r.GET("/:id", co.GetGoal)
		r.DELETE("/:id", co.DeleteGoal)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Router			/v1/goals/{id} [options]
func (co *Controller) OptionsGoalDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	if _, err := co.ledger.Goal(uri.ID.UUID); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetDelete(c)
}

// newGoal decorates a goal record with its progress. Must be called
// with the controller lock held.
func (co *Controller) newGoal(goal models.Goal) Goal {
	progress, err := co.ledger.GoalProgress(goal.ID)
	if err != nil {
		progress = decimal.Zero
	}

	return Goal{Goal: goal, Progress: progress}
}

// @Summary		Create goal
// @Description	Creates a savings goal. The target is spread evenly over every month up to and including the due month and pre-budgeted into a backing category.
// @Tags			Goals
// @Produce		json
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals [post]
func (co *Controller) CreateGoal(c *gin.Context) {
	var editable GoalEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, GoalResponse{Error: &e})
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	goal, err := co.ledger.AddGoal(editable.Name, editable.Description, editable.DueDate, editable.TotalAmount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	co.persist()
	data := co.newGoal(goal)
	c.JSON(http.StatusCreated, GoalResponse{Data: &data})
}

// @Summary		Get goals
// @Description	Returns all goals with their funding progress
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Router			/v1/goals [get]
func (co *Controller) GetGoals(c *gin.Context) {
	co.mu.Lock()
	defer co.mu.Unlock()

	goals := co.ledger.Goals()
	data := make([]Goal, 0, len(goals))
	for _, goal := range goals {
		data = append(data, co.newGoal(goal))
	}

	c.JSON(http.StatusOK, GoalListResponse{Data: data})
}

// @Summary		Get goal
// @Description	Returns a specific goal with its funding progress
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		404	{object}	GoalResponse
// @Router			/v1/goals/{id} [get]
func (co *Controller) GetGoal(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, GoalResponse{Error: &e})
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	goal, err := co.ledger.Goal(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	data := co.newGoal(goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &data})
}

// @Summary		Delete goal
// @Description	Deletes the goal record. The backing category and the money already budgeted stay in place.
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Router			/v1/goals/{id} [delete]
func (co *Controller) DeleteGoal(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	if err := co.ledger.DeleteGoal(uri.ID.UUID); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	co.persist()
	c.Status(http.StatusNoContent)
}
