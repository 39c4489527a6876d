package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/httperror"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
	"github.com/ryanuber/go-glob"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co *Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	{
		r.OPTIONS("/grouped", httputil.OptionsGet)
		r.GET("/grouped", co.GetCategoriesGrouped)
	}

	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Router			/v1/categories/{id} [options]
func (co *Controller) OptionsCategoryDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	if _, err := co.ledger.Category(uri.ID.UUID); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create category
// @Description	Creates a new spending category
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func (co *Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{Error: &e})
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	category, err := co.ledger.AddCategory(editable.Name, editable.ParentCategory)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	co.persist()
	c.JSON(http.StatusCreated, CategoryResponse{Data: &category})
}

// @Summary		Get categories
// @Description	Returns the list of active categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
// @Param			name	query	string	false	"Filter by name, supports * globbing"
// @Param			parent	query	string	false	"Filter by parent label"
func (co *Controller) GetCategories(c *gin.Context) {
	var filter struct {
		Name   string `form:"name"`
		Parent string `form:"parent"`
	}
	_ = c.Bind(&filter)

	co.mu.Lock()
	defer co.mu.Unlock()

	categories := co.ledger.Categories()
	data := make([]models.Category, 0, len(categories))
	for _, category := range categories {
		if filter.Name != "" && !glob.Glob(filter.Name, category.Name) {
			continue
		}
		if filter.Parent != "" && category.ParentCategory != filter.Parent {
			continue
		}
		data = append(data, category)
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Get grouped categories
// @Description	Returns the active categories grouped by their parent label
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryGroupListResponse
// @Router			/v1/categories/grouped [get]
func (co *Controller) GetCategoriesGrouped(c *gin.Context) {
	co.mu.Lock()
	defer co.mu.Unlock()

	c.JSON(http.StatusOK, CategoryGroupListResponse{Data: newCategoryGroups(co.ledger.CategoriesByParent())})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Router			/v1/categories/{id} [get]
func (co *Controller) GetCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{Error: &e})
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	category, err := co.ledger.Category(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}

// @Summary		Deactivate category
// @Description	Soft-deletes the category and refunds its budgeted money to the pool. Allocation history is kept.
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryDeactivationResponse
// @Failure		400	{object}	CategoryDeactivationResponse
// @Failure		404	{object}	CategoryDeactivationResponse
// @Router			/v1/categories/{id} [delete]
func (co *Controller) DeleteCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CategoryDeactivationResponse{Error: &e})
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	refunded, err := co.ledger.DeactivateCategory(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryDeactivationResponse{Error: &e})
		return
	}

	co.persist()
	c.JSON(http.StatusOK, CategoryDeactivationResponse{Data: &CategoryDeactivation{Refunded: refunded}})
}
