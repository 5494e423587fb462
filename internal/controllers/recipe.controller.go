package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipebox/internal/domain"
	"recipebox/internal/middleware"
	"recipebox/internal/models"
	"recipebox/internal/policy"
	"recipebox/internal/repository"
	"recipebox/internal/services"
	"recipebox/internal/validation"
)

type RecipeController struct {
	recipes      repository.RecipeRepository
	tags         repository.TagRepository
	ingredients  repository.IngredientRepository
	favorites    repository.FavoriteRepository
	ratings      repository.RatingRepository
	shoppingList *services.ShoppingListService
}

func NewRecipeController(
	recipes repository.RecipeRepository,
	tags repository.TagRepository,
	ingredients repository.IngredientRepository,
	favorites repository.FavoriteRepository,
	ratings repository.RatingRepository,
	shoppingList *services.ShoppingListService,
) *RecipeController {
	return &RecipeController{
		recipes:      recipes,
		tags:         tags,
		ingredients:  ingredients,
		favorites:    favorites,
		ratings:      ratings,
		shoppingList: shoppingList,
	}
}

// GetAllRecipes godoc
// @Summary List recipes
// @Description List recipes with optional title search, ordering and author/favorited filters
// @Tags recipe
// @Produce json
// @Param search query string false "Substring match on title"
// @Param ordering query string false "time_minutes, -time_minutes, created_at or -created_at"
// @Param author query int false "Filter by author ID"
// @Param favorited query bool false "Only recipes favorited by the requester"
// @Success 200 {object} map[string]interface{} "Recipes retrieved successfully"
// @Router /recipes [get]
func (rc *RecipeController) GetAllRecipes(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	filter := repository.RecipeFilter{
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
	}
	if author := c.Query("author"); author != "" {
		id, err := strconv.ParseUint(author, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid author filter",
				"error":   "author must be a valid positive integer",
			})
			return
		}
		filter.AuthorID = uint(id)
	}
	// The favorited filter only means something for authenticated callers;
	// it is ignored for anonymous ones.
	if c.Query("favorited") == "true" && identity.Authenticated {
		filter.FavoritedBy = identity.UserID
	}

	recipes, err := rc.recipes.FindAll(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve recipes",
			"error":   err.Error(),
		})
		return
	}

	views := make([]domain.RecipeListView, 0, len(recipes))
	for _, recipe := range recipes {
		views = append(views, domain.NewRecipeListView(recipe, identity.UserID))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipes retrieved successfully",
		"data":    views,
	})
}

// GetRecipeByID godoc
// @Summary Get a recipe by ID
// @Tags recipe
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Recipe retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipes/{id} [get]
func (rc *RecipeController) GetRecipeByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	recipe, err := rc.recipes.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	identity := middleware.CurrentIdentity(c)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe retrieved successfully",
		"data":    domain.NewRecipeDetailView(*recipe, identity.UserID),
	})
}

// CreateRecipe godoc
// @Summary Create a new recipe
// @Description Create a recipe with tags and a quantified ingredient list
// @Tags recipe
// @Accept json
// @Produce json
// @Param recipe body domain.RecipePayload true "Recipe data"
// @Success 201 {object} map[string]interface{} "Recipe created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid recipe payload"
// @Router /recipes [post]
func (rc *RecipeController) CreateRecipe(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if err := policy.AuthorizeOwned(policy.ActionCreate, 0, identity); err != nil {
		respondDomainError(c, err)
		return
	}

	var payload domain.RecipePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	if payload.Title == nil || *payload.Title == "" || payload.TimeMinutes == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "title and time_minutes are required",
		})
		return
	}

	if err := validation.ValidateCreate(&payload, rc.tags.Exists, rc.ingredients.Exists); err != nil {
		respondDomainError(c, err)
		return
	}

	recipe := models.Recipe{
		AuthorID:    identity.UserID,
		Title:       *payload.Title,
		Steps:       payload.Steps,
		TimeMinutes: *payload.TimeMinutes,
	}
	if payload.Description != nil {
		recipe.Description = *payload.Description
	}

	// The repository re-checks tag existence inside the transaction, so a
	// concurrent tag deletion still surfaces as a validation failure.
	if err := rc.recipes.Create(&recipe, payload.TagIDs, payload.Ingredients); err != nil {
		respondDomainError(c, err)
		return
	}

	created, err := rc.recipes.FindByID(recipe.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load created recipe",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Recipe created successfully",
		"data":    domain.NewRecipeDetailView(*created, identity.UserID),
	})
}

// UpdateRecipe godoc
// @Summary Update a recipe
// @Description Partial update; a supplied tag set or ingredient list fully replaces the stored one
// @Tags recipe
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param recipe body domain.RecipePayload true "Recipe data"
// @Success 200 {object} map[string]interface{} "Recipe updated successfully"
// @Failure 403 {object} map[string]interface{} "Not the recipe author"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipes/{id} [patch]
func (rc *RecipeController) UpdateRecipe(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	recipe, err := rc.recipes.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	identity := middleware.CurrentIdentity(c)
	if err := policy.AuthorizeOwned(policy.ActionUpdate, recipe.AuthorID, identity); err != nil {
		respondDomainError(c, err)
		return
	}

	var payload domain.RecipePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := validation.ValidateUpdate(&payload, rc.tags.Exists, rc.ingredients.Exists); err != nil {
		respondDomainError(c, err)
		return
	}

	if payload.Title != nil {
		recipe.Title = *payload.Title
	}
	if payload.Description != nil {
		recipe.Description = *payload.Description
	}
	if payload.Steps != nil {
		recipe.Steps = payload.Steps
	}
	if payload.TimeMinutes != nil {
		recipe.TimeMinutes = *payload.TimeMinutes
	}

	if err := rc.recipes.Update(recipe, payload.TagIDs, payload.Ingredients); err != nil {
		respondDomainError(c, err)
		return
	}

	updated, err := rc.recipes.FindByID(recipe.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load updated recipe",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe updated successfully",
		"data":    domain.NewRecipeDetailView(*updated, identity.UserID),
	})
}

// DeleteRecipe godoc
// @Summary Delete a recipe
// @Tags recipe
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Recipe deleted successfully"
// @Failure 403 {object} map[string]interface{} "Not the recipe author"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipes/{id} [delete]
func (rc *RecipeController) DeleteRecipe(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	recipe, err := rc.recipes.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	identity := middleware.CurrentIdentity(c)
	if err := policy.AuthorizeOwned(policy.ActionDelete, recipe.AuthorID, identity); err != nil {
		respondDomainError(c, err)
		return
	}

	if err := rc.recipes.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete recipe",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe deleted successfully",
		"data":    nil,
	})
}

// FavoriteRecipe godoc
// @Summary Favorite a recipe
// @Tags recipe
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} map[string]interface{} "Recipe added to favorites"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Failure 409 {object} map[string]interface{} "Already in favorites"
// @Router /recipes/{id}/favorite [post]
func (rc *RecipeController) FavoriteRecipe(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	identity := middleware.CurrentIdentity(c)

	if _, err := rc.recipes.FindByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	exists, err := rc.favorites.Exists(identity.UserID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to add favorite",
			"error":   err.Error(),
		})
		return
	}
	if exists {
		respondDomainError(c, domain.ErrAlreadyFavorited)
		return
	}

	favorite := models.Favorite{UserID: identity.UserID, RecipeID: id}
	if err := rc.favorites.Create(&favorite); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to add favorite",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Recipe added to favorites",
		"data":    favorite,
	})
}

// UnfavoriteRecipe godoc
// @Summary Remove a recipe from favorites
// @Tags recipe
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Recipe removed from favorites"
// @Failure 404 {object} map[string]interface{} "Favorite not found"
// @Router /recipes/{id}/favorite [delete]
func (rc *RecipeController) UnfavoriteRecipe(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	identity := middleware.CurrentIdentity(c)

	if err := rc.favorites.Delete(identity.UserID, id); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe removed from favorites",
		"data":    nil,
	})
}

// RateRecipe godoc
// @Summary Rate a recipe
// @Description Create the requester's rating, or overwrite its value if one exists
// @Tags recipe
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param rating body domain.RatingPayload true "Rating value 1..5"
// @Success 201 {object} map[string]interface{} "Rating saved"
// @Failure 400 {object} map[string]interface{} "Invalid rating value"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipes/{id}/rating [post]
func (rc *RecipeController) RateRecipe(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	identity := middleware.CurrentIdentity(c)

	var payload domain.RatingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "value must be between 1 and 5",
		})
		return
	}

	if _, err := rc.recipes.FindByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	rating, err := rc.ratings.Upsert(identity.UserID, id, payload.Value)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save rating",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Rating saved",
		"data":    rating,
	})
}

// DeleteRating godoc
// @Summary Delete the requester's rating of a recipe
// @Tags recipe
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Rating deleted"
// @Failure 404 {object} map[string]interface{} "Rating not found"
// @Router /recipes/{id}/rating [delete]
func (rc *RecipeController) DeleteRating(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	identity := middleware.CurrentIdentity(c)

	if err := rc.ratings.Delete(identity.UserID, id); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Rating deleted",
		"data":    nil,
	})
}

// ShoppingList godoc
// @Summary Build a consolidated shopping list
// @Description Sum ingredient amounts across the given recipes, or across the requester's favorites when no ids are supplied
// @Tags recipe
// @Accept json
// @Produce json
// @Param selection body domain.ShoppingListRequest false "Recipe IDs"
// @Success 200 {object} map[string]interface{} "Shopping list built successfully"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Router /recipes/shopping_list [post]
func (rc *RecipeController) ShoppingList(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var req domain.ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	totals, err := rc.shoppingList.Build(identity, req.RecipeIDs)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	// JSON objects cannot be keyed by a (name, unit) pair, so lines are
	// keyed by the ingredient's display form, e.g. "flour (g)".
	list := make(map[string]string, len(totals))
	for key, total := range totals {
		list[key.String()] = total.String()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Shopping list built successfully",
		"data":    list,
	})
}
