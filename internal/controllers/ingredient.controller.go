package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipebox/internal/middleware"
	"recipebox/internal/models"
	"recipebox/internal/policy"
	"recipebox/internal/repository"
)

type IngredientController struct {
	repo repository.IngredientRepository
}

func NewIngredientController(repo repository.IngredientRepository) *IngredientController {
	return &IngredientController{repo: repo}
}

// CreateIngredient godoc
// @Summary Create a new ingredient
// @Tags ingredient
// @Accept json
// @Produce json
// @Param ingredient body models.Ingredient true "Ingredient data"
// @Success 201 {object} map[string]interface{} "Ingredient created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /ingredients [post]
func (ic *IngredientController) CreateIngredient(c *gin.Context) {
	if err := policy.AuthorizeCatalog(policy.ActionCreate, middleware.CurrentIdentity(c)); err != nil {
		respondDomainError(c, err)
		return
	}

	var ingredient models.Ingredient
	if err := c.ShouldBindJSON(&ingredient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := ic.repo.Create(&ingredient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create ingredient",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Ingredient created successfully",
		"data":    ingredient,
	})
}

// GetAllIngredients godoc
// @Summary Get all ingredients
// @Description Retrieve ingredients, optionally filtered by a name search
// @Tags ingredient
// @Produce json
// @Param search query string false "Substring match on ingredient name"
// @Success 200 {object} map[string]interface{} "Ingredients retrieved successfully"
// @Router /ingredients [get]
func (ic *IngredientController) GetAllIngredients(c *gin.Context) {
	ingredients, err := ic.repo.FindAll(c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve ingredients",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Ingredients retrieved successfully",
		"data":    ingredients,
	})
}

// GetIngredientByID godoc
// @Summary Get an ingredient by ID
// @Tags ingredient
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} map[string]interface{} "Ingredient retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Ingredient not found"
// @Router /ingredients/{id} [get]
func (ic *IngredientController) GetIngredientByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ingredient, err := ic.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Ingredient not found",
			"error":   "No ingredient exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Ingredient retrieved successfully",
		"data":    ingredient,
	})
}

// UpdateIngredient godoc
// @Summary Update an ingredient
// @Tags ingredient
// @Accept json
// @Produce json
// @Param id path int true "Ingredient ID"
// @Param ingredient body models.Ingredient true "Ingredient data"
// @Success 200 {object} map[string]interface{} "Ingredient updated successfully"
// @Failure 404 {object} map[string]interface{} "Ingredient not found"
// @Router /ingredients/{id} [put]
func (ic *IngredientController) UpdateIngredient(c *gin.Context) {
	if err := policy.AuthorizeCatalog(policy.ActionUpdate, middleware.CurrentIdentity(c)); err != nil {
		respondDomainError(c, err)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var ingredient models.Ingredient
	if err := c.ShouldBindJSON(&ingredient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	ingredient.ID = id

	if _, err := ic.repo.FindByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Ingredient not found",
			"error":   "No ingredient exists with the provided ID",
		})
		return
	}

	if err := ic.repo.Update(&ingredient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update ingredient",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Ingredient updated successfully",
		"data":    ingredient,
	})
}

// DeleteIngredient godoc
// @Summary Delete an ingredient
// @Tags ingredient
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} map[string]interface{} "Ingredient deleted successfully"
// @Failure 404 {object} map[string]interface{} "Ingredient not found"
// @Router /ingredients/{id} [delete]
func (ic *IngredientController) DeleteIngredient(c *gin.Context) {
	if err := policy.AuthorizeCatalog(policy.ActionDelete, middleware.CurrentIdentity(c)); err != nil {
		respondDomainError(c, err)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if _, err := ic.repo.FindByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Ingredient not found",
			"error":   "No ingredient exists with the provided ID",
		})
		return
	}

	if err := ic.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete ingredient",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Ingredient deleted successfully",
		"data":    nil,
	})
}
