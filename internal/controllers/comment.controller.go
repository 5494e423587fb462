package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipebox/internal/domain"
	"recipebox/internal/middleware"
	"recipebox/internal/models"
	"recipebox/internal/policy"
	"recipebox/internal/repository"
)

type CommentController struct {
	comments repository.CommentRepository
	recipes  repository.RecipeRepository
}

func NewCommentController(comments repository.CommentRepository, recipes repository.RecipeRepository) *CommentController {
	return &CommentController{comments: comments, recipes: recipes}
}

// CreateComment godoc
// @Summary Comment on a recipe
// @Tags comment
// @Accept json
// @Produce json
// @Param comment body domain.CommentPayload true "Comment data"
// @Success 201 {object} map[string]interface{} "Comment created successfully"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /comments [post]
func (cc *CommentController) CreateComment(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var payload domain.CommentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := cc.recipes.FindByID(payload.RecipeID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	comment := models.Comment{
		RecipeID: payload.RecipeID,
		AuthorID: identity.UserID,
		Text:     payload.Text,
	}
	if err := cc.comments.Create(&comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create comment",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Comment created successfully",
		"data":    domain.NewCommentView(comment),
	})
}

// GetAllComments godoc
// @Summary List comments
// @Description List comments, optionally restricted to one recipe
// @Tags comment
// @Produce json
// @Param recipe query int false "Filter by recipe ID"
// @Success 200 {object} map[string]interface{} "Comments retrieved successfully"
// @Router /comments [get]
func (cc *CommentController) GetAllComments(c *gin.Context) {
	var recipeID uint
	if raw := c.Query("recipe"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid recipe filter",
				"error":   "recipe must be a valid positive integer",
			})
			return
		}
		recipeID = uint(id)
	}

	comments, err := cc.comments.FindAll(recipeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve comments",
			"error":   err.Error(),
		})
		return
	}

	views := make([]domain.CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, domain.NewCommentView(comment))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Comments retrieved successfully",
		"data":    views,
	})
}

// GetCommentByID godoc
// @Summary Get a comment by ID
// @Tags comment
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]interface{} "Comment retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Comment not found"
// @Router /comments/{id} [get]
func (cc *CommentController) GetCommentByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	comment, err := cc.comments.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Comment not found",
			"error":   "No comment exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Comment retrieved successfully",
		"data":    domain.NewCommentView(*comment),
	})
}

// UpdateComment godoc
// @Summary Update a comment
// @Tags comment
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param comment body domain.CommentPayload true "Comment data"
// @Success 200 {object} map[string]interface{} "Comment updated successfully"
// @Failure 403 {object} map[string]interface{} "Not the comment author"
// @Failure 404 {object} map[string]interface{} "Comment not found"
// @Router /comments/{id} [put]
func (cc *CommentController) UpdateComment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	comment, err := cc.comments.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Comment not found",
			"error":   "No comment exists with the provided ID",
		})
		return
	}

	identity := middleware.CurrentIdentity(c)
	if err := policy.AuthorizeOwned(policy.ActionUpdate, comment.AuthorID, identity); err != nil {
		respondDomainError(c, err)
		return
	}

	var payload domain.CommentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	comment.Text = payload.Text
	if err := cc.comments.Update(comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update comment",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Comment updated successfully",
		"data":    domain.NewCommentView(*comment),
	})
}

// DeleteComment godoc
// @Summary Delete a comment
// @Tags comment
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]interface{} "Comment deleted successfully"
// @Failure 403 {object} map[string]interface{} "Not the comment author"
// @Failure 404 {object} map[string]interface{} "Comment not found"
// @Router /comments/{id} [delete]
func (cc *CommentController) DeleteComment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	comment, err := cc.comments.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Comment not found",
			"error":   "No comment exists with the provided ID",
		})
		return
	}

	identity := middleware.CurrentIdentity(c)
	if err := policy.AuthorizeOwned(policy.ActionDelete, comment.AuthorID, identity); err != nil {
		respondDomainError(c, err)
		return
	}

	if err := cc.comments.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete comment",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Comment deleted successfully",
		"data":    nil,
	})
}
