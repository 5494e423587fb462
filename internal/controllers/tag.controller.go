package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipebox/internal/middleware"
	"recipebox/internal/models"
	"recipebox/internal/policy"
	"recipebox/internal/repository"
)

type TagController struct {
	repo repository.TagRepository
}

func NewTagController(repo repository.TagRepository) *TagController {
	return &TagController{repo: repo}
}

// CreateTag godoc
// @Summary Create a new tag
// @Tags tag
// @Accept json
// @Produce json
// @Param tag body models.Tag true "Tag data"
// @Success 201 {object} map[string]interface{} "Tag created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /tags [post]
func (tc *TagController) CreateTag(c *gin.Context) {
	if err := policy.AuthorizeCatalog(policy.ActionCreate, middleware.CurrentIdentity(c)); err != nil {
		respondDomainError(c, err)
		return
	}

	var tag models.Tag
	if err := c.ShouldBindJSON(&tag); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := tc.repo.Create(&tag); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create tag",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Tag created successfully",
		"data":    tag,
	})
}

// GetAllTags godoc
// @Summary Get all tags
// @Tags tag
// @Produce json
// @Success 200 {object} map[string]interface{} "Tags retrieved successfully"
// @Router /tags [get]
func (tc *TagController) GetAllTags(c *gin.Context) {
	tags, err := tc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve tags",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tags retrieved successfully",
		"data":    tags,
	})
}

// GetTagByID godoc
// @Summary Get a tag by ID
// @Tags tag
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} map[string]interface{} "Tag retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Tag not found"
// @Router /tags/{id} [get]
func (tc *TagController) GetTagByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	tag, err := tc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Tag not found",
			"error":   "No tag exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tag retrieved successfully",
		"data":    tag,
	})
}

// UpdateTag godoc
// @Summary Update a tag
// @Tags tag
// @Accept json
// @Produce json
// @Param id path int true "Tag ID"
// @Param tag body models.Tag true "Tag data"
// @Success 200 {object} map[string]interface{} "Tag updated successfully"
// @Failure 404 {object} map[string]interface{} "Tag not found"
// @Router /tags/{id} [put]
func (tc *TagController) UpdateTag(c *gin.Context) {
	if err := policy.AuthorizeCatalog(policy.ActionUpdate, middleware.CurrentIdentity(c)); err != nil {
		respondDomainError(c, err)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var tag models.Tag
	if err := c.ShouldBindJSON(&tag); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	tag.ID = id

	if _, err := tc.repo.FindByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Tag not found",
			"error":   "No tag exists with the provided ID",
		})
		return
	}

	if err := tc.repo.Update(&tag); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update tag",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tag updated successfully",
		"data":    tag,
	})
}

// DeleteTag godoc
// @Summary Delete a tag
// @Tags tag
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} map[string]interface{} "Tag deleted successfully"
// @Failure 404 {object} map[string]interface{} "Tag not found"
// @Router /tags/{id} [delete]
func (tc *TagController) DeleteTag(c *gin.Context) {
	if err := policy.AuthorizeCatalog(policy.ActionDelete, middleware.CurrentIdentity(c)); err != nil {
		respondDomainError(c, err)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if _, err := tc.repo.FindByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Tag not found",
			"error":   "No tag exists with the provided ID",
		})
		return
	}

	if err := tc.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete tag",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tag deleted successfully",
		"data":    nil,
	})
}
