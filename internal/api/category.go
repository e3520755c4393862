package api

import (
	"net/http" // HTTP status codes

	"prd_manager/internal/apperror"
	"prd_manager/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/sirupsen/logrus"
)

// Request struct for category creation
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Request struct for category update; nil fields are left unchanged
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CategoryResponse is the category shape without nested features,
// used for update responses.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateCategoryHandler creates a category with the next sequential ID
func CreateCategoryHandler(categories *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCategoryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, apperror.NewValidationError("Invalid request"))
			return
		}
		category, err := categories.Create(c.Request.Context(), req.Name, req.Description)
		if err != nil {
			writeError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"category_id": category.ID,
			"name":        category.Name,
		}).Info("Category created")
		c.JSON(http.StatusCreated, category)
	}
}

// ListCategoriesHandler returns all categories with their nested features
func ListCategoriesHandler(categories *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := categories.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetCategoryHandler returns a single category with its features
func GetCategoryHandler(categories *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := categories.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// UpdateCategoryHandler applies a partial update; the response omits features
func UpdateCategoryHandler(categories *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateCategoryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, apperror.NewValidationError("Invalid request"))
			return
		}
		category, err := categories.Update(c.Request.Context(), c.Param("id"), service.CategoryPatch{
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, CategoryResponse{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
		})
	}
}

// DeleteCategoryHandler deletes a category and cascades to its features
func DeleteCategoryHandler(categories *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := categories.Delete(c.Request.Context(), id); err != nil {
			writeError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{"category_id": id}).Info("Category deleted")
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
