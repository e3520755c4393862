package api

import (
	"net/http" // HTTP status codes

	"prd_manager/internal/apperror"
	"prd_manager/internal/domain"
	"prd_manager/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/sirupsen/logrus"
)

// Request struct for feature creation; field names match the wire contract
type CreateFeatureRequest struct {
	Title                 string            `json:"title"`
	Priority              domain.Priority   `json:"priority"`
	Description           string            `json:"description"`
	KPI                   string            `json:"kpi"`
	CustomerName          string            `json:"customerName"`
	EngineeringComment    string            `json:"engineeringComment"`
	EngineeringSignoff    bool              `json:"engineeringSignoff"`
	EngineeringComplexity domain.TShirtSize `json:"engineeringComplexity"`
	ReleaseDate           string            `json:"releaseDate"`
}

// Request struct for feature update; nil fields are left unchanged
type UpdateFeatureRequest struct {
	Title                 *string            `json:"title"`
	Priority              *domain.Priority   `json:"priority"`
	Description           *string            `json:"description"`
	KPI                   *string            `json:"kpi"`
	CustomerName          *string            `json:"customerName"`
	EngineeringComment    *string            `json:"engineeringComment"`
	EngineeringSignoff    *bool              `json:"engineeringSignoff"`
	EngineeringComplexity *domain.TShirtSize `json:"engineeringComplexity"`
	ReleaseDate           *string            `json:"releaseDate"`
}

// CreateFeatureHandler creates a feature inside a category
func CreateFeatureHandler(features *service.FeatureService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateFeatureRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, apperror.NewValidationError("Invalid request"))
			return
		}
		feature, err := features.Create(c.Request.Context(), c.Param("id"), service.FeatureInput{
			Title:                 req.Title,
			Priority:              req.Priority,
			Description:           req.Description,
			KPI:                   req.KPI,
			CustomerName:          req.CustomerName,
			EngineeringComment:    req.EngineeringComment,
			EngineeringSignoff:    req.EngineeringSignoff,
			EngineeringComplexity: req.EngineeringComplexity,
			ReleaseDate:           req.ReleaseDate,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"feature_id":  feature.ID,
			"category_id": feature.CategoryID,
			"title":       feature.Title,
		}).Info("Feature created")
		c.JSON(http.StatusCreated, feature)
	}
}

// ListFeaturesHandler returns all features of a category
func ListFeaturesHandler(features *service.FeatureService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := features.ListByCategory(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// UpdateFeatureHandler applies a partial update to a feature
func UpdateFeatureHandler(features *service.FeatureService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateFeatureRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, apperror.NewValidationError("Invalid request"))
			return
		}
		feature, err := features.Update(c.Request.Context(), c.Param("id"), service.FeaturePatch{
			Title:                 req.Title,
			Priority:              req.Priority,
			Description:           req.Description,
			KPI:                   req.KPI,
			CustomerName:          req.CustomerName,
			EngineeringComment:    req.EngineeringComment,
			EngineeringSignoff:    req.EngineeringSignoff,
			EngineeringComplexity: req.EngineeringComplexity,
			ReleaseDate:           req.ReleaseDate,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, feature)
	}
}

// DeleteFeatureHandler deletes a single feature
func DeleteFeatureHandler(features *service.FeatureService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := features.Delete(c.Request.Context(), id); err != nil {
			writeError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{"feature_id": id}).Info("Feature deleted")
		c.JSON(http.StatusOK, gin.H{"message": "Feature deleted successfully"})
	}
}
