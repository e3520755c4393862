package api

import (
	"prd_manager/internal/middleware"
	"prd_manager/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// Router assembles the Gin engine with every API route. Services are
// constructed once by the caller and injected here; handlers close over
// them rather than reaching for any shared state.
func Router(auth *service.AuthService, categories *service.CategoryService, features *service.FeatureService, jwtSecret string) *gin.Engine {
	r := gin.Default() // Gin router instance

	apiGroup := r.Group("/api")

	// Auth routes (register and login are the only unauthenticated ones)
	apiGroup.POST("/auth/register", RegisterHandler(auth))
	apiGroup.POST("/auth/login", LoginHandler(auth))

	// Everything else requires a valid bearer token
	authed := apiGroup.Group("")
	authed.Use(middleware.JWTAuthMiddleware(jwtSecret))
	authed.GET("/auth/me", MeHandler(auth))

	authed.GET("/categories", ListCategoriesHandler(categories))
	authed.POST("/categories", CreateCategoryHandler(categories))
	authed.GET("/categories/:id", GetCategoryHandler(categories))
	authed.PUT("/categories/:id", UpdateCategoryHandler(categories))
	authed.DELETE("/categories/:id", DeleteCategoryHandler(categories))

	authed.GET("/categories/:id/features", ListFeaturesHandler(features))
	authed.POST("/categories/:id/features", CreateFeatureHandler(features))
	authed.PUT("/features/:id", UpdateFeatureHandler(features))
	authed.DELETE("/features/:id", DeleteFeatureHandler(features))

	return r
}
