package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter registers every route against the injected
// dependencies and returns the engine ready to run.
func SetupRouter(a *API) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", a.root)
	r.GET("/test", a.diagnostics)

	g := r.Group("/api")
	g.POST("/register", a.register)
	g.POST("/login", a.login)
	g.GET("/me", a.requireAuth(), a.me)

	g.GET("/categories", a.listCategories)
	g.GET("/products", a.listProducts)
	g.GET("/products/:slug", a.getProduct)
	// On the review routes the path segment carries the product's
	// store id, not its slug; gin requires one parameter name per
	// position.
	g.GET("/products/:slug/reviews", a.listReviews)
	g.POST("/products/:slug/reviews", a.createReview)

	g.POST("/orders", a.createOrder)
	g.GET("/search", a.searchSuggestions)
	g.POST("/seed", a.seed)

	return r
}
