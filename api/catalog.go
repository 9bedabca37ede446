package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/glasscart/storefront/catalog"
	"github.com/glasscart/storefront/store"
)

func (a *API) listCategories(c *gin.Context) {
	if a.Categories == nil {
		a.unavailable(c)
		return
	}
	categories, err := a.Categories.All(c.Request.Context())
	if err != nil {
		a.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// listProducts parses the optional query parameters into a
// catalog.Query, validates the numeric bounds at the boundary, and
// hands execution to the store.
func (a *API) listProducts(c *gin.Context) {
	if a.Catalog == nil {
		a.unavailable(c)
		return
	}

	q := catalog.Query{
		Q:        c.Query("q"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
		Page:     catalog.DefaultPage,
		Limit:    catalog.DefaultLimit,
	}
	if v := c.Query("min_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "min_price must be a number")
			return
		}
		q.MinPrice = &f
	}
	if v := c.Query("max_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "max_price must be a number")
			return
		}
		q.MaxPrice = &f
	}
	if v := c.Query("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "page must be an integer")
			return
		}
		q.Page = n
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "limit must be an integer")
			return
		}
		q.Limit = n
	}
	if err := q.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	page, err := a.Catalog.Search(c.Request.Context(), q)
	if err != nil {
		a.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (a *API) getProduct(c *gin.Context) {
	if a.Catalog == nil {
		a.unavailable(c)
		return
	}
	ctx := c.Request.Context()

	product, err := a.Catalog.BySlug(ctx, c.Param("slug"))
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		a.storeError(c, err)
		return
	}
	related, err := a.Catalog.Related(ctx, product)
	if err != nil {
		a.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product, "related": related})
}

func (a *API) searchSuggestions(c *gin.Context) {
	if a.Catalog == nil {
		a.unavailable(c)
		return
	}
	term := c.Query("q")
	if term == "" {
		respondError(c, http.StatusBadRequest, "q is required")
		return
	}
	suggestions, err := a.Catalog.Suggest(c.Request.Context(), term)
	if err != nil {
		a.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestions)
}
