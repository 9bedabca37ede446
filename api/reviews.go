package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glasscart/storefront/reviews"
)

type reviewRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

func (a *API) listReviews(c *gin.Context) {
	if a.Reviews == nil {
		a.unavailable(c)
		return
	}
	list, err := a.Reviews.List(c.Request.Context(), c.Param("slug"))
	if err != nil {
		a.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// createReview accepts anonymous submissions; a valid bearer token
// attaches the caller's identity, anything else is ignored.
func (a *API) createReview(c *gin.Context) {
	if a.Reviews == nil {
		a.unavailable(c)
		return
	}
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	sub := reviews.Submission{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if user, ok := a.identity(c); ok {
		sub.UserID = user.ID.Hex()
		sub.UserName = user.Name
	}

	id, err := a.Reviews.Submit(c.Request.Context(), c.Param("slug"), sub)
	switch {
	case errors.Is(err, reviews.ErrRatingOutOfRange):
		respondError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	case errors.Is(err, reviews.ErrProductMismatch):
		respondError(c, http.StatusBadRequest, "Mismatched product id")
		return
	case err != nil:
		a.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
