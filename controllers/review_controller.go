package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"storefront/pkg/resp"
	"storefront/services"
	"storefront/utils"
)

type ReviewController struct{ Svc *services.ReviewService }

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: s}
}

// GET /products/:productId/reviews
func (h *ReviewController) List(c *gin.Context) {
	productID, err := uintParam(c, "productId")
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	reviews, err := h.Svc.List(productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": reviews})
}

// GET /products/:productId/reviews/:reviewId
func (h *ReviewController) Get(c *gin.Context) {
	productID, reviewID, ok := reviewParams(c)
	if !ok {
		return
	}
	review, err := h.Svc.Get(productID, reviewID)
	if err != nil {
		if errors.Is(err, services.ErrReviewNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, review)
}

// POST /products/:productId/reviews (authenticated)
func (h *ReviewController) Create(c *gin.Context) {
	productID, err := uintParam(c, "productId")
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	var req services.ReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	review, err := h.Svc.Create(productID, utils.CurrentUserID(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, review)
}

// PUT/PATCH /products/:productId/reviews/:reviewId (author or staff)
func (h *ReviewController) Update(c *gin.Context) {
	productID, reviewID, ok := reviewParams(c)
	if !ok {
		return
	}
	var req services.ReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	review, err := h.Svc.Update(productID, reviewID, utils.CurrentUserID(c), utils.IsStaff(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReviewNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrNotAuthor):
			resp.Forbidden(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, review)
}

// DELETE /products/:productId/reviews/:reviewId (author or staff)
func (h *ReviewController) Delete(c *gin.Context) {
	productID, reviewID, ok := reviewParams(c)
	if !ok {
		return
	}
	err := h.Svc.Delete(productID, reviewID, utils.CurrentUserID(c), utils.IsStaff(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReviewNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrNotAuthor):
			resp.Forbidden(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.NoContent(c)
}

func reviewParams(c *gin.Context) (productID, reviewID uint, ok bool) {
	productID, err := uintParam(c, "productId")
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return 0, 0, false
	}
	reviewID, err = uintParam(c, "reviewId")
	if err != nil {
		resp.BadRequest(c, "invalid review id")
		return 0, 0, false
	}
	return productID, reviewID, true
}
