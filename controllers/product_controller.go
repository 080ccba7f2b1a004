package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"storefront/pkg/resp"
	"storefront/repository"
	"storefront/services"
)

type ProductController struct{ Svc *services.ProductService }

func NewProductController(s *services.ProductService) *ProductController {
	return &ProductController{Svc: s}
}

// GET /products
func (h *ProductController) List(c *gin.Context) {
	var f repository.ProductFilter
	if v := c.Query("collection_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid collection_id")
			return
		}
		cid := uint(id)
		f.CollectionID = &cid
	}
	if v := c.Query("unit_price_gt"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			resp.BadRequest(c, "invalid unit_price_gt")
			return
		}
		f.UnitPriceGT = &d
	}
	if v := c.Query("unit_price_lt"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			resp.BadRequest(c, "invalid unit_price_lt")
			return
		}
		f.UnitPriceLT = &d
	}
	f.Search = c.Query("search")
	f.Ordering = c.Query("ordering")
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := h.Svc.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /products/:productId
func (h *ProductController) Get(c *gin.Context) {
	id, err := uintParam(c, "productId")
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	out, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /products (staff)
func (h *ProductController) Create(c *gin.Context) {
	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Create(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, out)
}

// PUT /products/:productId (staff)
func (h *ProductController) Replace(c *gin.Context) {
	id, err := uintParam(c, "productId")
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Replace(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, out)
}

// PATCH /products/:productId (staff)
func (h *ProductController) Patch(c *gin.Context) {
	id, err := uintParam(c, "productId")
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	var req services.ProductPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Patch(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, out)
}

// DELETE /products/:productId (staff)
// Refused with 405 while any order item still references the product.
func (h *ProductController) Delete(c *gin.Context) {
	id, err := uintParam(c, "productId")
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrProductInUse):
			resp.MethodNotAllowed(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.NoContent(c)
}

func uintParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(id), err
}
