package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"storefront/pkg/resp"
	"storefront/services"
)

// Carts are anonymous: possession of the uuid token is the capability.
type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// POST /carts
func (h *CartController) Create(c *gin.Context) {
	cart, err := h.Svc.Create()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cart)
}

// GET /carts/:cartId
func (h *CartController) Get(c *gin.Context) {
	cart, err := h.Svc.Get(c.Param("cartId"))
	if err != nil {
		if errors.Is(err, services.ErrCartNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /carts/:cartId
func (h *CartController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Param("cartId")); err != nil {
		if errors.Is(err, services.ErrCartNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}

// GET /carts/:cartId/items
func (h *CartController) ListItems(c *gin.Context) {
	items, err := h.Svc.ListItems(c.Param("cartId"))
	if err != nil {
		if errors.Is(err, services.ErrCartNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /carts/:cartId/items/:itemId
func (h *CartController) GetItem(c *gin.Context) {
	itemID, err := uintParam(c, "itemId")
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	item, err := h.Svc.GetItem(c.Param("cartId"), itemID)
	if err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /carts/:cartId/items
func (h *CartController) AddItem(c *gin.Context) {
	var req services.AddCartItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.AddItem(c.Param("cartId"), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrProductNotFound):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, item)
}

// PATCH /carts/:cartId/items/:itemId
func (h *CartController) UpdateItem(c *gin.Context) {
	itemID, err := uintParam(c, "itemId")
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var req services.UpdateCartItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.UpdateItem(c.Param("cartId"), itemID, &req)
	if err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /carts/:cartId/items/:itemId
func (h *CartController) RemoveItem(c *gin.Context) {
	itemID, err := uintParam(c, "itemId")
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	if err := h.Svc.RemoveItem(c.Param("cartId"), itemID); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}
