package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/pkg/resp"
	"storefront/services"
	"storefront/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /orders
// Converts the given cart into an order for the acting user.
func (h *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.CreateFromCart(utils.CurrentUserID(c), req.CartID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrEmptyCart):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, out)
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	out, err := h.Svc.ListForUser(utils.CurrentUserID(c), utils.IsStaff(c), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /orders/:orderId
func (h *OrderController) Detail(c *gin.Context) {
	id, err := uintParam(c, "orderId")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	out, err := h.Svc.DetailForUser(utils.CurrentUserID(c), utils.IsStaff(c), id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

type updateOrderReq struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

// PATCH /orders/:orderId (staff)
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, err := uintParam(c, "orderId")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req updateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.UpdateStatus(id, req.PaymentStatus)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrBadStatus):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, out)
}

// DELETE /orders/:orderId (staff)
func (h *OrderController) Delete(c *gin.Context) {
	id, err := uintParam(c, "orderId")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}
