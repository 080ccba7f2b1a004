package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"storefront/pkg/resp"
	"storefront/services"
	"storefront/utils"
)

type CustomerController struct{ Svc *services.CustomerService }

func NewCustomerController(s *services.CustomerService) *CustomerController {
	return &CustomerController{Svc: s}
}

// GET /customers/me
func (h *CustomerController) Me(c *gin.Context) {
	out, err := h.Svc.Me(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// PUT /customers/me
func (h *CustomerController) UpdateMe(c *gin.Context) {
	var req services.UpdateCustomerIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.UpdateMe(utils.CurrentUserID(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrBadMembership) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
