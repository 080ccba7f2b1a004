package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"storefront/pkg/resp"
	"storefront/services"
)

type CollectionController struct{ Svc *services.CollectionService }

func NewCollectionController(s *services.CollectionService) *CollectionController {
	return &CollectionController{Svc: s}
}

// GET /collections
func (h *CollectionController) List(c *gin.Context) {
	rows, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rows})
}

// GET /collections/:collectionId
func (h *CollectionController) Get(c *gin.Context) {
	id, err := uintParam(c, "collectionId")
	if err != nil {
		resp.BadRequest(c, "invalid collection id")
		return
	}
	row, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrCollectionNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, row)
}

// POST /collections (staff)
func (h *CollectionController) Create(c *gin.Context) {
	var req services.CollectionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	row, err := h.Svc.Create(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, row)
}

// PUT /collections/:collectionId (staff)
func (h *CollectionController) Update(c *gin.Context) {
	id, err := uintParam(c, "collectionId")
	if err != nil {
		resp.BadRequest(c, "invalid collection id")
		return
	}
	var req services.CollectionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	row, err := h.Svc.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrCollectionNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, row)
}

// PATCH /collections/:collectionId (staff)
func (h *CollectionController) Patch(c *gin.Context) {
	id, err := uintParam(c, "collectionId")
	if err != nil {
		resp.BadRequest(c, "invalid collection id")
		return
	}
	var req services.CollectionPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	row, err := h.Svc.Patch(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrCollectionNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, row)
}

// DELETE /collections/:collectionId (staff)
// Refused with 405 while the collection still has products.
func (h *CollectionController) Delete(c *gin.Context) {
	id, err := uintParam(c, "collectionId")
	if err != nil {
		resp.BadRequest(c, "invalid collection id")
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		switch {
		case errors.Is(err, services.ErrCollectionNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrCollectionNotEmpty):
			resp.MethodNotAllowed(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.NoContent(c)
}
