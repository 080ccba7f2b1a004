package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/pkg/resp"
	"storefront/repository"
	"storefront/services"
)

// AdminController serves the staff-only read views with their grouped
// counts, computed per request.
type AdminController struct {
	ProductRepo    *repository.ProductRepository
	CollectionRepo *repository.CollectionRepository
	CustomerSvc    *services.CustomerService
}

func NewAdminController(
	productRepo *repository.ProductRepository,
	collectionRepo *repository.CollectionRepository,
	customerSvc *services.CustomerService,
) *AdminController {
	return &AdminController{
		ProductRepo:    productRepo,
		CollectionRepo: collectionRepo,
		CustomerSvc:    customerSvc,
	}
}

type adminProductRow struct {
	repository.AdminProductRow
	InventoryStatus string `json:"inventoryStatus"`
}

// GET /admin/products?inventory=low
func (h *AdminController) Products(c *gin.Context) {
	low := c.Query("inventory") == "low"
	rows, err := h.ProductRepo.ListWithOrderedTimes(low)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	out := make([]adminProductRow, 0, len(rows))
	for _, r := range rows {
		status := "OK"
		if r.Inventory < 10 {
			status = "Low"
		}
		out = append(out, adminProductRow{AdminProductRow: r, InventoryStatus: status})
	}
	resp.OK(c, gin.H{"items": out})
}

// GET /admin/collections?min_products=N
func (h *AdminController) Collections(c *gin.Context) {
	var min *int64
	if v := c.Query("min_products"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid min_products")
			return
		}
		min = &n
	}
	rows, err := h.CollectionRepo.ListWithCounts(min)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rows})
}

// GET /admin/customers?search=
func (h *AdminController) Customers(c *gin.Context) {
	rows, err := h.CustomerSvc.ListAdmin(c.Query("search"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rows})
}

type clearInventoryReq struct {
	ProductIDs []uint `json:"productIds" binding:"required,min=1"`
}

// POST /admin/products/clear-inventory
func (h *AdminController) ClearInventory(c *gin.Context) {
	var req clearInventoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updated, err := h.ProductRepo.ClearInventory(req.ProductIDs)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": updated})
}
