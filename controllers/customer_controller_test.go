package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/entity"
	"storefront/services"
)

func TestCustomerMe(t *testing.T) {
	r, db := setupRouter(t)
	user, token := makeUser(t, db, "alice@test.local", entity.RoleCustomer)

	t.Run("requires authentication", func(t *testing.T) {
		rec := doJSON(r, http.MethodGet, "/customers/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("first access creates a blank profile", func(t *testing.T) {
		rec := doJSON(r, http.MethodGet, "/customers/me", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var out services.CustomerOut
		decodeData(t, rec, &out)
		assert.Equal(t, user.ID, out.UserID)
		assert.Equal(t, entity.MembershipBronze, out.Membership)

		var count int64
		db.Model(&entity.Customer{}).Where("user_id = ?", user.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("repeat access reuses the profile", func(t *testing.T) {
		rec := doJSON(r, http.MethodGet, "/customers/me", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var count int64
		db.Model(&entity.Customer{}).Where("user_id = ?", user.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("put updates the profile", func(t *testing.T) {
		rec := doJSON(r, http.MethodPut, "/customers/me", token,
			map[string]any{"phone": "555-0199", "membership": entity.MembershipGold})
		require.Equal(t, http.StatusOK, rec.Code)

		var out services.CustomerOut
		decodeData(t, rec, &out)
		assert.Equal(t, "555-0199", out.Phone)
		assert.Equal(t, entity.MembershipGold, out.Membership)
	})

	t.Run("bad membership gets 400", func(t *testing.T) {
		rec := doJSON(r, http.MethodPut, "/customers/me", token,
			map[string]any{"membership": "Platinum"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminViews(t *testing.T) {
	r, db := setupRouter(t)
	_, staffToken := makeUser(t, db, "staff@test.local", entity.RoleStaff)
	shopper, customerToken := makeUser(t, db, "customer@test.local", entity.RoleCustomer)

	col := seedCollection(t, db, "Pantry")
	low := seedProduct(t, db, col.ID, "Olive Oil", "10.00")
	require.NoError(t, db.Model(&entity.Product{}).Where("id = ?", low.ID).Update("inventory", 3).Error)
	salt := seedProduct(t, db, col.ID, "Sea Salt", "5.00")

	t.Run("staff gated", func(t *testing.T) {
		rec := doJSON(r, http.MethodGet, "/admin/products", customerToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("low inventory filter and status", func(t *testing.T) {
		var out struct {
			Items []struct {
				Title           string `json:"title"`
				InventoryStatus string `json:"inventoryStatus"`
			} `json:"items"`
		}

		rec := doJSON(r, http.MethodGet, "/admin/products?inventory=low", staffToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		decodeData(t, rec, &out)
		require.Len(t, out.Items, 1)
		assert.Equal(t, "Olive Oil", out.Items[0].Title)
		assert.Equal(t, "Low", out.Items[0].InventoryStatus)
	})

	t.Run("clear inventory reports updated count", func(t *testing.T) {
		var out struct {
			Updated int64 `json:"updated"`
		}
		rec := doJSON(r, http.MethodPost, "/admin/products/clear-inventory", staffToken,
			map[string]any{"productIds": []uint{low.ID}})
		require.Equal(t, http.StatusOK, rec.Code)
		decodeData(t, rec, &out)
		assert.Equal(t, int64(1), out.Updated)

		var p entity.Product
		require.NoError(t, db.First(&p, low.ID).Error)
		assert.Equal(t, 0, p.Inventory)
	})

	placeOrder(t, r, customerToken, map[uint]int{salt.ID: 2})

	t.Run("ordered times counts order lines", func(t *testing.T) {
		var out struct {
			Items []struct {
				Title        string `json:"title"`
				OrderedTimes int64  `json:"orderedTimes"`
			} `json:"items"`
		}
		rec := doJSON(r, http.MethodGet, "/admin/products", staffToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		decodeData(t, rec, &out)

		byTitle := map[string]int64{}
		for _, it := range out.Items {
			byTitle[it.Title] = it.OrderedTimes
		}
		assert.Equal(t, int64(1), byTitle["Sea Salt"])
		assert.Equal(t, int64(0), byTitle["Olive Oil"])
	})

	t.Run("customers carry order counts", func(t *testing.T) {
		var out struct {
			Items []struct {
				UserID      uint  `json:"userId"`
				OrdersCount int64 `json:"ordersCount"`
			} `json:"items"`
		}
		rec := doJSON(r, http.MethodGet, "/admin/customers", staffToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		decodeData(t, rec, &out)
		require.Len(t, out.Items, 1)
		assert.Equal(t, shopper.ID, out.Items[0].UserID)
		assert.Equal(t, int64(1), out.Items[0].OrdersCount)
	})
}
