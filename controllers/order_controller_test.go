package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/entity"
	"storefront/services"
)

func placeOrder(t *testing.T, r *gin.Engine, token string, productQty map[uint]int) services.OrderOut {
	rec := doJSON(r, http.MethodPost, "/carts", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var cart services.CartOut
	decodeData(t, rec, &cart)

	for productID, qty := range productQty {
		rec := doJSON(r, http.MethodPost, "/carts/"+cart.ID+"/items", "",
			map[string]any{"productId": productID, "quantity": qty})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec = doJSON(r, http.MethodPost, "/orders", token, map[string]any{"cartId": cart.ID})
	require.Equal(t, http.StatusCreated, rec.Code)
	var order services.OrderOut
	decodeData(t, rec, &order)
	return order
}

func TestCheckout(t *testing.T) {
	router, db := setupRouter(t)
	col := seedCollection(t, db, "Pantry")
	oil := seedProduct(t, db, col.ID, "Olive Oil", "10.00")
	salt := seedProduct(t, db, col.ID, "Sea Salt", "5.00")
	_, token := makeUser(t, db, "alice@test.local", entity.RoleCustomer)

	t.Run("requires authentication", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/orders", "", map[string]any{"cartId": "x"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	order := placeOrder(t, router, token, map[uint]int{oil.ID: 2, salt.ID: 1})

	t.Run("order mirrors the cart", func(t *testing.T) {
		assert.Len(t, order.Items, 2)
		assert.Equal(t, entity.PaymentPending, order.PaymentStatus)
	})

	t.Run("customer was created lazily", func(t *testing.T) {
		var count int64
		db.Model(&entity.Customer{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("empty cart gets 400", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/carts", "", nil)
		require.Equal(t, http.StatusCreated, rec.Code)
		var cart services.CartOut
		decodeData(t, rec, &cart)

		rec = doJSON(router, http.MethodPost, "/orders", token, map[string]any{"cartId": cart.ID})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing cart gets 404", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/orders", token, map[string]any{"cartId": "nope"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOrderVisibility(t *testing.T) {
	router, db := setupRouter(t)
	col := seedCollection(t, db, "Pantry")
	oil := seedProduct(t, db, col.ID, "Olive Oil", "10.00")

	_, aliceToken := makeUser(t, db, "alice@test.local", entity.RoleCustomer)
	_, bobToken := makeUser(t, db, "bob@test.local", entity.RoleCustomer)
	_, staffToken := makeUser(t, db, "staff@test.local", entity.RoleStaff)

	order := placeOrder(t, router, aliceToken, map[uint]int{oil.ID: 1})

	var list struct {
		Total int64 `json:"total"`
	}

	t.Run("owner sees the order", func(t *testing.T) {
		rec := doJSON(router, http.MethodGet, "/orders", aliceToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		decodeData(t, rec, &list)
		assert.Equal(t, int64(1), list.Total)

		rec = doJSON(router, http.MethodGet, "/orders/"+itoa(order.ID), aliceToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("another customer does not", func(t *testing.T) {
		rec := doJSON(router, http.MethodGet, "/orders", bobToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		decodeData(t, rec, &list)
		assert.Equal(t, int64(0), list.Total)

		rec = doJSON(router, http.MethodGet, "/orders/"+itoa(order.ID), bobToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("staff sees all", func(t *testing.T) {
		rec := doJSON(router, http.MethodGet, "/orders", staffToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		decodeData(t, rec, &list)
		assert.Equal(t, int64(1), list.Total)
	})

	t.Run("status patch is staff only", func(t *testing.T) {
		body := map[string]any{"paymentStatus": entity.PaymentComplete}

		rec := doJSON(router, http.MethodPatch, "/orders/"+itoa(order.ID), aliceToken, body)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = doJSON(router, http.MethodPatch, "/orders/"+itoa(order.ID), staffToken, body)
		require.Equal(t, http.StatusOK, rec.Code)
		var out services.OrderOut
		decodeData(t, rec, &out)
		assert.Equal(t, entity.PaymentComplete, out.PaymentStatus)
	})

	t.Run("delete is staff only", func(t *testing.T) {
		rec := doJSON(router, http.MethodDelete, "/orders/"+itoa(order.ID), bobToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = doJSON(router, http.MethodDelete, "/orders/"+itoa(order.ID), staffToken, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
