package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/entity"
	"storefront/repository"
)

func TestCollectionCRUD(t *testing.T) {
	r, db := setupRouter(t)
	_, staffToken := makeUser(t, db, "staff@test.local", entity.RoleStaff)
	_, customerToken := makeUser(t, db, "customer@test.local", entity.RoleCustomer)

	t.Run("write is staff only", func(t *testing.T) {
		body := map[string]any{"title": "Pantry"}
		rec := doJSON(r, http.MethodPost, "/collections", "", body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		rec = doJSON(r, http.MethodPost, "/collections", customerToken, body)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	rec := doJSON(r, http.MethodPost, "/collections", staffToken, map[string]any{"title": "Pantry"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created repository.CollectionRow
	decodeData(t, rec, &created)
	assert.Equal(t, int64(0), created.ProductsCount)

	t.Run("products_count is live", func(t *testing.T) {
		seedProduct(t, db, created.ID, "Olive Oil", "10.00")
		seedProduct(t, db, created.ID, "Sea Salt", "5.00")

		rec := doJSON(r, http.MethodGet, "/collections/"+itoa(created.ID), "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var got repository.CollectionRow
		decodeData(t, rec, &got)
		assert.Equal(t, int64(2), got.ProductsCount)
	})

	t.Run("delete with products gets 405", func(t *testing.T) {
		rec := doJSON(r, http.MethodDelete, "/collections/"+itoa(created.ID), staffToken, nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

		var count int64
		db.Model(&entity.Collection{}).Where("id = ?", created.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("empty collection deletes cleanly", func(t *testing.T) {
		empty := seedCollection(t, db, "Seasonal")
		rec := doJSON(r, http.MethodDelete, "/collections/"+itoa(empty.ID), staffToken, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(r, http.MethodGet, "/collections/"+itoa(empty.ID), "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCollectionPatch(t *testing.T) {
	r, db := setupRouter(t)
	_, staffToken := makeUser(t, db, "staff@test.local", entity.RoleStaff)

	col := seedCollection(t, db, "Pantry")
	featured := seedProduct(t, db, col.ID, "Olive Oil", "10.00")

	t.Run("featured product alone leaves the title", func(t *testing.T) {
		rec := doJSON(r, http.MethodPatch, "/collections/"+itoa(col.ID), staffToken,
			map[string]any{"featuredProductId": featured.ID})
		require.Equal(t, http.StatusOK, rec.Code)

		var got repository.CollectionRow
		decodeData(t, rec, &got)
		assert.Equal(t, "Pantry", got.Title)
		require.NotNil(t, got.FeaturedProductID)
		assert.Equal(t, featured.ID, *got.FeaturedProductID)
	})

	t.Run("title alone keeps the featured product", func(t *testing.T) {
		rec := doJSON(r, http.MethodPatch, "/collections/"+itoa(col.ID), staffToken,
			map[string]any{"title": "Kitchen"})
		require.Equal(t, http.StatusOK, rec.Code)

		var got repository.CollectionRow
		decodeData(t, rec, &got)
		assert.Equal(t, "Kitchen", got.Title)
		require.NotNil(t, got.FeaturedProductID)
		assert.Equal(t, featured.ID, *got.FeaturedProductID)
	})

	t.Run("put still replaces both fields", func(t *testing.T) {
		rec := doJSON(r, http.MethodPut, "/collections/"+itoa(col.ID), staffToken,
			map[string]any{"title": "Pantry"})
		require.Equal(t, http.StatusOK, rec.Code)

		var got repository.CollectionRow
		decodeData(t, rec, &got)
		assert.Equal(t, "Pantry", got.Title)
		assert.Nil(t, got.FeaturedProductID)
	})

	t.Run("missing collection gets 404", func(t *testing.T) {
		rec := doJSON(r, http.MethodPatch, "/collections/9999", staffToken,
			map[string]any{"title": "Nope"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
