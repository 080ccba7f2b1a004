package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/entity"
)

func TestReviewPermissions(t *testing.T) {
	r, db := setupRouter(t)
	col := seedCollection(t, db, "Pantry")
	p := seedProduct(t, db, col.ID, "Olive Oil", "10.00")

	_, authorToken := makeUser(t, db, "author@test.local", entity.RoleCustomer)
	_, otherToken := makeUser(t, db, "other@test.local", entity.RoleCustomer)
	_, staffToken := makeUser(t, db, "staff@test.local", entity.RoleStaff)

	base := "/products/" + itoa(p.ID) + "/reviews"

	t.Run("anonymous create gets 401", func(t *testing.T) {
		rec := doJSON(r, http.MethodPost, base, "", map[string]any{"description": "nice"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	rec := doJSON(r, http.MethodPost, base, authorToken, map[string]any{"description": "nice"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var review entity.Review
	decodeData(t, rec, &review)
	path := base + "/" + itoa(review.ID)

	t.Run("anyone can read", func(t *testing.T) {
		rec := doJSON(r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("author can update", func(t *testing.T) {
		rec := doJSON(r, http.MethodPut, path, authorToken, map[string]any{"description": "even better"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-author gets 403", func(t *testing.T) {
		rec := doJSON(r, http.MethodPut, path, otherToken, map[string]any{"description": "mine now"})
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = doJSON(r, http.MethodDelete, path, otherToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("staff can delete any review", func(t *testing.T) {
		rec := doJSON(r, http.MethodDelete, path, staffToken, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown product gets 404", func(t *testing.T) {
		rec := doJSON(r, http.MethodGet, "/products/9999/reviews", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestReviewAttribution(t *testing.T) {
	r, db := setupRouter(t)
	col := seedCollection(t, db, "Pantry")
	p := seedProduct(t, db, col.ID, "Sea Salt", "5.00")
	author, token := makeUser(t, db, "author@test.local", entity.RoleCustomer)

	rec := doJSON(r, http.MethodPost, "/products/"+itoa(p.ID)+"/reviews", token,
		map[string]any{"description": "salty"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var review entity.Review
	decodeData(t, rec, &review)
	assert.Equal(t, author.ID, review.UserID)
	assert.Equal(t, p.ID, review.ProductID)
	assert.False(t, review.Date.IsZero())
}
