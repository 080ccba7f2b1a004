package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storefront/configs"
	"storefront/entity"
	"storefront/routes"
	"storefront/utils"
)

var testCfg = &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entity.User{}, &entity.Customer{}, &entity.Address{},
		&entity.Collection{}, &entity.Product{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{},
	)
	require.NoError(t, err)

	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, db, testCfg)
	return r, db
}

func makeUser(t *testing.T, db *gorm.DB, email, role string) (entity.User, string) {
	u := entity.User{Email: email, Password: "x", Role: role}
	require.NoError(t, db.Create(&u).Error)
	token, err := utils.GenerateToken(u.ID, u.Role, testCfg.JWTSecret, testCfg.JWTTTL)
	require.NoError(t, err)
	return u, token
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	var envelope struct {
		OK   bool            `json:"ok"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func itoa(id uint) string { return strconv.FormatUint(uint64(id), 10) }

func seedCollection(t *testing.T, db *gorm.DB, title string) entity.Collection {
	col := entity.Collection{Title: title}
	require.NoError(t, db.Create(&col).Error)
	return col
}

func seedProduct(t *testing.T, db *gorm.DB, colID uint, title, unitPrice string) entity.Product {
	p := entity.Product{
		Title:        title,
		UnitPrice:    dec(unitPrice),
		Inventory:    20,
		CollectionID: colID,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func seedOrderWithItem(t *testing.T, db *gorm.DB, userID, productID uint) entity.Order {
	customer := entity.Customer{UserID: userID, Membership: entity.MembershipBronze}
	require.NoError(t, db.Create(&customer).Error)
	order := entity.Order{CustomerID: customer.ID, PlacedAt: time.Now(), PaymentStatus: entity.PaymentPending}
	require.NoError(t, db.Create(&order).Error)
	item := entity.OrderItem{OrderID: order.ID, ProductID: productID, Quantity: 1, UnitPrice: dec("10.00")}
	require.NoError(t, db.Create(&item).Error)
	return order
}
