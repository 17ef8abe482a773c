package addressControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/chaikart/teashop-api/models"
)

func setup(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Address{}))

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", "user-1") })
	r.GET("/user/addresses", GetAddresses(db))
	r.POST("/user/addresses", CreateAddress(db))
	return db, r
}

func TestCreateAndListAddresses(t *testing.T) {
	db, r := setup(t)

	body, _ := json.Marshal(AddressInput{
		FullName: "Chai Lover", StreetAddress: "12 Leaf Lane",
		City: "Darjeeling", State: "WB", PostalCode: "734101", Phone: "9999999999",
	})
	req := httptest.NewRequest(http.MethodPost, "/user/addresses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// An address belonging to someone else must not appear in the list.
	require.NoError(t, db.Create(&models.Address{
		UserID: "user-2", FullName: "Other", StreetAddress: "1 Far St",
		City: "Pune", State: "MH", PostalCode: "411001", Phone: "8888888888",
	}).Error)

	req = httptest.NewRequest(http.MethodGet, "/user/addresses", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Address
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "user-1", got[0].UserID)
}

func TestCreateAddressMissingFields(t *testing.T) {
	_, r := setup(t)

	body, _ := json.Marshal(gin.H{"full_name": "Chai Lover"})
	req := httptest.NewRequest(http.MethodPost, "/user/addresses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
