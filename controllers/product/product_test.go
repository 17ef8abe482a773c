package productcontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/chaikart/teashop-api/cache"
	"github.com/chaikart/teashop-api/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}, &models.CartItem{}))
	return db
}

func setupRouter(db *gorm.DB, store *cache.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/shop/categories", GetAllCategories(db, store))
	r.GET("/shop/products", GetProducts(db, store))
	r.GET("/shop/products/:id", GetProductByID(db))
	r.POST("/admin/products", CreateProduct(db, store))
	r.PUT("/admin/products/:id", UpdateProduct(db, store))
	r.DELETE("/admin/products/:id", DeleteProduct(db, store))
	r.POST("/admin/categories", CreateCategory(db, store))
	r.DELETE("/admin/categories/:id", DeleteCategory(db, store))
	return r
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProduct(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db, cache.New(time.Minute))
	category := seedCategory(t, db, "Oolong")

	w := postForm(r, "/admin/products", url.Values{
		"name":        {"Milk Oolong"},
		"price":       {"65000"},
		"sale_price":  {"55000"},
		"stock":       {"25"},
		"category_id": {category.ID},
		"image_url":   {"/uploads/products/oolong.jpg"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(65000), got.Price)
	require.NotNil(t, got.SalePrice)
	assert.Equal(t, int64(55000), *got.SalePrice)
	assert.Equal(t, category.ID, got.CategoryID)
}

func TestCreateProductSalePriceMustBeLower(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db, cache.New(time.Minute))
	category := seedCategory(t, db, "Oolong")

	w := postForm(r, "/admin/products", url.Values{
		"name":        {"Milk Oolong"},
		"price":       {"65000"},
		"sale_price":  {"65000"},
		"category_id": {category.ID},
		"image_url":   {"/uploads/products/oolong.jpg"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateProductRequiresImage(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db, cache.New(time.Minute))
	category := seedCategory(t, db, "Oolong")

	w := postForm(r, "/admin/products", url.Values{
		"name":        {"Milk Oolong"},
		"price":       {"65000"},
		"category_id": {category.ID},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db, cache.New(time.Minute))

	w := postForm(r, "/admin/products", url.Values{
		"name":        {"Milk Oolong"},
		"price":       {"65000"},
		"category_id": {"missing"},
		"image_url":   {"/uploads/products/oolong.jpg"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProductValidation(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db, cache.New(time.Minute))
	category := seedCategory(t, db, "Oolong")

	product := models.Product{
		CategoryID: category.ID, Name: "Milk Oolong",
		Price: 65000, ImageURL: "/uploads/products/oolong.jpg",
	}
	require.NoError(t, db.Create(&product).Error)

	// A sale price at or above the regular price is rejected.
	body, _ := json.Marshal(gin.H{"sale_price": 70000})
	req := httptest.NewRequest(http.MethodPut, "/admin/products/"+product.ID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A lower one is accepted.
	body, _ = json.Marshal(gin.H{"sale_price": 60000})
	req = httptest.NewRequest(http.MethodPut, "/admin/products/"+product.ID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestUpdateProductClearsSalePrice(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db, cache.New(time.Minute))
	category := seedCategory(t, db, "Oolong")

	sale := int64(55000)
	product := models.Product{
		CategoryID: category.ID, Name: "Milk Oolong",
		Price: 65000, SalePrice: &sale, ImageURL: "/uploads/products/oolong.jpg",
	}
	require.NoError(t, db.Create(&product).Error)

	body, _ := json.Marshal(gin.H{"clear_sale_price": true})
	req := httptest.NewRequest(http.MethodPut, "/admin/products/"+product.ID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	assert.Nil(t, stored.SalePrice)
	assert.Equal(t, int64(65000), stored.Price)
}

func TestListProductsFilteredByCategory(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db, cache.New(time.Minute))
	green := seedCategory(t, db, "Green")
	black := seedCategory(t, db, "Black")

	require.NoError(t, db.Create(&models.Product{
		CategoryID: green.ID, Name: "Sencha", Price: 45000, ImageURL: "/i/s.jpg",
	}).Error)
	require.NoError(t, db.Create(&models.Product{
		CategoryID: black.ID, Name: "Earl Grey", Price: 40000, ImageURL: "/i/e.jpg",
	}).Error)

	req := httptest.NewRequest(http.MethodGet, "/shop/products?category_id="+green.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Sencha", got[0].Name)
}

func TestDeleteProductRemovesCartLines(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db, cache.New(time.Minute))
	category := seedCategory(t, db, "Green")

	product := models.Product{
		CategoryID: category.ID, Name: "Sencha", Price: 45000, ImageURL: "/i/s.jpg",
	}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, db.Create(&models.CartItem{
		UserID: "user-1", ProductID: product.ID, Quantity: 2,
	}).Error)

	req := httptest.NewRequest(http.MethodDelete, "/admin/products/"+product.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// No cart line may keep pointing at the vanished product.
	var cartCount int64
	db.Model(&models.CartItem{}).Count(&cartCount)
	assert.Zero(t, cartCount)
}

func TestDeleteCategoryRestrictedWhenReferenced(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db, cache.New(time.Minute))
	category := seedCategory(t, db, "Herbal")

	require.NoError(t, db.Create(&models.Product{
		CategoryID: category.ID, Name: "Chamomile", Price: 35000, ImageURL: "/i/c.jpg",
	}).Error)

	req := httptest.NewRequest(http.MethodDelete, "/admin/categories/"+category.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	db.Model(&models.Category{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteCategoryWithoutProducts(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db, cache.New(time.Minute))
	category := seedCategory(t, db, "Empty Shelf")

	req := httptest.NewRequest(http.MethodDelete, "/admin/categories/"+category.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Category{}).Count(&count)
	assert.Zero(t, count)
}

func TestProductListCacheInvalidatedOnWrite(t *testing.T) {
	db := setupDB(t)
	store := cache.New(time.Minute)
	r := setupRouter(db, store)
	category := seedCategory(t, db, "Green")

	// Prime the cache with an empty list.
	req := httptest.NewRequest(http.MethodGet, "/shop/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Creating a product must invalidate the cached list.
	w = postForm(r, "/admin/products", url.Values{
		"name":        {"Sencha"},
		"price":       {"45000"},
		"category_id": {category.ID},
		"image_url":   {"/i/s.jpg"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/shop/products", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)
}
