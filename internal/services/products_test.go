package services_test

import (
	"testing"

	"github.com/localnerve/salesdb/internal/models"
	"github.com/localnerve/salesdb/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduct(id int64, name string, images ...string) *models.Product {
	p := &models.Product{
		ID:           id,
		Name:         name,
		Price:        12.50,
		IndustryName: "Torrefacao Aurora",
		CreatedAt:    "2024-02-01T08:00:00Z",
	}
	for i, img := range images {
		p.Images = append(p.Images, models.ProductImage{Image: img, OrderIndex: i})
	}
	return p
}

func TestProductImageOrderSurvivesRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	require.True(t, services.InsertProduct(db, sampleProduct(1, "Cafe Torrado", "frente.jpg", "verso.jpg", "lateral.jpg")))

	products := services.GetAllProducts(db)
	require.Len(t, products, 1)
	require.Len(t, products[0].Images, 3)
	assert.Equal(t, "frente.jpg", products[0].Images[0].Image)
	assert.Equal(t, "verso.jpg", products[0].Images[1].Image)
	assert.Equal(t, "lateral.jpg", products[0].Images[2].Image)
}

func TestUpdateProductReplacesChildSetsWholesale(t *testing.T) {
	db := setupTestDB(t)

	original := sampleProduct(1, "Cafe Torrado", "frente.jpg", "verso.jpg")
	original.Variations = []models.ProductVariation{
		{Type: "moagem", Value: "fina"},
		{Type: "moagem", Value: "grossa"},
	}
	require.True(t, services.InsertProduct(db, original))

	replacement := sampleProduct(1, "Cafe Torrado", "nova-frente.jpg")
	replacement.Variations = []models.ProductVariation{{Type: "moagem", Value: "media"}}
	require.True(t, services.UpdateProduct(db, replacement))

	products := services.GetAllProducts(db)
	require.Len(t, products, 1)
	require.Len(t, products[0].Images, 1)
	assert.Equal(t, "nova-frente.jpg", products[0].Images[0].Image)
	require.Len(t, products[0].Variations, 1)
	assert.Equal(t, "media", products[0].Variations[0].Value)

	// No orphan child rows survive the replacement.
	var imageCount, variationCount int64
	db.Model(&models.ProductImage{}).Count(&imageCount)
	db.Model(&models.ProductVariation{}).Count(&variationCount)
	assert.Equal(t, int64(1), imageCount)
	assert.Equal(t, int64(1), variationCount)
}

func TestDeleteProductRemovesChildren(t *testing.T) {
	db := setupTestDB(t)

	product := sampleProduct(1, "Cafe Torrado", "frente.jpg", "verso.jpg")
	product.Variations = []models.ProductVariation{{Type: "moagem", Value: "fina"}}
	require.True(t, services.InsertProduct(db, product))

	assert.False(t, services.DeleteProduct(db, 99))
	assert.True(t, services.DeleteProduct(db, 1))

	var imageCount, variationCount int64
	db.Model(&models.ProductImage{}).Count(&imageCount)
	db.Model(&models.ProductVariation{}).Count(&variationCount)
	assert.Zero(t, imageCount)
	assert.Zero(t, variationCount)
}

func TestGetAllProductsOrdersByName(t *testing.T) {
	db := setupTestDB(t)

	require.True(t, services.InsertProduct(db, sampleProduct(1, "Torrone")))
	require.True(t, services.InsertProduct(db, sampleProduct(2, "Biscoito")))

	products := services.GetAllProducts(db)
	require.Len(t, products, 2)
	assert.Equal(t, "Biscoito", products[0].Name)
	assert.Equal(t, "Torrone", products[1].Name)
}
