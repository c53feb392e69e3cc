package services_test

import (
	"testing"

	"github.com/localnerve/salesdb/internal/models"
	"github.com/localnerve/salesdb/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIndustry(id int64, taxID, name string) *models.Industry {
	return &models.Industry{
		ID:        id,
		TaxID:     taxID,
		Name:      name,
		CreatedAt: "2024-01-10T12:00:00Z",
	}
}

func TestGetAllIndustriesOrdersByName(t *testing.T) {
	db := setupTestDB(t)

	require.True(t, services.InsertIndustry(db, sampleIndustry(1, "11.222.333/0001-44", "Vinicola Serra")))
	require.True(t, services.InsertIndustry(db, sampleIndustry(2, "55.666.777/0001-88", "Torrefacao Aurora")))

	industries := services.GetAllIndustries(db)
	require.Len(t, industries, 2)
	assert.Equal(t, "Torrefacao Aurora", industries[0].Name)
	assert.Equal(t, "Vinicola Serra", industries[1].Name)
}

func TestInsertIndustryRejectsDuplicateTaxID(t *testing.T) {
	db := setupTestDB(t)

	require.True(t, services.InsertIndustry(db, sampleIndustry(1, "11.222.333/0001-44", "Torrefacao Aurora")))
	assert.False(t, services.InsertIndustry(db, sampleIndustry(2, "11.222.333/0001-44", "Outra Torrefacao")))
	assert.Len(t, services.GetAllIndustries(db), 1)
}

func TestDeleteIndustryLeavesCatalogUntouched(t *testing.T) {
	db := setupTestDB(t)

	require.True(t, services.InsertIndustry(db, sampleIndustry(1, "11.222.333/0001-44", "Torrefacao Aurora")))
	require.True(t, services.InsertProduct(db, sampleProduct(10, "Cafe Torrado")))

	assert.True(t, services.DeleteIndustry(db, 1))

	// Products reference the industry by name only, so they survive.
	products := services.GetAllProducts(db)
	require.Len(t, products, 1)
	assert.Equal(t, "Torrefacao Aurora", products[0].IndustryName)
}
