package services_test

import (
	"testing"

	"github.com/localnerve/salesdb/internal/models"
	"github.com/localnerve/salesdb/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleClient(id int64, taxID, tradeName string) *models.Client {
	return &models.Client{
		ID:        id,
		TaxID:     taxID,
		TradeName: tradeName,
		LegalName: tradeName + " LTDA",
		CreatedAt: "2024-01-15T10:00:00Z",
	}
}

func TestGetAllClientsOrdersByTradeName(t *testing.T) {
	db := setupTestDB(t)

	require.True(t, services.InsertClient(db, sampleClient(1, "11.111.111/0001-11", "Zebra Distribuidora")))
	require.True(t, services.InsertClient(db, sampleClient(2, "22.222.222/0001-22", "Armazem do Porto")))

	clients := services.GetAllClients(db)
	require.Len(t, clients, 2)
	assert.Equal(t, "Armazem do Porto", clients[0].TradeName)
	assert.Equal(t, "Zebra Distribuidora", clients[1].TradeName)
}

func TestInsertClientRejectsDuplicateTaxID(t *testing.T) {
	db := setupTestDB(t)

	require.True(t, services.InsertClient(db, sampleClient(1, "11.111.111/0001-11", "Mercado A")))
	assert.False(t, services.InsertClient(db, sampleClient(2, "11.111.111/0001-11", "Mercado B")))

	// The rejected write left no trace.
	assert.Len(t, services.GetAllClients(db), 1)
}

func TestUpdateClientClearsAbsentOptionals(t *testing.T) {
	db := setupTestDB(t)

	client := sampleClient(1, "11.111.111/0001-11", "Mercado A")
	client.Email = strptr("antigo@mercado.com.br")
	client.Phone = strptr("(11) 91234-5678")
	require.True(t, services.InsertClient(db, client))

	updated := sampleClient(1, "11.111.111/0001-11", "Mercado A")
	updated.Phone = strptr("(11) 95555-0000")
	// Email intentionally absent: the whole row is replaced.
	require.True(t, services.UpdateClient(db, updated))

	clients := services.GetAllClients(db)
	require.Len(t, clients, 1)
	assert.Nil(t, clients[0].Email)
	require.NotNil(t, clients[0].Phone)
	assert.Equal(t, "(11) 95555-0000", *clients[0].Phone)
}

func TestDeleteClient(t *testing.T) {
	db := setupTestDB(t)

	require.True(t, services.InsertClient(db, sampleClient(1, "11.111.111/0001-11", "Mercado A")))

	assert.False(t, services.DeleteClient(db, 99))
	assert.True(t, services.DeleteClient(db, 1))
	assert.Empty(t, services.GetAllClients(db))
}
