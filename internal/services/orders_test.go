package services_test

import (
	"testing"

	"github.com/localnerve/salesdb/internal/models"
	"github.com/localnerve/salesdb/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder(id int64, createdAt string, items ...models.OrderLineItem) *models.Order {
	return &models.Order{
		ID:            id,
		ClientName:    "Mercado Central",
		PaymentMethod: string(models.PaymentMethodBankSlip),
		Status:        string(models.OrderStatusPending),
		LineItems:     items,
		CreatedAt:     createdAt,
	}
}

func TestComputeOrderTotal(t *testing.T) {
	percentage := string(models.DiscountTypePercentage)
	fixed := string(models.DiscountTypeFixed)

	tests := []struct {
		name  string
		order *models.Order
		want  float64
	}{
		{
			name: "no discounts",
			order: &models.Order{LineItems: []models.OrderLineItem{
				{Price: 9.90, Quantity: 2},
			}},
			want: 19.80,
		},
		{
			name: "per item percentage",
			order: &models.Order{LineItems: []models.OrderLineItem{
				{Price: 100, Quantity: 1, DiscountType: &percentage, DiscountValue: 10},
				{Price: 50, Quantity: 2},
			}},
			want: 190,
		},
		{
			name: "order level fixed",
			order: &models.Order{
				DiscountType:  &fixed,
				DiscountValue: 5,
				LineItems: []models.OrderLineItem{
					{Price: 10, Quantity: 3},
				},
			},
			want: 25,
		},
		{
			name: "discount never goes negative",
			order: &models.Order{
				DiscountType:  &fixed,
				DiscountValue: 100,
				LineItems: []models.OrderLineItem{
					{Price: 10, Quantity: 1},
				},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, services.ComputeOrderTotal(tt.order), 0.001)
		})
	}
}

func TestInsertOrderRecomputesTotalFromItems(t *testing.T) {
	db := setupTestDB(t)

	order := sampleOrder(1, "2024-06-02T16:45:00Z", models.OrderLineItem{
		Name: "Biscoito Amanteigado", Price: 9.90, Quantity: 2,
	})
	order.Total = 999 // never trusted
	require.True(t, services.InsertOrder(db, order))

	orders := services.GetAllOrders(db)
	require.Len(t, orders, 1)
	assert.InDelta(t, 19.80, orders[0].Total, 0.001)
}

func TestInsertOrderKeepsStoredTotalWhenItemless(t *testing.T) {
	db := setupTestDB(t)

	order := sampleOrder(1, "2024-06-02T16:45:00Z")
	order.Total = 42.50
	require.True(t, services.InsertOrder(db, order))

	orders := services.GetAllOrders(db)
	require.Len(t, orders, 1)
	assert.InDelta(t, 42.50, orders[0].Total, 0.001)
}

func TestGetAllOrdersNewestFirst(t *testing.T) {
	db := setupTestDB(t)

	require.True(t, services.InsertOrder(db, sampleOrder(1, "2024-06-02T16:45:00Z")))
	require.True(t, services.InsertOrder(db, sampleOrder(2, "2024-07-10T09:00:00Z")))

	orders := services.GetAllOrders(db)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(2), orders[0].ID)
	assert.Equal(t, int64(1), orders[1].ID)
}

func TestUpdateOrderReplacesChildSetsWholesale(t *testing.T) {
	db := setupTestDB(t)

	order := sampleOrder(1, "2024-06-02T16:45:00Z",
		models.OrderLineItem{Name: "Cafe Torrado", Price: 24.90, Quantity: 1},
		models.OrderLineItem{Name: "Biscoito Amanteigado", Price: 9.90, Quantity: 2},
	)
	order.Installments = []models.OrderInstallment{{Days: 30}, {Days: 60}}
	require.True(t, services.InsertOrder(db, order))

	replacement := sampleOrder(1, "2024-06-02T16:45:00Z",
		models.OrderLineItem{Name: "Cafe Torrado", Price: 24.90, Quantity: 3},
	)
	replacement.Installments = []models.OrderInstallment{{Days: 45}}
	require.True(t, services.UpdateOrder(db, replacement))

	orders := services.GetAllOrders(db)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].LineItems, 1)
	assert.Equal(t, 3, orders[0].LineItems[0].Quantity)
	require.Len(t, orders[0].Installments, 1)
	assert.Equal(t, 45, orders[0].Installments[0].Days)
	assert.InDelta(t, 74.70, orders[0].Total, 0.001)

	var itemCount, installmentCount int64
	db.Model(&models.OrderLineItem{}).Count(&itemCount)
	db.Model(&models.OrderInstallment{}).Count(&installmentCount)
	assert.Equal(t, int64(1), itemCount)
	assert.Equal(t, int64(1), installmentCount)
}

func TestOrderSnapshotsSurviveCatalogEdits(t *testing.T) {
	db := setupTestDB(t)

	product := sampleProduct(10, "Cafe Torrado")
	product.Price = 24.90
	require.True(t, services.InsertProduct(db, product))

	pid := int64(10)
	order := sampleOrder(1, "2024-06-02T16:45:00Z", models.OrderLineItem{
		ProductID: &pid, Name: "Cafe Torrado", Price: 24.90, Quantity: 1,
	})
	require.True(t, services.InsertOrder(db, order))

	// Reprice the product after the sale.
	repriced := sampleProduct(10, "Cafe Torrado")
	repriced.Price = 31.00
	require.True(t, services.UpdateProduct(db, repriced))

	orders := services.GetAllOrders(db)
	require.Len(t, orders, 1)
	assert.InDelta(t, 24.90, orders[0].LineItems[0].Price, 0.001)
	assert.InDelta(t, 24.90, orders[0].Total, 0.001)
}

func TestDeleteOrderRemovesChildren(t *testing.T) {
	db := setupTestDB(t)

	order := sampleOrder(1, "2024-06-02T16:45:00Z",
		models.OrderLineItem{Name: "Cafe Torrado", Price: 24.90, Quantity: 1},
	)
	order.Installments = []models.OrderInstallment{{Days: 30}}
	require.True(t, services.InsertOrder(db, order))

	assert.False(t, services.DeleteOrder(db, 99))
	assert.True(t, services.DeleteOrder(db, 1))

	var itemCount, installmentCount int64
	db.Model(&models.OrderLineItem{}).Count(&itemCount)
	db.Model(&models.OrderInstallment{}).Count(&installmentCount)
	assert.Zero(t, itemCount)
	assert.Zero(t, installmentCount)
}
