package legacy_test

import (
	"encoding/json"
	"testing"

	"github.com/localnerve/salesdb/internal/legacy"
	"github.com/localnerve/salesdb/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRecordToModel(t *testing.T) {
	blob := `{
		"id": "17",
		"cnpj": "12.345.678/0001-90",
		"nomeFantasia": "Mercado Central",
		"razaoSocial": "Mercado Central LTDA",
		"endereco": {"cep": "01310-100", "rua": "Avenida Paulista", "numero": 1578},
		"dataCadastro": "2024-03-12T14:22:05Z"
	}`

	var rec legacy.ClientRecord
	require.NoError(t, json.Unmarshal([]byte(blob), &rec))

	client, err := rec.ToModel()
	require.NoError(t, err)
	assert.Equal(t, int64(17), client.ID)
	assert.Equal(t, "Mercado Central", client.TradeName)
	require.NotNil(t, client.AddrNumber)
	assert.Equal(t, "1578", *client.AddrNumber)
	// Absent optionals stay NULL, not empty strings.
	assert.Nil(t, client.Email)
	assert.Nil(t, client.AddrComplement)
}

func TestClientRecordValidation(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"missing id", `{"cnpj": "x", "nomeFantasia": "y"}`},
		{"missing cnpj", `{"id": 1, "nomeFantasia": "y"}`},
		{"missing trade name", `{"id": 1, "cnpj": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec legacy.ClientRecord
			require.NoError(t, json.Unmarshal([]byte(tt.blob), &rec))
			_, err := rec.ToModel()
			assert.Error(t, err)
		})
	}
}

func TestProductRecordLiftsSingleImage(t *testing.T) {
	blob := `{"id": 10, "nome": "Cafe Torrado", "preco": "24,90", "industria": "Aurora", "imagem": "cafe.jpg"}`

	var rec legacy.ProductRecord
	require.NoError(t, json.Unmarshal([]byte(blob), &rec))

	product, err := rec.ToModel()
	require.NoError(t, err)
	assert.InDelta(t, 24.90, product.Price, 0.001)
	require.Len(t, product.Images, 1)
	assert.Equal(t, "cafe.jpg", product.Images[0].Image)
	assert.Equal(t, 0, product.Images[0].OrderIndex)
}

func TestProductRecordImageListWins(t *testing.T) {
	blob := `{"id": 10, "nome": "Cafe", "preco": 1, "imagem": "velha.jpg", "imagens": ["a.jpg", "b.jpg"]}`

	var rec legacy.ProductRecord
	require.NoError(t, json.Unmarshal([]byte(blob), &rec))

	product, err := rec.ToModel()
	require.NoError(t, err)
	require.Len(t, product.Images, 2)
	assert.Equal(t, "a.jpg", product.Images[0].Image)
	assert.Equal(t, 1, product.Images[1].OrderIndex)
}

func TestProductRecordRejectsNegativePrice(t *testing.T) {
	blob := `{"id": 10, "nome": "Cafe", "preco": -1}`

	var rec legacy.ProductRecord
	require.NoError(t, json.Unmarshal([]byte(blob), &rec))
	_, err := rec.ToModel()
	assert.Error(t, err)
}

func TestOrderRecordToModel(t *testing.T) {
	blob := `{
		"id": 500,
		"cliente": "Mercado Central",
		"formaPagamento": "Boleto",
		"status": "Pendente",
		"desconto": {"tipo": "fixed", "valor": 5},
		"itens": [
			{"produtoId": 11, "nome": "Biscoito", "preco": 9.9, "quantidade": "2",
			 "variacao": {"tipo": "sabor", "valor": "chocolate"}}
		],
		"prazos": [30, {"dias": 60}, 0],
		"dataCriacao": "2024-06-02T16:45:00Z"
	}`

	var rec legacy.OrderRecord
	require.NoError(t, json.Unmarshal([]byte(blob), &rec))

	order, err := rec.ToModel()
	require.NoError(t, err)
	assert.Equal(t, string(models.PaymentMethodBankSlip), order.PaymentMethod)
	assert.Equal(t, string(models.OrderStatusPending), order.Status)

	require.NotNil(t, order.DiscountType)
	assert.Equal(t, string(models.DiscountTypeFixed), *order.DiscountType)
	assert.InDelta(t, 5, order.DiscountValue, 0.001)

	require.Len(t, order.LineItems, 1)
	item := order.LineItems[0]
	require.NotNil(t, item.ProductID)
	assert.Equal(t, int64(11), *item.ProductID)
	assert.Equal(t, 2, item.Quantity)
	require.NotNil(t, item.VariationType)
	assert.Equal(t, "sabor", *item.VariationType)

	// The zero-day term is dropped; both installment shapes are accepted.
	require.Len(t, order.Installments, 2)
	assert.Equal(t, 30, order.Installments[0].Days)
	assert.Equal(t, 60, order.Installments[1].Days)
}

func TestOrderRecordSingleItemObject(t *testing.T) {
	// The oldest order screen wrote a bare object where a list belongs.
	blob := `{"id": 500, "cliente": "Mercado", "itens": {"nome": "Cafe", "preco": 24.9, "quantidade": 1}}`

	var rec legacy.OrderRecord
	require.NoError(t, json.Unmarshal([]byte(blob), &rec))

	order, err := rec.ToModel()
	require.NoError(t, err)
	require.Len(t, order.LineItems, 1)
	assert.Equal(t, "Cafe", order.LineItems[0].Name)
}

func TestNormalizationDefaults(t *testing.T) {
	blob := `{"id": 1, "cliente": "Mercado"}`

	var rec legacy.OrderRecord
	require.NoError(t, json.Unmarshal([]byte(blob), &rec))

	order, err := rec.ToModel()
	require.NoError(t, err)
	assert.Equal(t, string(models.PaymentMethodCash), order.PaymentMethod)
	assert.Equal(t, string(models.OrderStatusPending), order.Status)
	assert.Nil(t, order.DiscountType)
}
