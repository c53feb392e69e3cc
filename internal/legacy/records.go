// records.go
//
// A relational sales-management data service with one-time migration from the legacy key-value store
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of salesdb.
// salesdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// salesdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with salesdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package legacy

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/localnerve/salesdb/internal/models"
	"github.com/localnerve/salesdb/internal/types"
)

// Legacy record shapes, keyed the way the mobile client serialized them.
// Every field is a Flex type: the blobs carry no schema and numbers, strings
// and lists arrive in whatever shape the writing screen produced.

// AddressRecord is the embedded address of a legacy client.
type AddressRecord struct {
	Postal     types.FlexString `json:"cep"`
	Street     types.FlexString `json:"rua"`
	Number     types.FlexString `json:"numero"`
	Complement types.FlexString `json:"complemento"`
	District   types.FlexString `json:"bairro"`
	City       types.FlexString `json:"cidade"`
	State      types.FlexString `json:"estado"`
}

// ClientRecord is a legacy client blob entry.
type ClientRecord struct {
	ID         types.FlexInt64  `json:"id"`
	TaxID      types.FlexString `json:"cnpj"`
	TradeName  types.FlexString `json:"nomeFantasia"`
	LegalName  types.FlexString `json:"razaoSocial"`
	StateRegID types.FlexString `json:"inscricaoEstadual"`
	BuyerName  types.FlexString `json:"nomeComprador"`
	Email      types.FlexString `json:"email"`
	Phone      types.FlexString `json:"telefone"`
	BirthDate  types.FlexString `json:"dataNascimento"`
	Address    AddressRecord    `json:"endereco"`
	CreatedAt  types.FlexString `json:"dataCadastro"`
	UpdatedAt  types.FlexString `json:"dataAtualizacao"`
}

// ToModel validates the record and maps it to the relational shape.
func (r *ClientRecord) ToModel() (*models.Client, error) {
	if r.ID == 0 {
		return nil, fmt.Errorf("client record missing id")
	}
	if r.TaxID == "" {
		return nil, fmt.Errorf("client record %d missing cnpj", r.ID)
	}
	if r.TradeName == "" {
		return nil, fmt.Errorf("client record %d missing nomeFantasia", r.ID)
	}

	return &models.Client{
		ID:             r.ID.Int64(),
		TaxID:          r.TaxID.String(),
		TradeName:      r.TradeName.String(),
		LegalName:      r.LegalName.String(),
		StateRegID:     optional(r.StateRegID),
		BuyerName:      optional(r.BuyerName),
		Email:          optional(r.Email),
		Phone:          optional(r.Phone),
		BirthDate:      optional(r.BirthDate),
		AddrPostal:     optional(r.Address.Postal),
		AddrStreet:     optional(r.Address.Street),
		AddrNumber:     optional(r.Address.Number),
		AddrComplement: optional(r.Address.Complement),
		AddrDistrict:   optional(r.Address.District),
		AddrCity:       optional(r.Address.City),
		AddrState:      optional(r.Address.State),
		CreatedAt:      r.CreatedAt.String(),
		UpdatedAt:      optional(r.UpdatedAt),
	}, nil
}

// VariationRecord is a legacy {type, value} pair.
type VariationRecord struct {
	Type  types.FlexString `json:"tipo"`
	Value types.FlexString `json:"valor"`
}

// ProductRecord is a legacy product blob entry. Imagem is the single-image
// field of the oldest app revision; Normalize lifts it into Images.
type ProductRecord struct {
	ID           types.FlexInt64                  `json:"id"`
	Name         types.FlexString                 `json:"nome"`
	Price        types.FlexFloat64                `json:"preco"`
	IndustryName types.FlexString                 `json:"industria"`
	Description  types.FlexString                 `json:"descricao"`
	Image        types.FlexString                 `json:"imagem"`
	Images       types.FlexList[types.FlexString] `json:"imagens"`
	Variations   types.FlexList[VariationRecord]  `json:"variacoes"`
	CreatedAt    types.FlexString                 `json:"dataCadastro"`
	UpdatedAt    types.FlexString                 `json:"dataAtualizacao"`
}

// Normalize lifts the legacy single-image field into the multi-image list
// when the list is absent.
func (r *ProductRecord) Normalize() {
	if len(r.Images) == 0 && r.Image != "" {
		r.Images = types.FlexList[types.FlexString]{r.Image}
	}
}

// ToModel validates the record and maps it to the relational shape.
func (r *ProductRecord) ToModel() (*models.Product, error) {
	if r.ID == 0 {
		return nil, fmt.Errorf("product record missing id")
	}
	if r.Name == "" {
		return nil, fmt.Errorf("product record %d missing nome", r.ID)
	}
	if r.Price < 0 {
		return nil, fmt.Errorf("product record %d has negative price", r.ID)
	}

	r.Normalize()

	p := &models.Product{
		ID:           r.ID.Int64(),
		Name:         r.Name.String(),
		Price:        r.Price.Float64(),
		IndustryName: r.IndustryName.String(),
		Description:  optional(r.Description),
		CreatedAt:    r.CreatedAt.String(),
		UpdatedAt:    optional(r.UpdatedAt),
	}
	for i, img := range r.Images {
		p.Images = append(p.Images, models.ProductImage{Image: img.String(), OrderIndex: i})
	}
	for _, v := range r.Variations {
		p.Variations = append(p.Variations, models.ProductVariation{Type: v.Type.String(), Value: v.Value.String()})
	}
	return p, nil
}

// IndustryRecord is a legacy industry blob entry.
type IndustryRecord struct {
	ID              types.FlexInt64  `json:"id"`
	TaxID           types.FlexString `json:"cnpj"`
	Name            types.FlexString `json:"nome"`
	CommercialPhone types.FlexString `json:"telefoneComercial"`
	SupportPhone    types.FlexString `json:"telefoneSuporte"`
	Email           types.FlexString `json:"email"`
	CreatedAt       types.FlexString `json:"dataCadastro"`
	EditedAt        types.FlexString `json:"dataEdicao"`
}

// ToModel validates the record and maps it to the relational shape.
func (r *IndustryRecord) ToModel() (*models.Industry, error) {
	if r.ID == 0 {
		return nil, fmt.Errorf("industry record missing id")
	}
	if r.TaxID == "" {
		return nil, fmt.Errorf("industry record %d missing cnpj", r.ID)
	}
	if r.Name == "" {
		return nil, fmt.Errorf("industry record %d missing nome", r.ID)
	}

	return &models.Industry{
		ID:              r.ID.Int64(),
		TaxID:           r.TaxID.String(),
		Name:            r.Name.String(),
		CommercialPhone: optional(r.CommercialPhone),
		SupportPhone:    optional(r.SupportPhone),
		Email:           optional(r.Email),
		CreatedAt:       r.CreatedAt.String(),
		EditedAt:        optional(r.EditedAt),
	}, nil
}

// DiscountRecord is a legacy {tipo, valor} discount.
type DiscountRecord struct {
	Type  types.FlexString  `json:"tipo"`
	Value types.FlexFloat64 `json:"valor"`
}

// LineItemRecord is one item of a legacy order.
type LineItemRecord struct {
	ProductID types.FlexInt64   `json:"produtoId"`
	Name      types.FlexString  `json:"nome"`
	Price     types.FlexFloat64 `json:"preco"`
	Quantity  types.FlexInt64   `json:"quantidade"`
	Discount  *DiscountRecord   `json:"desconto"`
	Variation *VariationRecord  `json:"variacao"`
}

// InstallmentRecord is one bank-slip term. The old order screen wrote plain
// day counts, the newer one wrote {dias} objects; accept both.
type InstallmentRecord struct {
	Days types.FlexInt64 `json:"dias"`
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (r *InstallmentRecord) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	if trimmed[0] == '{' {
		type alias InstallmentRecord
		var a alias
		if err := json.Unmarshal(data, &a); err != nil {
			return err
		}
		*r = InstallmentRecord(a)
		return nil
	}
	return json.Unmarshal(data, &r.Days)
}

// OrderRecord is a legacy order blob entry.
type OrderRecord struct {
	ID            types.FlexInt64                   `json:"id"`
	ClientName    types.FlexString                  `json:"cliente"`
	Total         types.FlexFloat64                 `json:"total"`
	Discount      *DiscountRecord                   `json:"desconto"`
	PaymentMethod types.FlexString                  `json:"formaPagamento"`
	Notes         types.FlexString                  `json:"observacoes"`
	Status        types.FlexString                  `json:"status"`
	LineItems     types.FlexList[LineItemRecord]    `json:"itens"`
	Installments  types.FlexList[InstallmentRecord] `json:"prazos"`
	CreatedAt     types.FlexString                  `json:"dataCriacao"`
}

// ToModel validates the record and maps it to the relational shape.
func (r *OrderRecord) ToModel() (*models.Order, error) {
	if r.ID == 0 {
		return nil, fmt.Errorf("order record missing id")
	}
	if r.ClientName == "" {
		return nil, fmt.Errorf("order record %d missing cliente", r.ID)
	}

	o := &models.Order{
		ID:            r.ID.Int64(),
		ClientName:    r.ClientName.String(),
		Total:         r.Total.Float64(),
		PaymentMethod: normalizePaymentMethod(r.PaymentMethod.String()),
		Notes:         optional(r.Notes),
		Status:        normalizeStatus(r.Status.String()),
		CreatedAt:     r.CreatedAt.String(),
	}
	if r.Discount != nil && r.Discount.Type != "" {
		t := r.Discount.Type.String()
		o.DiscountType = &t
		o.DiscountValue = r.Discount.Value.Float64()
	}
	for _, it := range r.LineItems {
		item := models.OrderLineItem{
			Name:     it.Name.String(),
			Price:    it.Price.Float64(),
			Quantity: int(it.Quantity.Int64()),
		}
		if it.ProductID != 0 {
			pid := it.ProductID.Int64()
			item.ProductID = &pid
		}
		if it.Discount != nil && it.Discount.Type != "" {
			t := it.Discount.Type.String()
			item.DiscountType = &t
			item.DiscountValue = it.Discount.Value.Float64()
		}
		if it.Variation != nil && it.Variation.Type != "" {
			vt := it.Variation.Type.String()
			vv := it.Variation.Value.String()
			item.VariationType = &vt
			item.VariationValue = &vv
		}
		o.LineItems = append(o.LineItems, item)
	}
	for _, inst := range r.Installments {
		if inst.Days > 0 {
			o.Installments = append(o.Installments, models.OrderInstallment{Days: int(inst.Days.Int64())})
		}
	}
	return o, nil
}

// normalizePaymentMethod maps the Portuguese tokens the mobile client wrote
// to the canonical enum. Unknown non-empty tokens pass through untouched.
func normalizePaymentMethod(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "dinheiro", "cash":
		return string(models.PaymentMethodCash)
	case "cartao", "cartão", "card":
		return string(models.PaymentMethodCard)
	case "pix":
		return string(models.PaymentMethodPix)
	case "boleto", "bank_slip":
		return string(models.PaymentMethodBankSlip)
	case "":
		return string(models.PaymentMethodCash)
	}
	return raw
}

func normalizeStatus(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pendente", "pending", "":
		return string(models.OrderStatusPending)
	case "processando", "processing":
		return string(models.OrderStatusProcessing)
	case "concluido", "concluído", "completed":
		return string(models.OrderStatusCompleted)
	case "cancelado", "cancelled":
		return string(models.OrderStatusCancelled)
	}
	return raw
}

// optional maps an absent or empty legacy field to NULL, so "not provided"
// stays distinct from "provided but empty" in the relational store.
func optional(s types.FlexString) *string {
	if s == "" {
		return nil
	}
	v := s.String()
	return &v
}
