// orders.go
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

package services

import (
	"github.com/localnerve/salesdb/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"
)

// GetAllOrders returns every order, most recent first, with line items and
// installment terms attached.
func GetAllOrders(db *gorm.DB) []models.Order {
	var orders []models.Order
	err := db.Clauses(hints.CommentBefore("select", "orders:list")).
		Preload("LineItems").
		Preload("Installments").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		logrus.WithError(err).Error("Failed to read orders")
		return []models.Order{}
	}
	return orders
}

// InsertOrder writes the order and its child rows atomically. The total is
// recomputed from the line items; the incoming total is never trusted.
func InsertOrder(db *gorm.DB, order *models.Order) bool {
	// Keep the stored total for itemless orders; legacy records sometimes
	// carried a total with no surviving line items.
	if len(order.LineItems) > 0 {
		order.Total = ComputeOrderTotal(order)
	}
	if order.Status == "" {
		order.Status = string(models.OrderStatusPending)
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return err
		}
		return writeOrderChildren(tx, order)
	})
	if err != nil {
		logrus.WithError(err).WithField("id", order.ID).Error("Failed to insert order")
		return false
	}
	return true
}

// UpdateOrder replaces the order row and its child rows wholesale. Line items
// and installment terms are never incrementally patched.
func UpdateOrder(db *gorm.DB, order *models.Order) bool {
	order.Total = ComputeOrderTotal(order)
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Order{}).
			Where("id = ?", order.ID).
			Select("*").
			Omit(clause.Associations).
			Updates(order).Error
		if err != nil {
			return err
		}
		if err := deleteOrderChildren(tx, order.ID); err != nil {
			return err
		}
		return writeOrderChildren(tx, order)
	})
	if err != nil {
		logrus.WithError(err).WithField("id", order.ID).Error("Failed to update order")
		return false
	}
	return true
}

// DeleteOrder removes an order and its owned line items and installments.
// Returns false when the id did not exist.
func DeleteOrder(db *gorm.DB, id int64) bool {
	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := deleteOrderChildren(tx, id); err != nil {
			return err
		}
		result := tx.Delete(&models.Order{}, id)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		logrus.WithError(err).WithField("id", id).Error("Failed to delete order")
		return false
	}
	return affected > 0
}

// ComputeOrderTotal derives the order total from its line items: unit price
// times quantity, per-item discount applied, then the order-level discount.
// Line prices are snapshots, so the result never depends on the catalog.
func ComputeOrderTotal(order *models.Order) float64 {
	subtotal := 0.0
	for _, item := range order.LineItems {
		line := item.Price * float64(item.Quantity)
		line = applyDiscount(line, item.DiscountType, item.DiscountValue)
		subtotal += line
	}
	return applyDiscount(subtotal, order.DiscountType, order.DiscountValue)
}

func applyDiscount(amount float64, discountType *string, value float64) float64 {
	if discountType == nil || value <= 0 {
		return amount
	}
	switch *discountType {
	case string(models.DiscountTypePercentage):
		amount -= amount * value / 100
	case string(models.DiscountTypeFixed):
		amount -= value
	}
	if amount < 0 {
		return 0
	}
	return amount
}

func writeOrderChildren(tx *gorm.DB, order *models.Order) error {
	for i := range order.LineItems {
		order.LineItems[i].ID = 0
		order.LineItems[i].OrderID = order.ID
	}
	if len(order.LineItems) > 0 {
		if err := tx.Create(&order.LineItems).Error; err != nil {
			return err
		}
	}
	for i := range order.Installments {
		order.Installments[i].ID = 0
		order.Installments[i].OrderID = order.ID
	}
	if len(order.Installments) > 0 {
		if err := tx.Create(&order.Installments).Error; err != nil {
			return err
		}
	}
	return nil
}

func deleteOrderChildren(tx *gorm.DB, orderID int64) error {
	if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderLineItem{}).Error; err != nil {
		return err
	}
	return tx.Where("order_id = ?", orderID).Delete(&models.OrderInstallment{}).Error
}
