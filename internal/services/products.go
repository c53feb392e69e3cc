// products.go
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

// GetAllProducts returns every product ordered by name, with images in their
// insertion order and variations attached.
func GetAllProducts(db *gorm.DB) []models.Product {
	var products []models.Product
	err := db.Clauses(hints.CommentBefore("select", "products:list")).
		Preload("Images", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index ASC")
		}).
		Preload("Variations").
		Order("name ASC").
		Find(&products).Error
	if err != nil {
		logrus.WithError(err).Error("Failed to read products")
		return []models.Product{}
	}
	return products
}

// InsertProduct writes the product row and its child rows atomically.
// Statement order inside the transaction is parent first, then children.
func InsertProduct(db *gorm.DB, product *models.Product) bool {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(product).Error; err != nil {
			return err
		}
		return writeProductChildren(tx, product)
	})
	if err != nil {
		logrus.WithError(err).WithField("id", product.ID).Error("Failed to insert product")
		return false
	}
	return true
}

// UpdateProduct replaces the product row and its child rows wholesale: the
// previous images and variations are deleted and the incoming lists inserted.
// No partial diffing.
func UpdateProduct(db *gorm.DB, product *models.Product) bool {
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Product{}).
			Where("id = ?", product.ID).
			Select("*").
			Omit(clause.Associations).
			Updates(product).Error
		if err != nil {
			return err
		}
		if err := deleteProductChildren(tx, product.ID); err != nil {
			return err
		}
		return writeProductChildren(tx, product)
	})
	if err != nil {
		logrus.WithError(err).WithField("id", product.ID).Error("Failed to update product")
		return false
	}
	return true
}

// DeleteProduct removes a product and its owned images and variations.
// Returns false when the id did not exist.
func DeleteProduct(db *gorm.DB, id int64) bool {
	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := deleteProductChildren(tx, id); err != nil {
			return err
		}
		result := tx.Delete(&models.Product{}, id)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		logrus.WithError(err).WithField("id", id).Error("Failed to delete product")
		return false
	}
	return affected > 0
}

func writeProductChildren(tx *gorm.DB, product *models.Product) error {
	for i := range product.Images {
		product.Images[i].ID = 0
		product.Images[i].ProductID = product.ID
		product.Images[i].OrderIndex = i
	}
	if len(product.Images) > 0 {
		if err := tx.Create(&product.Images).Error; err != nil {
			return err
		}
	}
	for i := range product.Variations {
		product.Variations[i].ID = 0
		product.Variations[i].ProductID = product.ID
	}
	if len(product.Variations) > 0 {
		if err := tx.Create(&product.Variations).Error; err != nil {
			return err
		}
	}
	return nil
}

func deleteProductChildren(tx *gorm.DB, productID int64) error {
	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductImage{}).Error; err != nil {
		return err
	}
	return tx.Where("product_id = ?", productID).Delete(&models.ProductVariation{}).Error
}
