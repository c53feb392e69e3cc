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

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/salesdb/internal/models"
	"github.com/localnerve/salesdb/internal/services"
	"github.com/localnerve/salesdb/internal/utils"
	"gorm.io/gorm"
)

// ProductHandler handles product routes
type ProductHandler struct {
	DB *gorm.DB
}

// GetProducts handles GET /api/products
// @Summary List products
// @Description Get every product with images and variations, ordered by name
// @Tags Products
// @Produce json
// @Success 200 {array} models.Product
// @Router /products [get]
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(services.GetAllProducts(h.DB))
}

// CreateProduct handles POST /api/products
// @Summary Create a product
// @Description Create a product together with its images and variations
// @Tags Products
// @Accept json
// @Produce json
// @Param body body models.Product true "Product to create"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "products.validation.input")
	}
	if err := utils.ValidateStruct(&product); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "products.validation.input")
	}

	if product.CreatedAt == "" {
		product.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if !services.InsertProduct(h.DB, &product) {
		return utils.WriteRejectedResponse(c, "product")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// UpdateProduct handles PUT /api/products/:id
// @Summary Update a product
// @Description Replace the product row and its whole image and variation sets
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param body body models.Product true "Product to store"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, "Invalid id", fiber.StatusBadRequest, "products.validation.id")
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "products.validation.input")
	}
	product.ID = id
	if err := utils.ValidateStruct(&product); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "products.validation.input")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	product.UpdatedAt = &now

	if !services.UpdateProduct(h.DB, &product) {
		return utils.WriteRejectedResponse(c, "product")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// DeleteProduct handles DELETE /api/products/:id
// @Summary Delete a product
// @Description Delete a product and its images and variations
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, "Invalid id", fiber.StatusBadRequest, "products.validation.id")
	}

	if !services.DeleteProduct(h.DB, id) {
		return utils.NotFoundResponse(c, "Product not found")
	}
	return utils.MutationSuccessResponse(c, 1)
}
