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

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/salesdb/internal/models"
	"github.com/localnerve/salesdb/internal/services"
	"github.com/localnerve/salesdb/internal/utils"
	"gorm.io/gorm"
)

// OrderHandler handles order routes
type OrderHandler struct {
	DB *gorm.DB
}

// GetOrders handles GET /api/orders
// @Summary List orders
// @Description Get every order with line items and installments, newest first
// @Tags Orders
// @Produce json
// @Success 200 {array} models.Order
// @Router /orders [get]
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(services.GetAllOrders(h.DB))
}

// CreateOrder handles POST /api/orders
// @Summary Create an order
// @Description Create an order with its line items and installment terms
// @Tags Orders
// @Accept json
// @Produce json
// @Param body body models.Order true "Order to create"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var order models.Order
	if err := c.BodyParser(&order); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "orders.validation.input")
	}
	if err := utils.ValidateStruct(&order); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "orders.validation.input")
	}

	if order.CreatedAt == "" {
		order.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if !services.InsertOrder(h.DB, &order) {
		return utils.WriteRejectedResponse(c, "order")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// UpdateOrder handles PUT /api/orders/:id
// @Summary Update an order
// @Description Replace the order row and its whole line-item and installment sets
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param body body models.Order true "Order to store"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /orders/{id} [put]
func (h *OrderHandler) UpdateOrder(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, "Invalid id", fiber.StatusBadRequest, "orders.validation.id")
	}

	var order models.Order
	if err := c.BodyParser(&order); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "orders.validation.input")
	}
	order.ID = id
	if err := utils.ValidateStruct(&order); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "orders.validation.input")
	}

	if !services.UpdateOrder(h.DB, &order) {
		return utils.WriteRejectedResponse(c, "order")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// DeleteOrder handles DELETE /api/orders/:id
// @Summary Delete an order
// @Description Delete an order and its line items and installments
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, "Invalid id", fiber.StatusBadRequest, "orders.validation.id")
	}

	if !services.DeleteOrder(h.DB, id) {
		return utils.NotFoundResponse(c, "Order not found")
	}
	return utils.MutationSuccessResponse(c, 1)
}
