// clients.go
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

// ClientHandler handles client routes
type ClientHandler struct {
	DB *gorm.DB
}

// GetClients handles GET /api/clients
// @Summary List clients
// @Description Get every client, ordered by trade name
// @Tags Clients
// @Produce json
// @Success 200 {array} models.Client
// @Router /clients [get]
func (h *ClientHandler) GetClients(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(services.GetAllClients(h.DB))
}

// CreateClient handles POST /api/clients
// @Summary Create a client
// @Description Create a client with a device-assigned id
// @Tags Clients
// @Accept json
// @Produce json
// @Param body body models.Client true "Client to create"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	var client models.Client
	if err := c.BodyParser(&client); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "clients.validation.input")
	}
	if err := utils.ValidateStruct(&client); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "clients.validation.input")
	}

	if client.CreatedAt == "" {
		client.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if !services.InsertClient(h.DB, &client) {
		return utils.WriteRejectedResponse(c, "client")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// UpdateClient handles PUT /api/clients/:id
// @Summary Update a client
// @Description Replace every column of a client row
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param body body models.Client true "Client to store"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, "Invalid id", fiber.StatusBadRequest, "clients.validation.id")
	}

	var client models.Client
	if err := c.BodyParser(&client); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "clients.validation.input")
	}
	client.ID = id
	if err := utils.ValidateStruct(&client); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "clients.validation.input")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	client.UpdatedAt = &now

	if !services.UpdateClient(h.DB, &client) {
		return utils.WriteRejectedResponse(c, "client")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// DeleteClient handles DELETE /api/clients/:id
// @Summary Delete a client
// @Tags Clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, "Invalid id", fiber.StatusBadRequest, "clients.validation.id")
	}

	if !services.DeleteClient(h.DB, id) {
		return utils.NotFoundResponse(c, "Client not found")
	}
	return utils.MutationSuccessResponse(c, 1)
}
