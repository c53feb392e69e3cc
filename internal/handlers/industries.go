// industries.go
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

// IndustryHandler handles industry routes
type IndustryHandler struct {
	DB *gorm.DB
}

// GetIndustries handles GET /api/industries
// @Summary List industries
// @Description Get every industry, ordered by name
// @Tags Industries
// @Produce json
// @Success 200 {array} models.Industry
// @Router /industries [get]
func (h *IndustryHandler) GetIndustries(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(services.GetAllIndustries(h.DB))
}

// CreateIndustry handles POST /api/industries
// @Summary Create an industry
// @Tags Industries
// @Accept json
// @Produce json
// @Param body body models.Industry true "Industry to create"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /industries [post]
func (h *IndustryHandler) CreateIndustry(c *fiber.Ctx) error {
	var industry models.Industry
	if err := c.BodyParser(&industry); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "industries.validation.input")
	}
	if err := utils.ValidateStruct(&industry); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "industries.validation.input")
	}

	if industry.CreatedAt == "" {
		industry.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if !services.InsertIndustry(h.DB, &industry) {
		return utils.WriteRejectedResponse(c, "industry")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// UpdateIndustry handles PUT /api/industries/:id
// @Summary Update an industry
// @Description Replace every column of an industry row
// @Tags Industries
// @Accept json
// @Produce json
// @Param id path int true "Industry ID"
// @Param body body models.Industry true "Industry to store"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /industries/{id} [put]
func (h *IndustryHandler) UpdateIndustry(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, "Invalid id", fiber.StatusBadRequest, "industries.validation.id")
	}

	var industry models.Industry
	if err := c.BodyParser(&industry); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "industries.validation.input")
	}
	industry.ID = id
	if err := utils.ValidateStruct(&industry); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "industries.validation.input")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	industry.EditedAt = &now

	if !services.UpdateIndustry(h.DB, &industry) {
		return utils.WriteRejectedResponse(c, "industry")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// DeleteIndustry handles DELETE /api/industries/:id
// @Summary Delete an industry
// @Description Delete an industry; products that reference it by name are untouched
// @Tags Industries
// @Produce json
// @Param id path int true "Industry ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /industries/{id} [delete]
func (h *IndustryHandler) DeleteIndustry(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, "Invalid id", fiber.StatusBadRequest, "industries.validation.id")
	}

	if !services.DeleteIndustry(h.DB, id) {
		return utils.NotFoundResponse(c, "Industry not found")
	}
	return utils.MutationSuccessResponse(c, 1)
}
