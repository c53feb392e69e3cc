// configuration.go
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
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/salesdb/internal/services"
	"github.com/localnerve/salesdb/internal/utils"
	"gorm.io/gorm"
)

// ConfigurationHandler handles configuration key/value routes
type ConfigurationHandler struct {
	DB *gorm.DB
}

// GetConfigurations handles GET /api/config
// @Summary List configuration entries
// @Tags Configuration
// @Produce json
// @Success 200 {object} map[string]string
// @Router /config [get]
func (h *ConfigurationHandler) GetConfigurations(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(services.GetAllConfigurations(h.DB))
}

// GetConfiguration handles GET /api/config/:key
// @Summary Get a configuration value
// @Tags Configuration
// @Produce json
// @Param key path string true "Configuration key"
// @Success 200 {object} map[string]string
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /config/{key} [get]
func (h *ConfigurationHandler) GetConfiguration(c *fiber.Ctx) error {
	key := c.Params("key")

	value, found := services.GetConfiguration(h.DB, key)
	if !found {
		return utils.NotFoundResponse(c, "Configuration key not found")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"key":   key,
		"value": value,
	})
}

// SetConfiguration handles PUT /api/config/:key
// @Summary Set a configuration value
// @Description Insert or overwrite a configuration entry
// @Tags Configuration
// @Accept json
// @Produce json
// @Param key path string true "Configuration key"
// @Param body body object true "Value to store"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /config/{key} [put]
func (h *ConfigurationHandler) SetConfiguration(c *fiber.Ctx) error {
	key := c.Params("key")

	var body struct {
		Value string `json:"value"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "config.validation.input")
	}

	if !services.SetConfiguration(h.DB, key, body.Value) {
		return utils.WriteRejectedResponse(c, "configuration")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// DeleteConfiguration handles DELETE /api/config/:key
// @Summary Delete a configuration entry
// @Tags Configuration
// @Produce json
// @Param key path string true "Configuration key"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /config/{key} [delete]
func (h *ConfigurationHandler) DeleteConfiguration(c *fiber.Ctx) error {
	key := c.Params("key")

	if !services.DeleteConfiguration(h.DB, key) {
		return utils.NotFoundResponse(c, "Configuration key not found")
	}
	return utils.MutationSuccessResponse(c, 1)
}
