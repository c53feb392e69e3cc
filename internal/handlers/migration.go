// migration.go
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
	"github.com/localnerve/salesdb/internal/legacy"
	"github.com/localnerve/salesdb/internal/services"
	"github.com/localnerve/salesdb/internal/utils"
	"gorm.io/gorm"
)

// MigrationHandler handles legacy-store migration routes
type MigrationHandler struct {
	DB    *gorm.DB
	Store legacy.Store
}

// GetMigrationStatus handles GET /api/migration
// @Summary Get migration status
// @Tags Migration
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /migration [get]
func (h *MigrationHandler) GetMigrationStatus(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"migrated": services.CheckMigrationStatus(h.DB),
	})
}

// RunMigration handles POST /api/migration
// @Summary Run the legacy-store migration
// @Description Import the legacy key-value dump; a no-op when already completed
// @Tags Migration
// @Produce json
// @Success 200 {object} services.MigrationResult
// @Failure 500 {object} services.MigrationResult
// @Router /migration [post]
func (h *MigrationHandler) RunMigration(c *fiber.Ctx) error {
	result := services.MigrateFromLegacyStore(h.DB, h.Store)
	status := fiber.StatusOK
	if !result.Success {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(result)
}

// ResetMigration handles DELETE /api/migration
// @Summary Reset the migration completion flag
// @Description Clear the completion flag so the next run re-imports the legacy dump
// @Tags Migration
// @Produce json
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /migration [delete]
func (h *MigrationHandler) ResetMigration(c *fiber.Ctx) error {
	if !services.ResetMigration(h.DB) {
		return utils.WriteRejectedResponse(c, "migration")
	}
	return utils.MutationSuccessResponse(c, 1)
}
