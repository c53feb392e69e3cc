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

package services

import (
	"github.com/localnerve/salesdb/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// Read failures are logged and surfaced as an empty list; write failures are
// logged and surfaced as false. Callers never see storage-engine errors, per
// the contract the mobile screens were built against.

// GetAllClients returns every client ordered by trade name.
func GetAllClients(db *gorm.DB) []models.Client {
	var clients []models.Client
	err := db.Clauses(hints.CommentBefore("select", "clients:list")).
		Order("trade_name ASC").
		Find(&clients).Error
	if err != nil {
		logrus.WithError(err).Error("Failed to read clients")
		return []models.Client{}
	}
	return clients
}

// InsertClient creates a client row. Returns false on any failure, including
// a duplicate tax id (unique index violation).
func InsertClient(db *gorm.DB, client *models.Client) bool {
	if err := db.Create(client).Error; err != nil {
		logrus.WithError(err).WithField("id", client.ID).Error("Failed to insert client")
		return false
	}
	return true
}

// UpdateClient replaces every column of the client row, including columns set
// to NULL in the incoming entity.
func UpdateClient(db *gorm.DB, client *models.Client) bool {
	err := db.Model(&models.Client{}).
		Where("id = ?", client.ID).
		Select("*").
		Updates(client).Error
	if err != nil {
		logrus.WithError(err).WithField("id", client.ID).Error("Failed to update client")
		return false
	}
	return true
}

// DeleteClient removes a client row. Returns false when the id did not exist.
func DeleteClient(db *gorm.DB, id int64) bool {
	result := db.Delete(&models.Client{}, id)
	if result.Error != nil {
		logrus.WithError(result.Error).WithField("id", id).Error("Failed to delete client")
		return false
	}
	return result.RowsAffected > 0
}
