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

package services

import (
	"errors"

	"github.com/localnerve/salesdb/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetConfiguration reads a configuration value. The second return reports
// whether the key exists; an absent key is not an error.
func GetConfiguration(db *gorm.DB, key string) (string, bool) {
	var entry models.ConfigurationEntry
	err := db.Where("config_key = ?", key).First(&entry).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithError(err).WithField("key", key).Error("Failed to read configuration")
		}
		return "", false
	}
	return entry.Value, true
}

// SetConfiguration upserts a configuration entry by key. Values are opaque;
// callers serialize structured settings before storing.
func SetConfiguration(db *gorm.DB, key, value string) bool {
	entry := models.ConfigurationEntry{Key: key, Value: value}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "config_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
	if err != nil {
		logrus.WithError(err).WithField("key", key).Error("Failed to write configuration")
		return false
	}
	return true
}

// GetAllConfigurations returns every configuration entry as a map.
func GetAllConfigurations(db *gorm.DB) map[string]string {
	var entries []models.ConfigurationEntry
	if err := db.Find(&entries).Error; err != nil {
		logrus.WithError(err).Error("Failed to read configuration entries")
		return map[string]string{}
	}
	result := make(map[string]string, len(entries))
	for _, entry := range entries {
		result[entry.Key] = entry.Value
	}
	return result
}

// DeleteConfiguration removes a configuration entry. Returns false when the
// key did not exist.
func DeleteConfiguration(db *gorm.DB, key string) bool {
	result := db.Where("config_key = ?", key).Delete(&models.ConfigurationEntry{})
	if result.Error != nil {
		logrus.WithError(result.Error).WithField("key", key).Error("Failed to delete configuration")
		return false
	}
	return result.RowsAffected > 0
}
