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

package services

import (
	"github.com/localnerve/salesdb/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// GetAllIndustries returns every industry ordered by name.
func GetAllIndustries(db *gorm.DB) []models.Industry {
	var industries []models.Industry
	err := db.Clauses(hints.CommentBefore("select", "industries:list")).
		Order("name ASC").
		Find(&industries).Error
	if err != nil {
		logrus.WithError(err).Error("Failed to read industries")
		return []models.Industry{}
	}
	return industries
}

// InsertIndustry creates an industry row. Returns false on any failure,
// including a duplicate tax id.
func InsertIndustry(db *gorm.DB, industry *models.Industry) bool {
	if err := db.Create(industry).Error; err != nil {
		logrus.WithError(err).WithField("id", industry.ID).Error("Failed to insert industry")
		return false
	}
	return true
}

// UpdateIndustry replaces every column of the industry row.
func UpdateIndustry(db *gorm.DB, industry *models.Industry) bool {
	err := db.Model(&models.Industry{}).
		Where("id = ?", industry.ID).
		Select("*").
		Updates(industry).Error
	if err != nil {
		logrus.WithError(err).WithField("id", industry.ID).Error("Failed to update industry")
		return false
	}
	return true
}

// DeleteIndustry removes an industry row. Products reference industries by
// name, not id, so no catalog rows are touched. Returns false when the id
// did not exist.
func DeleteIndustry(db *gorm.DB, id int64) bool {
	result := db.Delete(&models.Industry{}, id)
	if result.Error != nil {
		logrus.WithError(result.Error).WithField("id", id).Error("Failed to delete industry")
		return false
	}
	return result.RowsAffected > 0
}
