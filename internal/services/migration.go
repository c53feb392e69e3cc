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

package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/localnerve/salesdb/internal/legacy"
	"github.com/localnerve/salesdb/internal/models"
	"github.com/localnerve/salesdb/internal/types"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Well-known configuration keys owned by the migration engine.
const (
	MigrationFlagKey      = "legacy_migration_completed"
	MigrationTimestampKey = "legacy_migration_timestamp"
)

// MigrationError is one failed legacy record. A bad record never aborts the
// batch; it lands here and the run continues.
type MigrationError struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Error string `json:"error"`
}

// MigrationStats carries per-category counts of successfully migrated
// records. The field names are the category names the legacy store used.
type MigrationStats struct {
	Clients    int              `json:"clientes"`
	Products   int              `json:"produtos"`
	Industries int              `json:"industrias"`
	Orders     int              `json:"pedidos"`
	Settings   int              `json:"configuracoes"`
	Errors     []MigrationError `json:"errors"`
}

// MigrationResult is the outcome of one migration call.
type MigrationResult struct {
	Success         bool            `json:"success"`
	AlreadyMigrated bool            `json:"alreadyMigrated"`
	Stats           *MigrationStats `json:"stats,omitempty"`
	Error           string          `json:"error,omitempty"`
}

// CheckMigrationStatus reports whether the one-time migration has completed.
func CheckMigrationStatus(db *gorm.DB) bool {
	migrated, err := readMigrationFlag(db)
	if err != nil {
		logrus.WithError(err).Error("Failed to read migration flag")
		return false
	}
	return migrated
}

// MigrateFromLegacyStore performs the one-time transfer of the legacy
// key-value blobs into the relational store. Idempotent: when the completion
// flag is already set the call is a no-op and does zero writes. Per-record
// failures are collected, never fatal; the flag is set after all five legacy
// keys have been processed regardless of how many records failed.
func MigrateFromLegacyStore(db *gorm.DB, store legacy.Store) MigrationResult {
	migrated, err := readMigrationFlag(db)
	if err != nil {
		// The only catastrophic path: nothing has been attempted yet and the
		// flag is unreadable, so the whole run is re-attemptable.
		return MigrationResult{Success: false, Error: fmt.Sprintf("migration flag read failed: %v", err)}
	}
	if migrated {
		return MigrationResult{Success: true, AlreadyMigrated: true}
	}

	started := time.Now().UTC()
	stats := &MigrationStats{Errors: []MigrationError{}}

	migrateClients(db, store, stats)
	migrateProducts(db, store, stats)
	migrateIndustries(db, store, stats)
	migrateOrders(db, store, stats)
	migrateSettings(db, store, stats)

	SetConfiguration(db, MigrationFlagKey, "true")
	SetConfiguration(db, MigrationTimestampKey, started.Format(time.RFC3339))
	recordMigrationRun(db, started, stats)

	logrus.WithFields(logrus.Fields{
		"clients":    stats.Clients,
		"products":   stats.Products,
		"industries": stats.Industries,
		"orders":     stats.Orders,
		"settings":   stats.Settings,
		"errors":     len(stats.Errors),
	}).Info("Legacy store migration finished")

	return MigrationResult{Success: true, Stats: stats}
}

// ResetMigration clears the completion flag so the next start re-attempts the
// migration. This is the manual recovery path after a catastrophic failure;
// records already migrated will surface as duplicate-key errors on the rerun.
func ResetMigration(db *gorm.DB) bool {
	return DeleteConfiguration(db, MigrationFlagKey)
}

func readMigrationFlag(db *gorm.DB) (bool, error) {
	var entry models.ConfigurationEntry
	err := db.Where("config_key = ?", MigrationFlagKey).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return entry.Value == "true", nil
}

// readLegacyList reads one legacy key and splits it into raw records without
// decoding them, so one malformed record cannot poison its neighbors.
// An absent key yields an empty list, which is not an error.
func readLegacyList(store legacy.Store, key string, stats *MigrationStats) []json.RawMessage {
	raw, found, err := store.Read(key)
	if err != nil {
		stats.Errors = append(stats.Errors, MigrationError{Type: key, ID: "-", Error: err.Error()})
		return nil
	}
	if !found {
		return nil
	}
	var records types.FlexList[json.RawMessage]
	if err := json.Unmarshal(raw, &records); err != nil {
		stats.Errors = append(stats.Errors, MigrationError{Type: key, ID: "-", Error: fmt.Sprintf("unparseable blob: %v", err)})
		return nil
	}
	return records.Slice()
}

func migrateClients(db *gorm.DB, store legacy.Store, stats *MigrationStats) {
	for _, raw := range readLegacyList(store, legacy.KeyClients, stats) {
		var rec legacy.ClientRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			stats.addError(legacy.KeyClients, recordID(raw), err)
			continue
		}
		client, err := rec.ToModel()
		if err != nil {
			stats.addError(legacy.KeyClients, recordID(raw), err)
			continue
		}
		if !InsertClient(db, client) {
			stats.addError(legacy.KeyClients, recordID(raw), errInsertRejected)
			continue
		}
		stats.Clients++
	}
}

func migrateProducts(db *gorm.DB, store legacy.Store, stats *MigrationStats) {
	for _, raw := range readLegacyList(store, legacy.KeyProducts, stats) {
		var rec legacy.ProductRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			stats.addError(legacy.KeyProducts, recordID(raw), err)
			continue
		}
		product, err := rec.ToModel()
		if err != nil {
			stats.addError(legacy.KeyProducts, recordID(raw), err)
			continue
		}
		if !InsertProduct(db, product) {
			stats.addError(legacy.KeyProducts, recordID(raw), errInsertRejected)
			continue
		}
		stats.Products++
	}
}

func migrateIndustries(db *gorm.DB, store legacy.Store, stats *MigrationStats) {
	for _, raw := range readLegacyList(store, legacy.KeyIndustries, stats) {
		var rec legacy.IndustryRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			stats.addError(legacy.KeyIndustries, recordID(raw), err)
			continue
		}
		industry, err := rec.ToModel()
		if err != nil {
			stats.addError(legacy.KeyIndustries, recordID(raw), err)
			continue
		}
		if !InsertIndustry(db, industry) {
			stats.addError(legacy.KeyIndustries, recordID(raw), errInsertRejected)
			continue
		}
		stats.Industries++
	}
}

func migrateOrders(db *gorm.DB, store legacy.Store, stats *MigrationStats) {
	for _, raw := range readLegacyList(store, legacy.KeyOrders, stats) {
		var rec legacy.OrderRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			stats.addError(legacy.KeyOrders, recordID(raw), err)
			continue
		}
		order, err := rec.ToModel()
		if err != nil {
			stats.addError(legacy.KeyOrders, recordID(raw), err)
			continue
		}
		if !InsertOrder(db, order) {
			stats.addError(legacy.KeyOrders, recordID(raw), errInsertRejected)
			continue
		}
		stats.Orders++
	}
}

func migrateSettings(db *gorm.DB, store legacy.Store, stats *MigrationStats) {
	raw, found, err := store.Read(legacy.KeySettings)
	if err != nil {
		stats.Errors = append(stats.Errors, MigrationError{Type: legacy.KeySettings, ID: "-", Error: err.Error()})
		return
	}
	if !found {
		return
	}

	var settings map[string]json.RawMessage
	if err := json.Unmarshal(raw, &settings); err != nil {
		stats.Errors = append(stats.Errors, MigrationError{Type: legacy.KeySettings, ID: "-", Error: fmt.Sprintf("unparseable blob: %v", err)})
		return
	}

	for key, value := range settings {
		if !SetConfiguration(db, key, settingValue(value)) {
			stats.Errors = append(stats.Errors, MigrationError{Type: legacy.KeySettings, ID: key, Error: errInsertRejected.Error()})
			continue
		}
		stats.Settings++
	}
}

// settingValue renders a legacy setting as the opaque string the
// configuration store holds: plain strings are unwrapped, everything else is
// kept as compact JSON.
func settingValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func recordMigrationRun(db *gorm.DB, started time.Time, stats *MigrationStats) {
	payload, err := json.Marshal(stats)
	if err != nil {
		logrus.WithError(err).Error("Failed to marshal migration stats")
		return
	}
	run := models.MigrationRun{
		ID:         uuid.NewString(),
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
		Stats:      models.JSON{JSON: datatypes.JSON(payload)},
		ErrorCount: len(stats.Errors),
	}
	if err := db.Create(&run).Error; err != nil {
		logrus.WithError(err).Error("Failed to record migration run")
	}
}

var errInsertRejected = errors.New("insert rejected by the store")

func (s *MigrationStats) addError(recordType, id string, err error) {
	s.Errors = append(s.Errors, MigrationError{Type: recordType, ID: id, Error: err.Error()})
}

// recordID best-effort extracts the id of a raw legacy record for the error
// report; malformed records often still carry a readable id.
func recordID(raw json.RawMessage) string {
	var probe struct {
		ID types.FlexInt64 `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil || probe.ID == 0 {
		return "-"
	}
	return strconv.FormatInt(probe.ID.Int64(), 10)
}
