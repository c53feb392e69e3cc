// store.go
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

package legacy

import (
	"encoding/json"
	"fmt"
	"os"
)

// The five keys the mobile client wrote to its key-value store.
const (
	KeyClients    = "clients"
	KeyProducts   = "products"
	KeyIndustries = "industries"
	KeyOrders     = "orders"
	KeySettings   = "settings"
)

// Store reads raw blobs from the superseded key-value store. Read reports
// found=false for an absent key, which is not an error.
type Store interface {
	Read(key string) (raw []byte, found bool, err error)
}

// FileStore reads a JSON dump of the legacy store: one object whose top-level
// keys are the legacy keys. Values may be JSON values directly or, as the
// mobile client exported them, JSON encoded again as strings.
type FileStore struct {
	path    string
	entries map[string]json.RawMessage
}

// NewFileStore opens and parses the dump file at path. A missing file yields
// a store where every key is absent, so a fresh install migrates nothing.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, entries: map[string]json.RawMessage{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read legacy store %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		return nil, fmt.Errorf("failed to parse legacy store %s: %w", path, err)
	}
	return s, nil
}

// Read implements Store.
func (s *FileStore) Read(key string) ([]byte, bool, error) {
	raw, ok := s.entries[key]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return nil, false, nil
	}

	// Unwrap double-encoded values: the key-value store held strings, so an
	// exported value is often a JSON string containing JSON.
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, true, fmt.Errorf("legacy key %s: malformed string value: %w", key, err)
		}
		return []byte(inner), true, nil
	}

	return []byte(raw), true, nil
}

// MemStore is an in-memory Store used by tests and the embedded sample dump.
type MemStore map[string][]byte

// Read implements Store.
func (m MemStore) Read(key string) ([]byte, bool, error) {
	raw, ok := m[key]
	if !ok {
		return nil, false, nil
	}
	return raw, true, nil
}
