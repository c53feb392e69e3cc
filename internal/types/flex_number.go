// flex_number.go
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

package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The legacy key-value store was written by the mobile client with no schema
// enforcement: ids arrive as numbers or strings, prices as numbers or
// locale-formatted strings. These types absorb that variance at decode time.

// FlexInt64 is an int64 that can be unmarshaled from either a JSON number or a JSON string.
type FlexInt64 int64

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexInt64) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	// Try unmarshaling as a number first
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexInt64(n)
		return nil
	}

	// Fall back to a float, truncating (some writers stored ids as 1700000000000.0)
	var fl float64
	if err := json.Unmarshal(data, &fl); err == nil {
		*f = FlexInt64(int64(fl))
		return nil
	}

	// Try unmarshaling as a string
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		val, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return fmt.Errorf("FlexInt64: invalid int64 string %q: %w", s, err)
		}
		*f = FlexInt64(val)
		return nil
	}

	return fmt.Errorf("FlexInt64: unexpected type, expected number or string")
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexInt64) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(f))
}

// Int64 converts FlexInt64 back to int64.
func (f FlexInt64) Int64() int64 {
	return int64(f)
}

// FlexFloat64 is a float64 that can be unmarshaled from either a JSON number
// or a JSON string, accepting a comma decimal separator.
type FlexFloat64 float64

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexFloat64) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexFloat64(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
		val, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("FlexFloat64: invalid float64 string %q: %w", s, err)
		}
		*f = FlexFloat64(val)
		return nil
	}

	return fmt.Errorf("FlexFloat64: unexpected type, expected number or string")
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexFloat64) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

// Float64 converts FlexFloat64 back to float64.
func (f FlexFloat64) Float64() float64 {
	return float64(f)
}

// FlexString is a string that can be unmarshaled from a JSON string, number
// or boolean.
type FlexString string

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	// Numbers and booleans are taken verbatim
	raw := strings.TrimSpace(string(data))
	if raw != "" && raw[0] != '{' && raw[0] != '[' {
		*f = FlexString(raw)
		return nil
	}

	return fmt.Errorf("FlexString: unexpected type, expected string, number or boolean")
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

// String converts FlexString back to string.
func (f FlexString) String() string {
	return string(f)
}
