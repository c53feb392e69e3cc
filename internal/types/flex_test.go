package types_test

import (
	"encoding/json"
	"testing"

	"github.com/localnerve/salesdb/internal/types"
)

func TestFlexInt64(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"number", `42`, 42, false},
		{"string", `"42"`, 42, false},
		{"string with spaces", `" 42 "`, 42, false},
		{"float truncates", `1700000000000.0`, 1700000000000, false},
		{"null", `null`, 0, false},
		{"bad string", `"abc"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f types.FlexInt64
			err := json.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.Int64() != tt.want {
				t.Errorf("got %d, want %d", f.Int64(), tt.want)
			}
		})
	}
}

func TestFlexFloat64(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"number", `24.9`, 24.9},
		{"string", `"24.9"`, 24.9},
		{"comma separator", `"24,90"`, 24.9},
		{"null", `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f types.FlexFloat64
			if err := json.Unmarshal([]byte(tt.input), &f); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.Float64() != tt.want {
				t.Errorf("got %v, want %v", f.Float64(), tt.want)
			}
		})
	}
}

func TestFlexString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"string", `"hello"`, "hello"},
		{"number verbatim", `42`, "42"},
		{"boolean verbatim", `true`, "true"},
		{"null", `null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f types.FlexString
			if err := json.Unmarshal([]byte(tt.input), &f); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.String() != tt.want {
				t.Errorf("got %q, want %q", f.String(), tt.want)
			}
		})
	}
}

func TestFlexListAcceptsSingleObject(t *testing.T) {
	type pair struct {
		Key string `json:"key"`
	}

	var fromList types.FlexList[pair]
	if err := json.Unmarshal([]byte(`[{"key":"a"},{"key":"b"}]`), &fromList); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fromList) != 2 {
		t.Fatalf("got %d elements, want 2", len(fromList))
	}

	var fromObject types.FlexList[pair]
	if err := json.Unmarshal([]byte(`{"key":"a"}`), &fromObject); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fromObject) != 1 || fromObject[0].Key != "a" {
		t.Fatalf("single object was not lifted into a list: %+v", fromObject)
	}
}
