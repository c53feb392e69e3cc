package data

import (
	_ "embed"
)

//go:embed legacy/sample-store.json
var SampleLegacyStore []byte
