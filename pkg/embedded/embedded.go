package embedded

import (
	_ "embed"
)

// Scale catalog: one row per built-in scale type
//
//go:embed data/scale_catalog.csv
var ScaleCatalogCsv []byte
