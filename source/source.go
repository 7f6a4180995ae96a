package source

import (
	dhi "github.com/dhilabs/dhi-go"
	drvgojson "github.com/dhilabs/dhi-go/source/gojson"
)

// init in a separate package to avoid an import cycle in root. Importing this
// package (blank import is enough) makes go-json the default driver.
func init() { dhi.SetJSONDriver(drvgojson.Driver()) }
