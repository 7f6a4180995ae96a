package dhi_test

import (
	"context"
	"testing"

	dhi "github.com/dhilabs/dhi-go"
	drvgojson "github.com/dhilabs/dhi-go/source/gojson"
)

// Same pipeline as Benchmark_ValidateJSON_1k_Bytes but with the goccy/go-json
// driver installed, for comparing token sources.
func Benchmark_ValidateJSON_1k_GoJSON(b *testing.B) {
	dhi.SetJSONDriver(drvgojson.Driver())
	b.Cleanup(dhi.UseDefaultJSONDriver)

	ctx := context.Background()
	s := userSchema(b)
	data := userJSON(1000)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dhi.ValidateJSONBytes(ctx, s, data); err != nil {
			b.Fatal(err)
		}
	}
}
