package dhi_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"

	dhi "github.com/dhilabs/dhi-go"
)

// --- Fixtures ---

func userSchema(tb testing.TB) *dhi.Schema {
	tb.Helper()
	s, err := dhi.Compile([]dhi.Field{
		dhi.F("id", "uuid"),
		dhi.F("name", "string", 1, 100),
		dhi.F("email", "email"),
		dhi.F("age", "int_range", 0, 150),
	}, dhi.Strict())
	if err != nil {
		tb.Fatalf("compile schema: %v", err)
	}
	return s
}

func userRecords(n int) []map[string]any {
	recs := make([]map[string]any, n)
	for i := range recs {
		recs[i] = map[string]any{
			"id":    uuid.NewString(),
			"name":  fmt.Sprintf("user-%d", i),
			"email": fmt.Sprintf("user%d@example.com", i),
			"age":   int64(i % 120),
		}
	}
	return recs
}

func userJSON(n int) []byte {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `{"id":%q,"name":"user-%d","email":"user%d@example.com","age":%d}`,
			uuid.NewString(), i, i, i%120)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

// --- Record path ---

func Benchmark_ValidateRecord_Valid(b *testing.B) {
	s := userSchema(b)
	rec := dhi.MapRecord(userRecords(1)[0])
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if out := s.ValidateRecord(rec); !out.Valid {
			b.Fatalf("record must be valid, failed at %q", out.FailingField)
		}
	}
}

func Benchmark_ValidateRecord_FirstFieldFails(b *testing.B) {
	s := userSchema(b)
	rec := dhi.MapRecord{"id": "not-a-uuid"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if out := s.ValidateRecord(rec); out.Valid {
			b.Fatal("record must fail")
		}
	}
}

// --- Batch path ---

func Benchmark_ValidateBatch_1k(b *testing.B) {
	ctx := context.Background()
	s := userSchema(b)
	recs := userRecords(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res := dhi.ValidateBatch(ctx, s, recs)
		if res.ValidCount != len(recs) {
			b.Fatalf("valid %d/%d", res.ValidCount, len(recs))
		}
	}
}

func Benchmark_CompilePerBatch_1k(b *testing.B) {
	ctx := context.Background()
	recs := userRecords(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res := dhi.ValidateBatch(ctx, userSchema(b), recs)
		if res.ValidCount != len(recs) {
			b.Fatalf("valid %d/%d", res.ValidCount, len(recs))
		}
	}
}

// --- JSON pipeline ---

func Benchmark_ValidateJSON_1k_Bytes(b *testing.B) {
	ctx := context.Background()
	s := userSchema(b)
	data := userJSON(1000)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := dhi.ValidateJSONBytes(ctx, s, data)
		if err != nil {
			b.Fatal(err)
		}
		if res.ValidCount != res.Total() {
			b.Fatalf("valid %d/%d", res.ValidCount, res.Total())
		}
	}
}

func Benchmark_ValidateJSON_1k_Reader(b *testing.B) {
	ctx := context.Background()
	s := userSchema(b)
	data := userJSON(1000)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := bytes.NewReader(data)
		if _, err := dhi.ValidateJSON(ctx, s, dhi.JSONReader(r)); err != nil {
			b.Fatal(err)
		}
	}
}
