// Package dhi is a batch-oriented data validation engine:
//
// - Compile a flat field schema once (Compile / ParseSchemaDoc), reuse it across batches
// - Validate in-memory records (ValidateBatch) or a raw JSON array in a single pass (ValidateJSON)
// - Per-record outcomes are booleans plus the first failing field; only structural
//   problems (unparsable JSON, non-array input) surface as errors via Issues
//
// Design policy:
// - Keep only public APIs in the root package; put primitive checks and the token
//   engine under internal/.
// - Place JSON token drivers under source/ and the CLI under cmd/dhi.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s, _ := dhi.Compile([]dhi.Field{
//		dhi.F("name", "string", 2, 100),
//		dhi.F("email", "email"),
//		dhi.F("age", "int_gt", 18),
//	})
//	res, err := dhi.ValidateJSON(ctx, s, dhi.JSONBytes(data))
//
//	out := s.ValidateRecord(dhi.MapRecord{"age": 25})
package dhi
