package dhi

// CompileOption configures schema compilation.
type CompileOption func(*compileConfig)

type compileConfig struct {
	strict bool
}

// Strict makes Compile fail with Issues on unrecognized rule names, missing
// parameters, and non-integer parameters instead of degrading to always-pass
// behavior. The default (lenient) mode mirrors the original engine: typos
// compile to TagUnknown and validate everything.
func Strict() CompileOption {
	return func(c *compileConfig) { c.strict = true }
}

// JSONOption configures the single-pass JSON pipeline.
type JSONOption func(*jsonConfig)

type jsonConfig struct {
	maxDepth int
	maxBytes int64
}

// MaxDepth limits nesting depth of the input document. Zero means unlimited.
// Exceeding the limit is a structural error (CodeParseError).
func MaxDepth(n int) JSONOption {
	return func(c *jsonConfig) { c.maxDepth = n }
}

// MaxBytes limits how many input bytes the pipeline consumes. Zero means
// unlimited. Exceeding the limit is a structural error (CodeTruncated).
func MaxBytes(n int64) JSONOption {
	return func(c *jsonConfig) { c.maxBytes = n }
}
