package engine

// Resource guard for TokenSource: caps nesting depth and consumed bytes while
// streaming untrusted input. Adapted enforcement stays in the token layer so
// every driver gets it for free.

// GuardOptions controls the limits; zero values disable a limit.
type GuardOptions struct {
	MaxDepth int
	MaxBytes int64
}

// LimitError reports a guard violation. Code is "parse_error" for depth and
// "truncated" for bytes, matching the public issue codes.
type LimitError struct {
	Code    string
	Message string
	Offset  int64
}

func (e LimitError) Error() string { return e.Message }

// Guard wraps a TokenSource with depth and byte limits. With both limits
// zero the source is returned unwrapped.
func Guard(inner TokenSource, opt GuardOptions) TokenSource {
	if opt.MaxDepth <= 0 && opt.MaxBytes <= 0 {
		return inner
	}
	return &guardedSource{inner: inner, opt: opt}
}

type guardedSource struct {
	inner TokenSource
	opt   GuardOptions
	depth int
}

func (g *guardedSource) NextToken() (Token, error) {
	tok, err := g.inner.NextToken()
	if err != nil {
		return Token{}, err
	}

	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		g.depth++
		if g.opt.MaxDepth > 0 && g.depth > g.opt.MaxDepth {
			return Token{}, LimitError{Code: "parse_error", Message: "max depth exceeded", Offset: g.Location()}
		}
	case KindEndObject, KindEndArray:
		if g.depth > 0 {
			g.depth--
		}
	}

	if g.opt.MaxBytes > 0 {
		if off := g.Location(); off >= 0 && off > g.opt.MaxBytes {
			return Token{}, LimitError{Code: "truncated", Message: "max bytes exceeded", Offset: off}
		}
	}
	return tok, nil
}

func (g *guardedSource) Location() int64 { return g.inner.Location() }
