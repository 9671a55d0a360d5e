package styles

// Status symbols for hook install states.
const (
	SymbolInstalled = "✓"
	SymbolStale     = "!"
	SymbolForeign   = "✗"
	SymbolAbsent    = "-"
)

// Installed renders the installed symbol.
func Installed() string { return Pass(SymbolInstalled) }

// Stale renders the pending-reinstall symbol.
func Stale() string { return Attention(SymbolStale) }

// Foreign renders the foreign-hook symbol.
func Foreign() string { return Fail(SymbolForeign) }

// Absent renders the not-present symbol.
func Absent() string { return Dim(SymbolAbsent) }
