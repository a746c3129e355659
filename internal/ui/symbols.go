package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess      = "✓" // operation succeeded
	SymbolFail         = "✗" // operation failed
	SymbolConnected    = "●" // display connected
	SymbolDisconnected = "○" // display disconnected
)
