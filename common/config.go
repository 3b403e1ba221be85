package common

// LogLevelSetting is a bitmask of the log levels MjPrintf passes through.
var LogLevelSetting LogLevel = ERROR | FATAL

const (
	// MaxExpressionDepth bounds the depth of expression trees accepted by
	// the type checker. The parser does not bound nesting, so a generated
	// or adversarial query could otherwise exhaust the call stack.
	MaxExpressionDepth = 1000
)
