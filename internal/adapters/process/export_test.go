package process

// Test hooks.
var (
	LookPath       = lookPath
	NewTailBuffer  = newTailBuffer
	IsClosedStream = isClosedStream
)

// TailBuffer exposes tailBuffer to external tests.
type TailBuffer = tailBuffer
