package domain

// KindCode enumerates the event kinds the watcher protocol recognizes.
type KindCode uint8

const (
	// KindUnknown is any token the protocol does not define.
	KindUnknown KindCode = iota
	// KindFileCreated indicates a file was created.
	KindFileCreated
	// KindFileUpdated indicates a file was modified.
	KindFileUpdated
	// KindFileDeleted indicates a file was removed.
	KindFileDeleted
	// KindDirectoryCreated indicates a directory was created.
	KindDirectoryCreated
	// KindDirectoryDeleted indicates a directory was removed.
	KindDirectoryDeleted
)

// Wire tokens emitted by the watcher process.
const (
	TokenFileCreated      = "fileCreated"
	TokenFileUpdated      = "fileUpdated"
	TokenFileDeleted      = "fileDeleted"
	TokenDirectoryCreated = "directoryCreated"
	TokenDirectoryDeleted = "directoryDeleted"
)

// EventKind is a closed variant over the recognized kinds plus Unknown(raw).
// The zero value is an unknown kind with an empty token.
type EventKind struct {
	code KindCode
	raw  string
}

// Recognized kinds.
var (
	FileCreated      = EventKind{code: KindFileCreated, raw: TokenFileCreated}
	FileUpdated      = EventKind{code: KindFileUpdated, raw: TokenFileUpdated}
	FileDeleted      = EventKind{code: KindFileDeleted, raw: TokenFileDeleted}
	DirectoryCreated = EventKind{code: KindDirectoryCreated, raw: TokenDirectoryCreated}
	DirectoryDeleted = EventKind{code: KindDirectoryDeleted, raw: TokenDirectoryDeleted}
)

// KnownKinds lists the recognized kinds in protocol order.
func KnownKinds() []EventKind {
	return []EventKind{FileCreated, FileUpdated, FileDeleted, DirectoryCreated, DirectoryDeleted}
}

// UnknownKind wraps a token the protocol does not define.
func UnknownKind(raw string) EventKind {
	return EventKind{code: KindUnknown, raw: raw}
}

// ParseEventKind maps a wire token to its kind. Tokens are matched exactly.
func ParseEventKind(token string) EventKind {
	switch token {
	case TokenFileCreated:
		return FileCreated
	case TokenFileUpdated:
		return FileUpdated
	case TokenFileDeleted:
		return FileDeleted
	case TokenDirectoryCreated:
		return DirectoryCreated
	case TokenDirectoryDeleted:
		return DirectoryDeleted
	default:
		return UnknownKind(token)
	}
}

// Code returns the enumeration value of the kind.
func (k EventKind) Code() KindCode {
	return k.code
}

// Known reports whether the kind is one of the recognized kinds.
func (k EventKind) Known() bool {
	return k.code != KindUnknown
}

// String returns the wire token, or the raw token for unknown kinds.
func (k EventKind) String() string {
	return k.raw
}

// Event is a single parsed record from the watcher output.
type Event struct {
	Kind EventKind
	// Path is the whitespace-trimmed path from the record.
	Path string
	// Line is the raw record the event was parsed from.
	Line string
	// Malformed marks a record that lacked the kind/path separator.
	Malformed bool
}
