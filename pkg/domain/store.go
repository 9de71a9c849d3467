package domain

import "time"

// Table is a name of a key-value table in the store
type Table string

// enum of key-value tables, any other name is rejected by the store
const (
	TableProtection Table = "protection" // heat counters
	TableSettings   Table = "settings"   // heat limits and other ceilings
	TableMemorandum Table = "memorandum" // last-seen state
	TableNoteText   Table = "note_text"  // candidate text pools and forbidden words
)

// ValueKind tags the shape of a stored value
type ValueKind string

// enum of value kinds
const (
	KindString ValueKind = "string"
	KindInt    ValueKind = "int"
	KindJSON   ValueKind = "json"
)

// KVEntry is a single value of a key-value table
type KVEntry struct {
	Table     Table
	Key       string
	Value     string
	Kind      ValueKind
	UpdatedAt time.Time
}

// well-known keys
const (
	KeyPostHeat      = "heat"
	KeyPostHeatLimit = "max_heat"
	KeyChatHeat      = "chat_gpt_heat"
	KeyChatHeatLimit = "max_chat_gpt_heat"
	KeyForbidden     = "forbidden"
	KeyEmojiList     = "emoji_list"
	KeyDinner        = "dinner"
)

// AuditLevel is a level of an audit entry
type AuditLevel string

// enum of audit levels
const (
	AuditDebug AuditLevel = "debug"
	AuditInfo  AuditLevel = "info"
	AuditWarn  AuditLevel = "warning"
	AuditError AuditLevel = "error"
)

// AuditEntry is a row of the append-only audit log
type AuditEntry struct {
	ID        int64
	Level     AuditLevel
	Source    string
	Message   string
	UserID    string
	Metadata  map[string]any
	CreatedAt time.Time
}

// Observation is a passively recorded global timeline note
type Observation struct {
	ID           int64
	UserName     string
	InstanceName string
	Text         string
	ObservedAt   time.Time
}

// MenuItem is a dinner menu entry
type MenuItem struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
