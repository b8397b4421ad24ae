package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldBackend   = "backend"
	FieldExpenseID = "id"
	FieldAmount    = "amount"
	FieldCategory  = "category"
	FieldWindow    = "window"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentCLI      = "cli"
	ComponentExpense  = "expense"
	ComponentSettings = "settings"
	ComponentStorage  = "storage"
)

// Operations defines standard operation names
const (
	OpCreate    = "create"
	OpDelete    = "delete"
	OpList      = "list"
	OpLoad      = "load"
	OpPersist   = "persist"
	OpQuery     = "query"
	OpSummarize = "summarize"
	OpToggle    = "toggle"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)
