package intent

// Kind identifies the action a classified input line maps to.
// The set is closed; every kind has exactly one handler in the dispatcher.
type Kind string

const (
	AddTask        Kind = "add_task"
	CompleteTask   Kind = "complete_task"
	RemoveTask     Kind = "remove_task"
	ListTasks      Kind = "list_tasks"
	AddNote        Kind = "add_note"
	ListNotes      Kind = "list_notes"
	RemoveNote     Kind = "remove_note"
	SetReminder    Kind = "set_reminder"
	CheckReminders Kind = "check_reminders"
	Unknown        Kind = "unknown"
)

// Intent is a classified input line with its extracted parameters.
// Which fields are populated depends on the kind.
type Intent struct {
	Kind Kind

	// Raw is the trimmed original line, kept so unknown input can be
	// echoed back verbatim.
	Raw string

	// Args is the remainder of the line after the matched trigger.
	Args string

	// ID is the entity identifier for complete/remove intents.
	ID int64

	// Filter is the list filter for ListTasks (all, pending, completed).
	Filter string

	// Message and DueSpec are the reminder sub-fields for SetReminder.
	// DueSpec is parsed against a clock later, by the dispatcher.
	Message string
	DueSpec string

	// ExtractErr records a parameter extraction failure. Classification
	// itself still succeeds; the dispatcher surfaces this as a
	// validation error.
	ExtractErr error
}
