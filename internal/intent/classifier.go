package intent

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dkostenko/aide/internal/model"
)

// rule binds a set of trigger prefixes to an intent kind and an optional
// parameter extractor run on the remainder of the line.
type rule struct {
	kind     Kind
	prefixes []string
	extract  func(rest string, in *Intent)
}

// rules is the ordered matching table. Rules are tried top to bottom and
// the first matching prefix wins, so more specific triggers must come
// before shorter ones (e.g. "complete task" before "task").
var rules = []rule{
	{kind: CheckReminders, prefixes: []string{"check reminders", "reminders"}},
	{kind: SetReminder, prefixes: []string{"set reminder", "add reminder", "remind me"}, extract: extractReminder},
	{kind: CompleteTask, prefixes: []string{"complete task", "finish task", "done task"}, extract: extractID},
	{kind: RemoveTask, prefixes: []string{"remove task", "delete task"}, extract: extractID},
	{kind: ListTasks, prefixes: []string{"list tasks", "show tasks", "tasks"}, extract: extractTaskFilter},
	{kind: AddTask, prefixes: []string{"add task", "new task", "task"}, extract: extractText("task description")},
	{kind: RemoveNote, prefixes: []string{"remove note", "delete note"}, extract: extractID},
	{kind: ListNotes, prefixes: []string{"list notes", "show notes", "notes"}},
	{kind: AddNote, prefixes: []string{"add note", "take note", "note"}, extract: extractText("note body")},
}

// Classify maps one line of input to an intent with extracted parameters.
// Unmatched or empty input yields Unknown carrying the original text, so
// the dispatcher can echo it back.
func Classify(line string) Intent {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Intent{Kind: Unknown}
	}

	for _, r := range rules {
		for _, prefix := range r.prefixes {
			rest, ok := matchPrefix(trimmed, prefix)
			if !ok {
				continue
			}
			in := Intent{Kind: r.kind, Raw: trimmed, Args: rest}
			if r.extract != nil {
				r.extract(rest, &in)
			}
			return in
		}
	}

	return Intent{Kind: Unknown, Raw: trimmed, Args: trimmed}
}

// matchPrefix reports whether line starts with the trigger prefix on a
// word boundary, case-insensitively, and returns the trimmed remainder.
func matchPrefix(line, prefix string) (string, bool) {
	if len(line) < len(prefix) {
		return "", false
	}
	if !strings.EqualFold(line[:len(prefix)], prefix) {
		return "", false
	}
	if len(line) == len(prefix) {
		return "", true
	}
	if line[len(prefix)] != ' ' {
		return "", false
	}
	return strings.TrimSpace(line[len(prefix)+1:]), true
}

// extractText requires a non-empty remainder; the field name is only used
// in the error message.
func extractText(field string) func(rest string, in *Intent) {
	return func(rest string, in *Intent) {
		if rest == "" {
			in.ExtractErr = fmt.Errorf("missing %s", field)
		}
	}
}

// extractID parses the remainder as an entity ID.
func extractID(rest string, in *Intent) {
	if rest == "" {
		in.ExtractErr = fmt.Errorf("missing id")
		return
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		in.ExtractErr = fmt.Errorf("%q is not a valid id", rest)
		return
	}
	in.ID = id
}

// extractTaskFilter parses an optional trailing filter word.
func extractTaskFilter(rest string, in *Intent) {
	switch strings.ToLower(rest) {
	case "", model.FilterAll:
		in.Filter = model.FilterAll
	case model.FilterPending, "open":
		in.Filter = model.FilterPending
	case model.FilterCompleted, "done":
		in.Filter = model.FilterCompleted
	default:
		in.ExtractErr = fmt.Errorf("unknown filter %q (want all, pending, or completed)", rest)
	}
}

// extractReminder splits the remainder into message and due-spec on the
// last " at " or, failing that, the last " in " (duration form). A missing
// delimiter is recorded as an extraction error, not a classification
// failure.
func extractReminder(rest string, in *Intent) {
	if rest == "" {
		in.ExtractErr = fmt.Errorf("missing reminder message")
		return
	}

	lower := strings.ToLower(rest)
	if idx := strings.LastIndex(lower, " at "); idx >= 0 {
		in.Message = strings.TrimSpace(rest[:idx])
		in.DueSpec = strings.TrimSpace(rest[idx+len(" at "):])
	} else if idx := strings.LastIndex(lower, " in "); idx >= 0 {
		in.Message = strings.TrimSpace(rest[:idx])
		in.DueSpec = "in " + strings.TrimSpace(rest[idx+len(" in "):])
	} else {
		in.Message = rest
		in.ExtractErr = fmt.Errorf("missing due time (use \"... at <time>\" or \"... in <duration>\")")
		return
	}

	if in.Message == "" {
		in.ExtractErr = fmt.Errorf("missing reminder message")
	}
	if in.ExtractErr == nil && in.DueSpec == "" {
		in.ExtractErr = fmt.Errorf("missing due time")
	}
}
