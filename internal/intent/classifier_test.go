package intent

import (
	"testing"

	"github.com/dkostenko/aide/internal/model"
)

func TestClassifyTaskCommands(t *testing.T) {
	tests := []struct {
		line string
		kind Kind
		args string
		id   int64
	}{
		{"add task buy milk", AddTask, "buy milk", 0},
		{"Add Task Buy Milk", AddTask, "Buy Milk", 0},
		{"  new task water plants  ", AddTask, "water plants", 0},
		{"task call the bank", AddTask, "call the bank", 0},
		{"complete task 1", CompleteTask, "1", 1},
		{"done task 7", CompleteTask, "7", 7},
		{"remove task 3", RemoveTask, "3", 3},
		{"delete task 12", RemoveTask, "12", 12},
	}

	for _, tt := range tests {
		in := Classify(tt.line)
		if in.Kind != tt.kind {
			t.Errorf("Classify(%q): kind = %v, want %v", tt.line, in.Kind, tt.kind)
			continue
		}
		if in.Args != tt.args {
			t.Errorf("Classify(%q): args = %q, want %q", tt.line, in.Args, tt.args)
		}
		if in.ID != tt.id {
			t.Errorf("Classify(%q): id = %d, want %d", tt.line, in.ID, tt.id)
		}
		if in.ExtractErr != nil {
			t.Errorf("Classify(%q): unexpected extract error: %v", tt.line, in.ExtractErr)
		}
	}
}

func TestClassifyListFilters(t *testing.T) {
	tests := []struct {
		line   string
		filter string
	}{
		{"list tasks", model.FilterAll},
		{"list tasks all", model.FilterAll},
		{"list tasks pending", model.FilterPending},
		{"list tasks open", model.FilterPending},
		{"show tasks completed", model.FilterCompleted},
		{"tasks done", model.FilterCompleted},
	}

	for _, tt := range tests {
		in := Classify(tt.line)
		if in.Kind != ListTasks {
			t.Errorf("Classify(%q): kind = %v, want ListTasks", tt.line, in.Kind)
			continue
		}
		if in.Filter != tt.filter {
			t.Errorf("Classify(%q): filter = %q, want %q", tt.line, in.Filter, tt.filter)
		}
	}

	in := Classify("list tasks whatever")
	if in.Kind != ListTasks || in.ExtractErr == nil {
		t.Errorf("expected ListTasks with extract error, got %+v", in)
	}
}

func TestClassifyNotes(t *testing.T) {
	in := Classify("add note milk is on sale")
	if in.Kind != AddNote || in.Args != "milk is on sale" {
		t.Errorf("unexpected intent: %+v", in)
	}

	// Bare "note" is an AddNote trigger, but "notes" must list.
	in = Classify("note the wifi password is hunter2")
	if in.Kind != AddNote {
		t.Errorf("expected AddNote, got %v", in.Kind)
	}
	in = Classify("notes")
	if in.Kind != ListNotes {
		t.Errorf("expected ListNotes, got %v", in.Kind)
	}

	in = Classify("remove note 2")
	if in.Kind != RemoveNote || in.ID != 2 {
		t.Errorf("unexpected intent: %+v", in)
	}

	in = Classify("remove note two")
	if in.Kind != RemoveNote || in.ExtractErr == nil {
		t.Errorf("expected RemoveNote with extract error, got %+v", in)
	}
}

func TestClassifySetReminder(t *testing.T) {
	in := Classify("set reminder call mom at 18:00")
	if in.Kind != SetReminder {
		t.Fatalf("expected SetReminder, got %v", in.Kind)
	}
	if in.Message != "call mom" {
		t.Errorf("message = %q, want %q", in.Message, "call mom")
	}
	if in.DueSpec != "18:00" {
		t.Errorf("due spec = %q, want %q", in.DueSpec, "18:00")
	}
	if in.ExtractErr != nil {
		t.Errorf("unexpected extract error: %v", in.ExtractErr)
	}

	in = Classify("remind me stretch in 30 minutes")
	if in.Kind != SetReminder || in.Message != "stretch" || in.DueSpec != "in 30 minutes" {
		t.Errorf("unexpected intent: %+v", in)
	}

	// Delimiter inside the message: the last one wins.
	in = Classify("set reminder meet bob at the cafe at 16:30")
	if in.Message != "meet bob at the cafe" || in.DueSpec != "16:30" {
		t.Errorf("unexpected split: message=%q due=%q", in.Message, in.DueSpec)
	}
}

func TestClassifySetReminderMissingDelimiter(t *testing.T) {
	// Classification still succeeds; the extraction error is surfaced by
	// the dispatcher, not here.
	in := Classify("set reminder call mom")
	if in.Kind != SetReminder {
		t.Fatalf("expected SetReminder, got %v", in.Kind)
	}
	if in.ExtractErr == nil {
		t.Error("expected extract error for missing delimiter")
	}
}

func TestClassifyCheckReminders(t *testing.T) {
	for _, line := range []string{"check reminders", "reminders", "Check Reminders"} {
		if in := Classify(line); in.Kind != CheckReminders {
			t.Errorf("Classify(%q): kind = %v, want CheckReminders", line, in.Kind)
		}
	}
}

func TestClassifyUnknown(t *testing.T) {
	in := Classify("")
	if in.Kind != Unknown || in.Raw != "" {
		t.Errorf("empty line: got %+v", in)
	}

	in = Classify("   \t ")
	if in.Kind != Unknown {
		t.Errorf("whitespace line: got %v", in.Kind)
	}

	in = Classify("make me a sandwich")
	if in.Kind != Unknown {
		t.Fatalf("expected Unknown, got %v", in.Kind)
	}
	if in.Raw != "make me a sandwich" {
		t.Errorf("raw = %q, want original text", in.Raw)
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// "complete task" must win over the generic "task" trigger.
	if in := Classify("complete task 1"); in.Kind != CompleteTask {
		t.Errorf("expected CompleteTask, got %v", in.Kind)
	}
	// "tasks" must not be swallowed by the "task" trigger.
	if in := Classify("tasks"); in.Kind != ListTasks {
		t.Errorf("expected ListTasks, got %v", in.Kind)
	}
}
