// Package repl is the interactive prompt loop around the engine. It owns
// terminal I/O only: lines go in, result messages come out verbatim.
package repl

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/dkostenko/aide/internal/engine"
)

// exitWords end the session, handled at the loop level like greetings, so
// they never reach the classifier.
var exitWords = map[string]bool{
	"exit":  true,
	"quit":  true,
	"close": true,
	"bye":   true,
}

// REPL reads commands from the terminal and prints engine results.
type REPL struct {
	engine *engine.Engine
	rl     *readline.Instance
	out    *printer
}

// New sets up the readline instance and output styling.
func New(eng *engine.Engine) (*REPL, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "aide> ",
		HistoryFile:       "",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, fmt.Errorf("setting up readline: %w", err)
	}

	return &REPL{
		engine: eng,
		rl:     rl,
		out:    newPrinter(),
	}, nil
}

// Run executes the prompt loop until the user exits or input ends.
func (r *REPL) Run(ctx context.Context) error {
	defer r.rl.Close()

	r.out.banner("Welcome to the assistant bot!")

	// Surface anything that came due while the assistant was not running.
	if due, err := r.engine.CheckReminders(ctx, time.Now()); err == nil {
		for _, msg := range due {
			r.out.reminder(msg)
		}
	}

	for {
		line, err := r.rl.Readline()
		if err != nil {
			if isEOF(err) {
				r.out.plain("Good bye!")
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case exitWords[strings.ToLower(line)]:
			r.out.plain("Good bye!")
			return nil
		case strings.ToLower(line) == "hello" || strings.ToLower(line) == "hi":
			r.out.plain("How can I help you?")
			continue
		}

		res := r.engine.HandleLine(ctx, line)
		r.out.result(res)
	}
}

func isEOF(err error) bool {
	return err == io.EOF || err == readline.ErrInterrupt
}
