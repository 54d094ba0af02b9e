// Package repl runs the assistant's read-eval-print loop: one line in, one
// reply out, until the user leaves. The loop owns everything user-facing,
// from the prompt and greeting to the translation of typed handler errors
// into fixed reply lines, so nothing below it ever prints.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/mmynk/rolodex/internal/models"
	"github.com/mmynk/rolodex/internal/service"
)

const helpText = `Available commands:
  hello                             greet the bot
  add <name> <phone>                add a contact or another phone
  phone <name>                      show a contact's phones
  change <name> <old> <new>         replace one of a contact's phones
  all                               list every contact
  delete <name>                     remove a contact
  add-birthday <name> <DD.MM.YYYY>  set a contact's birthday
  show-birthday <name>              show a contact's birthday
  birthdays                         contacts to congratulate this week
  help                              show this help
  close | exit                      save and leave`

// maxLineBytes caps one input line. The scanner's 64KB default would end
// the whole session on a single over-long paste.
const maxLineBytes = 1 << 20

// Loop reads commands line by line and prints one reply per command. It is
// wired to plain Reader/Writer pairs so whole sessions can be scripted in
// tests.
type Loop struct {
	service *service.ContactService
	in      io.Reader
	out     io.Writer

	// Now supplies "today" for the birthdays command; tests pin it.
	Now func() time.Time
}

// New creates a loop running the given service over in and out.
func New(svc *service.ContactService, in io.Reader, out io.Writer) *Loop {
	return &Loop{service: svc, in: in, out: out, Now: time.Now}
}

// Run drives the session until close, exit, or end of input. Handler faults
// never stop the loop; only the exit commands and EOF do.
func (l *Loop) Run() error {
	fmt.Fprintln(l.out, "Welcome to the assistant bot!")

	scanner := bufio.NewScanner(l.in)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for {
		fmt.Fprint(l.out, "Enter a command: ")
		if !scanner.Scan() {
			// End of input (Ctrl-D): leave quietly; the caller still saves.
			fmt.Fprintln(l.out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		command := strings.ToLower(fields[0])
		args := fields[1:]

		if command == "close" || command == "exit" {
			fmt.Fprintln(l.out, "Good bye!")
			return nil
		}

		fmt.Fprintln(l.out, l.dispatch(command, args))
	}
}

// dispatch runs one command and converts its outcome into the line shown to
// the user. This is the single place handler errors become text.
func (l *Loop) dispatch(command string, args []string) string {
	start := time.Now()
	reply, err := l.handle(command, args)
	duration := time.Since(start).Milliseconds()

	if err != nil {
		line, expected := errorLine(err)
		if expected {
			slog.Warn("Command rejected", "command", command, "error", err, "duration_ms", duration)
		} else {
			slog.Error("Command failed", "command", command, "error", err, "duration_ms", duration)
		}
		return line
	}

	slog.Debug("Command ok", "command", command, "duration_ms", duration)
	return reply
}

// handle routes a command to its handler. Unknown commands are a reply, not
// an error: the bot stays in the conversation.
func (l *Loop) handle(command string, args []string) (string, error) {
	switch command {
	case "hello":
		return l.service.Hello()
	case "add":
		return l.service.Add(args)
	case "phone":
		return l.service.Phone(args)
	case "change":
		return l.service.Change(args)
	case "all":
		return l.service.All()
	case "delete":
		return l.service.Delete(args)
	case "add-birthday":
		return l.service.AddBirthday(args)
	case "show-birthday":
		return l.service.ShowBirthday(args)
	case "birthdays":
		return l.service.Birthdays(l.Now())
	case "help":
		return helpText, nil
	default:
		return "Invalid command.", nil
	}
}

// errorLine renders one fixed line per error kind. The second return value
// reports whether the kind is an expected user mistake rather than a fault.
func errorLine(err error) (string, bool) {
	var verr *models.ValidationError
	var aerr *service.ArgumentError
	switch {
	case errors.Is(err, service.ErrNotFound):
		return "Error: no contact with this name was found.", true
	case errors.As(err, &verr):
		return "Error: " + verr.Reason + ".", true
	case errors.As(err, &aerr):
		return "Error: " + aerr.Error(), true
	default:
		return "Error: something went wrong, please try again.", false
	}
}
