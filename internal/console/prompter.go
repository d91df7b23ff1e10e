package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/repoclean/repoclean/internal/domain"
)

// Option is one selectable choice in a menu prompt.
type Option struct {
	Value string
	Label string
}

// Prompter is the synchronous boundary between the decision loops and the
// human. Implementations return plain values; callers never touch the
// terminal, which keeps the loops testable without one.
type Prompter interface {
	// ConfirmDeletion asks whether the listed commits of a repository
	// should be deleted.
	ConfirmDeletion(repo string, commitCount int) (domain.Decision, error)
	// Confirm asks a yes/no question, defaulting to no.
	Confirm(question string) (bool, error)
	// Input asks for a free-form line of text.
	Input(question string) (string, error)
	// Select asks to pick one of the options and returns its value.
	Select(question string, options []Option) (string, error)
}

// TerminalPrompter reads answers line by line from in and writes prompts to
// out.
type TerminalPrompter struct {
	reader  *bufio.Reader
	printer *Printer
}

// NewTerminalPrompter creates a TerminalPrompter.
func NewTerminalPrompter(in io.Reader, printer *Printer) *TerminalPrompter {
	return &TerminalPrompter{
		reader:  bufio.NewReader(in),
		printer: printer,
	}
}

func (p *TerminalPrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}

// ConfirmDeletion loops until the answer is yes, no, skip or all.
func (p *TerminalPrompter) ConfirmDeletion(repo string, commitCount int) (domain.Decision, error) {
	for {
		p.printer.Printf("Delete these %d commit(s) from %s? (yes/no/skip/all): ", commitCount, repo)
		answer, err := p.readLine()
		if err != nil {
			return domain.DecisionSkip, err
		}
		switch answer {
		case "yes", "y":
			return domain.DecisionApply, nil
		case "no", "n":
			return domain.DecisionDefer, nil
		case "skip", "s":
			return domain.DecisionSkip, nil
		case "all", "a":
			return domain.DecisionSkipAll, nil
		default:
			p.printer.Warning("Please enter 'yes', 'no', 'skip', or 'all' to skip everything")
		}
	}
}

// Confirm asks a yes/no question, defaulting to no.
func (p *TerminalPrompter) Confirm(question string) (bool, error) {
	p.printer.Printf("%s (yes/no): ", question)
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	return answer == "yes" || answer == "y", nil
}

// Input asks for a free-form line of text.
func (p *TerminalPrompter) Input(question string) (string, error) {
	p.printer.Printf("%s ", question)
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Select prints a numbered menu and loops until a valid choice is entered.
func (p *TerminalPrompter) Select(question string, options []Option) (string, error) {
	p.printer.Println()
	p.printer.Println(question)
	for i, opt := range options {
		p.printer.Printf("%d. %s\n", i+1, opt.Label)
	}
	for {
		p.printer.Printf("Enter choice (1-%d): ", len(options))
		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		var idx int
		if _, scanErr := fmt.Sscanf(answer, "%d", &idx); scanErr == nil && idx >= 1 && idx <= len(options) {
			return options[idx-1].Value, nil
		}
		p.printer.Warning(fmt.Sprintf("Please enter a number between 1 and %d", len(options)))
	}
}
