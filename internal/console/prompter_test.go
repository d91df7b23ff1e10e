package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repoclean/repoclean/internal/domain"
)

func newTestPrompter(input string) *TerminalPrompter {
	return NewTerminalPrompter(strings.NewReader(input), NewPrinter(io.Discard, true))
}

func TestTerminalPrompter(t *testing.T) {
	t.Run("Should map answers to deletion decisions", func(t *testing.T) {
		cases := []struct {
			input    string
			expected domain.Decision
		}{
			{"yes\n", domain.DecisionApply},
			{"y\n", domain.DecisionApply},
			{"no\n", domain.DecisionDefer},
			{"skip\n", domain.DecisionSkip},
			{"all\n", domain.DecisionSkipAll},
		}
		for _, tc := range cases {
			decision, err := newTestPrompter(tc.input).ConfirmDeletion("alice/widgets", 2)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, decision, "input %q", tc.input)
		}
	})
	t.Run("Should re-prompt on an unrecognized answer", func(t *testing.T) {
		decision, err := newTestPrompter("maybe\nyes\n").ConfirmDeletion("alice/widgets", 1)
		require.NoError(t, err)
		assert.Equal(t, domain.DecisionApply, decision)
	})
	t.Run("Should treat anything but yes as a declined confirm", func(t *testing.T) {
		ok, err := newTestPrompter("nah\n").Confirm("Continue?")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = newTestPrompter("YES\n").Confirm("Continue?")
		require.NoError(t, err)
		assert.True(t, ok)
	})
	t.Run("Should return the trimmed input line", func(t *testing.T) {
		text, err := newTestPrompter("  my description \n").Input("Description?")
		require.NoError(t, err)
		assert.Equal(t, "my description", text)
	})
	t.Run("Should return the value of the selected option", func(t *testing.T) {
		options := []Option{
			{Value: "clear_all", Label: "Clear everything"},
			{Value: "exit", Label: "Exit"},
		}
		value, err := newTestPrompter("2\n").Select("Pick one", options)
		require.NoError(t, err)
		assert.Equal(t, "exit", value)
	})
	t.Run("Should re-prompt on an out-of-range selection", func(t *testing.T) {
		options := []Option{{Value: "only", Label: "Only option"}}
		value, err := newTestPrompter("7\nx\n1\n").Select("Pick one", options)
		require.NoError(t, err)
		assert.Equal(t, "only", value)
	})
	t.Run("Should propagate EOF from a closed input", func(t *testing.T) {
		_, err := newTestPrompter("").ConfirmDeletion("alice/widgets", 1)
		require.Error(t, err)
	})
}

func TestPrinterPlainMode(t *testing.T) {
	t.Run("Should emit unstyled text in plain mode", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf, true)
		p.Success("done")
		assert.Equal(t, "done\n", buf.String())
	})
	t.Run("Should render a plain table as tab-separated lines", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf, true)
		p.Table([]string{"A", "B"}, [][]string{{"1", "2"}})
		assert.Equal(t, "A\tB\n1\t2\n", buf.String())
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactlyten", Truncate("exactlyten", 10))
	assert.Equal(t, "toolon...", Truncate("toolongvalue", 9))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "subject", FirstLine("subject\n\nbody text"))
	assert.Equal(t, "no newline", FirstLine("no newline"))
}
