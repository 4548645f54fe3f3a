package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const slowRemoteCallAfter = 3 * time.Second

type remoteResultMsg[T any] struct {
	value T
	err   error
}

type slowRemoteCallMsg struct{}

type remoteCallModel[T any] struct {
	spinner spinner.Model
	label   string
	call    tea.Cmd
	slow    bool
	hint    lipgloss.Style
	value   T
	err     error
	done    bool
}

func newRemoteCallModel[T any](label string, call tea.Cmd) remoteCallModel[T] {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return remoteCallModel[T]{
		spinner: s,
		label:   label,
		call:    call,
		hint:    lipgloss.NewStyle().Faint(true),
	}
}

func (m remoteCallModel[T]) Init() tea.Cmd {
	slow := tea.Tick(slowRemoteCallAfter, func(time.Time) tea.Msg {
		return slowRemoteCallMsg{}
	})
	return tea.Batch(m.spinner.Tick, m.call, slow)
}

func (m remoteCallModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case slowRemoteCallMsg:
		m.slow = true
		return m, nil
	case remoteResultMsg[T]:
		m.done = true
		m.value = msg.value
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m remoteCallModel[T]) View() string {
	if m.done {
		return ""
	}

	line := fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	if m.slow {
		line += " " + m.hint.Render("(still waiting on the job board API)")
	}
	return line
}

func awaitRemote[T any](ctx context.Context, output io.Writer, label string, call func(context.Context) (T, error)) (T, error) {
	callCmd := func() tea.Msg {
		value, err := call(ctx)
		return remoteResultMsg[T]{value: value, err: err}
	}

	p := tea.NewProgram(
		newRemoteCallModel[T](label, callCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	var zero T
	finalModel, err := p.Run()
	if err != nil {
		return zero, err
	}

	result, ok := finalModel.(remoteCallModel[T])
	if !ok {
		return zero, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.value, result.err
}
