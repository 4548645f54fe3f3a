package board

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/jobboard-cli/internal/application"
	"github.com/bnema/jobboard-cli/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	view   func(styles) string
	styles styles
	output string
}

func newModel(view func(styles) string) model {
	return model{view: view, styles: newStyles()}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.view(m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func render(view func(styles) string) (string, error) {
	p := tea.NewProgram(
		newModel(view),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

func RenderSearch(result application.SearchResult, opts RenderOptions) (string, error) {
	return render(func(s styles) string { return renderSearch(result, opts, s) })
}

func RenderJob(detail application.JobDetail, opts RenderOptions) (string, error) {
	return render(func(s styles) string { return renderJob(detail, opts, s) })
}

func RenderFacets(result application.FacetsResult) (string, error) {
	return render(func(s styles) string { return renderFacets(result, s) })
}

func RenderSession(status application.SessionStatus, opts RenderOptions) (string, error) {
	return render(func(s styles) string { return renderSession(status, opts, s) })
}

func RenderApplication(app domain.Application) (string, error) {
	return render(func(s styles) string { return renderApplication(app, s) })
}
