package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Joshuacru/train-routes/internal/domain"
)

type screen int

const (
	screenLoading screen = iota
	screenOrigin
	screenDestination
	screenResult
	screenError
)

type model struct {
	theme Theme
	deps  Deps

	scr   screen
	graph *domain.Graph

	originInput      textinput.Model
	destinationInput textinput.Model

	result domain.PathResult
	err    error
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	origin := textinput.New()
	origin.Placeholder = "origin station"
	origin.Focus()

	destination := textinput.New()
	destination.Placeholder = "destination station"

	return model{
		theme:            DefaultTheme(),
		deps:             deps,
		scr:              screenLoading,
		originInput:      origin,
		destinationInput: destination,
	}
}

func (m model) Init() tea.Cmd {
	return loadGraphCmd(m.deps)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case graphLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.scr = screenError
			return m, nil
		}
		m.graph = msg.graph
		m.scr = screenOrigin
		return m, textinput.Blink

	case resultMsg:
		if msg.err != nil {
			m.err = msg.err
			m.scr = screenError
			return m, nil
		}
		m.result = msg.result
		m.scr = screenResult
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "enter":
			switch m.scr {
			case screenOrigin:
				if strings.TrimSpace(m.originInput.Value()) == "" {
					return m, nil
				}
				m.scr = screenDestination
				m.destinationInput.Focus()
				return m, textinput.Blink

			case screenDestination:
				origin := strings.TrimSpace(m.originInput.Value())
				destination := strings.TrimSpace(m.destinationInput.Value())
				if destination == "" {
					return m, nil
				}
				return m, findRouteCmd(m.deps, m.graph, origin, destination)

			case screenResult, screenError:
				return m.restart()
			}

		case "esc":
			if m.scr != screenLoading {
				return m.restart()
			}

		case "q":
			if m.scr == screenResult || m.scr == screenError {
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenOrigin:
		m.originInput, cmd = m.originInput.Update(msg)
	case screenDestination:
		m.destinationInput, cmd = m.destinationInput.Update(msg)
	}
	return m, cmd
}

func (m model) restart() (tea.Model, tea.Cmd) {
	m.originInput.SetValue("")
	m.destinationInput.SetValue("")
	m.destinationInput.Blur()
	m.originInput.Focus()
	m.err = nil
	m.scr = screenOrigin
	return m, textinput.Blink
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	header := m.theme.Title.Render("train-routes") + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("shortest route finder — %s", m.deps.Name)) + "\n"

	var body string
	switch m.scr {
	case screenLoading:
		body = "Loading route table..."

	case screenOrigin:
		body = "What station are you getting on the train?\n\n" +
			m.originInput.View() + "\n\n" +
			m.theme.Help.Render("enter: next · ctrl+c: quit")

	case screenDestination:
		body = "What station are you getting off the train?\n\n" +
			m.destinationInput.View() + "\n\n" +
			m.theme.Help.Render("enter: search · esc: start over · ctrl+c: quit")

	case screenResult:
		body = m.theme.Card.Render(m.renderResult()) + "\n\n" +
			m.theme.Help.Render("enter/esc: new search · q: quit")

	case screenError:
		body = m.theme.Error.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n" +
			m.theme.Help.Render("enter/esc: start over · q: quit")
	}

	return wrap.Render(header + "\n" + body)
}

func (m model) renderResult() string {
	r := m.result
	switch {
	case r.Reachable:
		out := fmt.Sprintf("Your trip from %s to %s includes %d %s\nand will take %d minutes.",
			r.Origin, r.Destination, r.Stops, pluralStops(r.Stops), r.Distance)
		if len(r.Path) > 1 {
			out += "\n\n" + strings.Join(r.Path, " -> ")
		}
		return out

	case r.Reason == domain.UnknownStation:
		out := fmt.Sprintf("Station %q does not exist.", r.UnknownStation)
		if m.graph != nil {
			out += "\n\nValid station names are:\n" + strings.Join(m.graph.Stations(), ", ")
		}
		return out

	default:
		return fmt.Sprintf("There are no routes from %s to %s.", r.Origin, r.Destination)
	}
}

func pluralStops(n int) string {
	if n == 1 {
		return "stop"
	}
	return "stops"
}
