package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Joshuacru/train-routes/internal/domain"
)

func loadGraphCmd(deps Deps) tea.Cmd {
	return func() tea.Msg {
		routes, err := deps.Source.LoadRoutes(context.Background())
		if err != nil {
			return graphLoadedMsg{err: err}
		}

		g, err := domain.BuildGraph(routes)
		if err != nil {
			return graphLoadedMsg{err: err}
		}

		deps.Logger.Debug("tui.graph_loaded",
			"source", deps.Name,
			"stations", g.StationCount(),
			"routes", g.RouteCount(),
		)
		return graphLoadedMsg{graph: g}
	}
}

func findRouteCmd(deps Deps, g *domain.Graph, origin, destination string) tea.Cmd {
	return func() tea.Msg {
		result, err := domain.FindShortestRoute(g, origin, destination)
		if err != nil {
			deps.Logger.Error("tui.query_failed", "error", err)
			return resultMsg{err: err}
		}
		return resultMsg{result: result}
	}
}
