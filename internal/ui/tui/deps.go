package tui

import (
	"log/slog"

	"github.com/Joshuacru/train-routes/internal/ports"
)

type Deps struct {
	Source ports.RouteSource
	Name   string

	Logger *slog.Logger
}
