package ports

import "github.com/Joshuacru/train-routes/internal/domain"

// JourneyStore persists planned journeys for later inspection.
type JourneyStore interface {
	SaveJourney(journey domain.JourneyArtifact) (id string, err error)
}
