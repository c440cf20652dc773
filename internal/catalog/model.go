// Package catalog serves the study-guide content: the static exam sections
// with their generator shortcuts, and the tenant's areas/topics stored in the
// hosted database.
package catalog

import (
	"context"

	"github.com/emmanuel128/repaso-app/internal/content"
	"github.com/emmanuel128/repaso-app/pkg/sdk"
	"github.com/emmanuel128/repaso-app/pkg/supabase"
)

// Card is one summary card inside a study section.
type Card struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Generator is a one-tap content-generation shortcut attached to a section.
type Generator struct {
	Type    content.Type `json:"type"`
	Label   string       `json:"label"`
	Section string       `json:"section"`
	Topics  string       `json:"topics"`
}

// Section is one exam area of the study guide, weighted by exam emphasis.
type Section struct {
	ID         int         `json:"id"`
	Title      string      `json:"title"`
	Subtitle   string      `json:"subtitle"`
	Weight     string      `json:"weight"`
	Cards      []Card      `json:"cards"`
	Generators []Generator `json:"generators"`
}

// Service exposes the static study guide and the database-backed catalog.
type Service struct {
	client *supabase.Client
}

// NewService wraps a supabase client used for area/topic reads.
func NewService(client *supabase.Client) *Service {
	return &Service{client: client}
}

// Sections returns the study guide. The slice is a copy; callers may not
// mutate the definitions.
func (s *Service) Sections() []Section {
	out := make([]Section, len(studySections))
	copy(out, studySections)
	return out
}

// Section returns one study section by id.
func (s *Service) Section(id int) (Section, bool) {
	for _, section := range studySections {
		if section.ID == id {
			return section, true
		}
	}
	return Section{}, false
}

// Areas lists the published study areas.
func (s *Service) Areas(ctx context.Context) ([]sdk.Area, error) {
	return sdk.FetchAreas(ctx, s.client)
}

// TopicsByArea lists the published topics of one area.
func (s *Service) TopicsByArea(ctx context.Context, areaID string) ([]sdk.Topic, error) {
	return sdk.FetchTopicsByArea(ctx, s.client, areaID)
}

// AreasWithTopics returns the full published catalog grouped by area.
func (s *Service) AreasWithTopics(ctx context.Context) ([]sdk.AreaWithTopics, error) {
	return sdk.FetchAreasWithTopics(ctx, s.client)
}
