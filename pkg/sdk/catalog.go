package sdk

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/emmanuel128/repaso-app/pkg/supabase"
)

// FetchAreas returns the published study areas in display order.
func FetchAreas(ctx context.Context, client *supabase.Client) ([]Area, error) {
	var areas []Area
	err := client.From("areas").
		Eq("status", "published").
		Order("order_index", true).
		Get(ctx, &areas)
	return areas, err
}

// FetchTopics returns every published topic in display order.
func FetchTopics(ctx context.Context, client *supabase.Client) ([]Topic, error) {
	var topics []Topic
	err := client.From("topics").
		Eq("status", "published").
		Order("order_index", true).
		Get(ctx, &topics)
	return topics, err
}

// FetchTopicsByArea returns the published topics of one area in display order.
func FetchTopicsByArea(ctx context.Context, client *supabase.Client, areaID string) ([]Topic, error) {
	var topics []Topic
	err := client.From("topics").
		Eq("area_id", areaID).
		Eq("status", "published").
		Order("order_index", true).
		Get(ctx, &topics)
	return topics, err
}

// FetchAreasWithTopics loads areas and topics concurrently and groups the
// topics under their areas.
func FetchAreasWithTopics(ctx context.Context, client *supabase.Client) ([]AreaWithTopics, error) {
	var (
		areas  []Area
		topics []Topic
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := FetchAreas(ctx, client)
		if err != nil {
			return err
		}
		areas = list
		return nil
	})
	g.Go(func() error {
		list, err := FetchTopics(ctx, client)
		if err != nil {
			return err
		}
		topics = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byArea := make(map[string][]Topic, len(areas))
	for _, topic := range topics {
		byArea[topic.AreaID] = append(byArea[topic.AreaID], topic)
	}

	combined := make([]AreaWithTopics, 0, len(areas))
	for _, area := range areas {
		combined = append(combined, AreaWithTopics{Area: area, Topics: byArea[area.ID]})
	}
	return combined, nil
}
