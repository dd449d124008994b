package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/lifeosapp/backend/internal/domain/entity"
)

// Elasticsearch keeps a searchable copy of the event timeline. Indexing is
// best-effort: the event log in Postgres is the source of truth and a failed
// index write must never fail the originating request.

func (k *Kernel) indexEvent(ctx context.Context, ev *entity.LifeEvent) error {
	if k.ES == nil || k.ESEventsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":          ev.ID,
		"user_id":     ev.UserID,
		"type":        ev.Type,
		"title":       ev.Title,
		"description": ev.Description,
		"impact":      ev.Impact,
		"value":       ev.Value,
		"tags":        ev.Tags,
		"timestamp":   ev.Timestamp.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: k.ESEventsIndex, DocumentID: ev.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, k.ES)
	if err != nil {
		if k.Logger != nil {
			k.Logger.WithError(err).WithField("event_id", ev.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && k.Logger != nil {
		k.Logger.WithField("status", res.Status()).WithField("event_id", ev.ID).Warn("es index response error")
	}
	return nil
}

func (k *Kernel) deleteEventIndex(ctx context.Context, eventID string) error {
	if k.ES == nil || k.ESEventsIndex == "" {
		return nil
	}
	req := esapi.DeleteRequest{Index: k.ESEventsIndex, DocumentID: eventID}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, k.ES)
	if err != nil {
		return err
	}
	_ = res.Body.Close()
	return nil
}

func (k *Kernel) purgeEventIndex(ctx context.Context, userID string) error {
	if k.ES == nil || k.ESEventsIndex == "" {
		return nil
	}
	query := map[string]any{
		"query": map[string]any{
			"term": map[string]any{"user_id": userID},
		},
	}
	b, _ := json.Marshal(query)
	req := esapi.DeleteByQueryRequest{Index: []string{k.ESEventsIndex}, Body: strings.NewReader(string(b))}
	c, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	res, err := req.Do(c, k.ES)
	if err != nil {
		return err
	}
	_ = res.Body.Close()
	return nil
}

// SearchEvents runs a multi_match query over title, description and tags,
// scoped to the user's own timeline.
func (k *Kernel) SearchEvents(ctx context.Context, userID, q string, size int) ([]map[string]any, error) {
	if k.ES == nil || k.ESEventsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":  q,
						"fields": []string{"title^2", "description", "tags"},
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"user_id": userID},
				},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := k.ES.Search(
		k.ES.Search.WithContext(c),
		k.ES.Search.WithIndex(k.ESEventsIndex),
		k.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
