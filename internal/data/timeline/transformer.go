package timeline

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/mwynn/careerdeck/internal/core/model"
)

// Transform parses the raw timeline document and normalizes it into an
// ordered list of TimelineEvents. Source order is preserved exactly; no
// sorting, deduplication, or filtering happens here.
func Transform(raw []byte) ([]model.TimelineEvent, error) {
	var events []any
	if err := sonic.Unmarshal(raw, &events); err != nil {
		return nil, fmt.Errorf("parsing timeline data: %w", err)
	}
	return FromRaw(events)
}

// FromRaw normalizes decoded timeline events. Each raw event carries either
// an "achievements" list or, as a fallback, a singular "state" string, which
// is wrapped into a one-element achievements list. An event with neither
// fails with a *model.DataShapeError. An absent "event" title is permitted
// and surfaces as an empty string.
func FromRaw(events []any) ([]model.TimelineEvent, error) {
	out := make([]model.TimelineEvent, 0, len(events))

	for i, raw := range events {
		field := fmt.Sprintf("events[%d]", i)

		entry, ok := raw.(map[string]any)
		if !ok {
			return nil, model.NewDataShapeError(field, "must be an object")
		}

		event := model.TimelineEvent{}

		period, ok := entry["period"]
		if !ok {
			return nil, model.NewDataShapeError(field+".period", "is required")
		}
		if event.Period, ok = period.(string); !ok {
			return nil, model.NewDataShapeError(field+".period", "must be a string")
		}

		if title, ok := entry["event"]; ok {
			s, ok := title.(string)
			if !ok {
				return nil, model.NewDataShapeError(field+".event", "must be a string")
			}
			event.Event = s
		}

		achievements, err := normalizeAchievements(entry, field)
		if err != nil {
			return nil, err
		}
		event.Achievements = achievements

		out = append(out, event)
	}

	return out, nil
}

func normalizeAchievements(entry map[string]any, field string) ([]string, error) {
	if raw, ok := entry["achievements"]; ok {
		items, ok := raw.([]any)
		if !ok {
			return nil, model.NewDataShapeError(field+".achievements", "must be a list of strings")
		}
		if len(items) == 0 {
			return nil, model.NewDataShapeError(field+".achievements", "must not be empty")
		}
		out := make([]string, 0, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, model.NewDataShapeError(fmt.Sprintf("%s.achievements[%d]", field, i), "must be a string")
			}
			out = append(out, s)
		}
		return out, nil
	}

	if raw, ok := entry["state"]; ok {
		s, ok := raw.(string)
		if !ok {
			return nil, model.NewDataShapeError(field+".state", "must be a string")
		}
		return []string{s}, nil
	}

	return nil, model.NewDataShapeError(field, "must have either achievements or state")
}
