package model

// TimelineEvent is a single entry of the career event log. Events keep the
// order they appear in the source document; display order is load-bearing
// and never re-sorted. Achievements always holds at least one element.
type TimelineEvent struct {
	Period       string
	Event        string
	Achievements []string
}
