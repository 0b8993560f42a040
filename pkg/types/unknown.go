package types

import "errors"

// ErrNoUnknownsLeft is returned when the review backlog is empty and the
// caller asked for the next entry.
var ErrNoUnknownsLeft = errors.New("no unknowns left to review")

// Unknown is a pending-resolution record: a raw ingredient fragment
// owned by exactly one recipe, created when the recipe was stored with
// unresolved text and destroyed when resolved or discarded. Title and
// URL are carried along for display; the (RecipeID, Text) pair is what
// identifies the record.
type Unknown struct {
	RecipeID int64
	Title    string
	URL      string
	Text     string
}

// ReviewGroup collects the pending fragments of one recipe, as returned
// by the grouped backlog views.
type ReviewGroup struct {
	Title string
	URL   string
	Texts []string
}
