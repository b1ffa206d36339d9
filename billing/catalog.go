package billing

import (
	"sort"
	"strings"
)

// PlayCatalog is a read-only lookup from play ID to play metadata. It is
// safe to share between concurrent statement runs.
type PlayCatalog struct {
	plays map[PlayID]Play
}

// NewPlayCatalog copies plays into a new catalog after validating each entry.
// Genres are not checked here; a play with an unregistered genre fails when
// it is priced.
func NewPlayCatalog(plays map[PlayID]Play) (*PlayCatalog, error) {
	copied := make(map[PlayID]Play, len(plays))
	for id, play := range plays {
		if strings.TrimSpace(string(id)) == "" {
			return nil, &InvalidPlayError{PlayID: id, Reason: "empty play id"}
		}
		if strings.TrimSpace(play.Name) == "" {
			return nil, &InvalidPlayError{PlayID: id, Reason: "empty name"}
		}
		if play.BaseAudience <= 0 {
			return nil, &InvalidPlayError{PlayID: id, Reason: "base audience must be positive"}
		}
		copied[id] = play
	}
	return &PlayCatalog{plays: copied}, nil
}

// Lookup returns the play for id.
func (c *PlayCatalog) Lookup(id PlayID) (Play, bool) {
	play, ok := c.plays[id]
	return play, ok
}

// Resolve is Lookup with an UnknownPlayError for missing IDs.
func (c *PlayCatalog) Resolve(id PlayID) (Play, error) {
	play, ok := c.plays[id]
	if !ok {
		return Play{}, &UnknownPlayError{PlayID: id}
	}
	return play, nil
}

func (c *PlayCatalog) Len() int { return len(c.plays) }

// IDs returns all play IDs in lexical order.
func (c *PlayCatalog) IDs() []PlayID {
	ids := make([]PlayID, 0, len(c.plays))
	for id := range c.plays {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
