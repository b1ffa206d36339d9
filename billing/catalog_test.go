package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/statement-engine/billing"
)

func TestNewPlayCatalog_CopiesInput(t *testing.T) {
	plays := map[billing.PlayID]billing.Play{
		"hamlet": {Name: "Hamlet", BaseAudience: 4024, Genre: billing.GenreTragedy},
	}
	catalog, err := billing.NewPlayCatalog(plays)
	require.NoError(t, err)

	// Mutating the source map must not leak into the catalog.
	plays["hamlet"] = billing.Play{Name: "Changed", BaseAudience: 1, Genre: billing.GenreComedy}
	delete(plays, "hamlet")

	play, ok := catalog.Lookup("hamlet")
	require.True(t, ok)
	assert.Equal(t, "Hamlet", play.Name)
	assert.Equal(t, 1, catalog.Len())
}

func TestNewPlayCatalog_RejectsMalformedPlays(t *testing.T) {
	tests := map[string]map[billing.PlayID]billing.Play{
		"empty id":      {"": {Name: "Hamlet", BaseAudience: 10, Genre: billing.GenreTragedy}},
		"empty name":    {"hamlet": {Name: " ", BaseAudience: 10, Genre: billing.GenreTragedy}},
		"zero audience": {"hamlet": {Name: "Hamlet", BaseAudience: 0, Genre: billing.GenreTragedy}},
	}

	for name, plays := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := billing.NewPlayCatalog(plays)
			var playErr *billing.InvalidPlayError
			require.ErrorAs(t, err, &playErr)
			assert.ErrorIs(t, err, billing.ErrInvalidPlay)
		})
	}
}

func TestPlayCatalog_ResolveAndIDs(t *testing.T) {
	catalog, err := billing.NewPlayCatalog(map[billing.PlayID]billing.Play{
		"othello": {Name: "Othello", BaseAudience: 3560, Genre: billing.GenreTragedy},
		"hamlet":  {Name: "Hamlet", BaseAudience: 4024, Genre: billing.GenreTragedy},
	})
	require.NoError(t, err)

	assert.Equal(t, []billing.PlayID{"hamlet", "othello"}, catalog.IDs())

	_, err = catalog.Resolve("lear")
	assert.ErrorIs(t, err, billing.ErrUnknownPlay)
}
