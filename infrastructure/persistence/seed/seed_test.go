package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"presidia-backend/infrastructure/persistence/sqlite"
)

func TestRun_LoadsDemoDataset(t *testing.T) {
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, Run(ctx, store, zap.NewNop()))

	briefings, err := store.ListBriefings(ctx)
	require.NoError(t, err)
	require.Len(t, briefings, 1)
	assert.Equal(t, "2026-02-09", briefings[0].ID)

	meetings, err := store.MeetingsForBriefing(ctx, briefings[0].ID)
	require.NoError(t, err)
	require.Len(t, meetings, 6)
	for i := 1; i < len(meetings); i++ {
		assert.LessOrEqual(t, meetings[i-1].Hour, meetings[i].Hour)
	}

	// Every demo meeting carries a fully joined contact, and each contact
	// has at least a link and a career entry behind it.
	for _, m := range meetings {
		assert.NotEmpty(t, m.ContactName)

		links, err := store.LinksForContact(ctx, m.ContactID)
		require.NoError(t, err)
		assert.NotEmpty(t, links, "contact %s has no links", m.ContactName)

		career, err := store.CareerForContact(ctx, m.ContactID)
		require.NoError(t, err)
		assert.NotEmpty(t, career, "contact %s has no career history", m.ContactName)
	}

	first, err := store.GetMeeting(ctx, meetings[0].ID)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.NotNil(t, first.TalkingPoints)
	assert.NotNil(t, first.Summary)
}
