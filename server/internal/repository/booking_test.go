package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/practicum/shareit/server/internal/model"
)

func Test_listBookingsQuery(t *testing.T) {
	t.Parallel()

	var (
		actorID = int64(2)
		now     = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		page    = model.PageRequest{Page: 0, Size: 10}
	)

	tests := []struct {
		name         string
		role         model.Role
		state        model.State
		wantContains []string
		wantArgs     []interface{}
	}{
		{
			name:         "booker all",
			role:         model.RoleBooker,
			state:        model.StateAll,
			wantContains: []string{"b.booker_id = $1"},
			wantArgs:     []interface{}{actorID},
		},
		{
			name:         "owner all",
			role:         model.RoleOwner,
			state:        model.StateAll,
			wantContains: []string{"i.owner_id = $1"},
			wantArgs:     []interface{}{actorID},
		},
		{
			name:  "booker current",
			role:  model.RoleBooker,
			state: model.StateCurrent,
			// start inclusive, end exclusive
			wantContains: []string{"b.booker_id = $1", "b.start_ts <= $2", "b.end_ts > $3"},
			wantArgs:     []interface{}{actorID, now, now},
		},
		{
			name:         "booker past",
			role:         model.RoleBooker,
			state:        model.StatePast,
			wantContains: []string{"b.booker_id = $1", "b.end_ts < $2"},
			wantArgs:     []interface{}{actorID, now},
		},
		{
			name:         "booker future",
			role:         model.RoleBooker,
			state:        model.StateFuture,
			wantContains: []string{"b.booker_id = $1", "b.start_ts > $2"},
			wantArgs:     []interface{}{actorID, now},
		},
		{
			name:         "booker waiting",
			role:         model.RoleBooker,
			state:        model.StateWaiting,
			wantContains: []string{"b.booker_id = $1", "b.status = $2"},
			wantArgs:     []interface{}{actorID, model.StatusWaiting},
		},
		{
			name:         "booker rejected",
			role:         model.RoleBooker,
			state:        model.StateRejected,
			wantContains: []string{"b.booker_id = $1", "b.status = $2"},
			wantArgs:     []interface{}{actorID, model.StatusRejected},
		},
		{
			name:         "owner waiting",
			role:         model.RoleOwner,
			state:        model.StateWaiting,
			wantContains: []string{"i.owner_id = $1", "b.status = $2"},
			wantArgs:     []interface{}{actorID, model.StatusWaiting},
		},
		{
			name:         "owner rejected",
			role:         model.RoleOwner,
			state:        model.StateRejected,
			wantContains: []string{"i.owner_id = $1", "b.status = $2"},
			wantArgs:     []interface{}{actorID, model.StatusRejected},
		},
		{
			name:         "owner current",
			role:         model.RoleOwner,
			state:        model.StateCurrent,
			wantContains: []string{"i.owner_id = $1", "b.start_ts <= $2", "b.end_ts > $3"},
			wantArgs:     []interface{}{actorID, now, now},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			query, args, err := listBookingsQuery(actorID, tt.role, tt.state, now, page)
			require.NoError(t, err)

			for _, fragment := range tt.wantContains {
				require.Contains(t, query, fragment)
			}
			require.Contains(t, query, "ORDER BY b.start_ts desc")
			require.Contains(t, query, "LIMIT 10 OFFSET 0")
			require.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_listBookingsQuery_AllHasNoTimePredicates(t *testing.T) {
	t.Parallel()

	now := time.Now()
	query, _, err := listBookingsQuery(2, model.RoleBooker, model.StateAll, now, model.PageRequest{Page: 0, Size: 10})
	require.NoError(t, err)

	require.NotContains(t, query, "b.status =")
	require.NotContains(t, query, "b.start_ts <=")
	require.NotContains(t, query, "b.start_ts >")
	require.NotContains(t, query, "b.end_ts <")
	require.NotContains(t, query, "b.end_ts >")
}

func Test_listBookingsQuery_PageWindow(t *testing.T) {
	t.Parallel()

	page, err := model.NewPageRequest(7, 3)
	require.NoError(t, err)

	query, _, err := listBookingsQuery(2, model.RoleBooker, model.StateAll, time.Now(), page)
	require.NoError(t, err)
	require.Contains(t, query, "LIMIT 3 OFFSET 6")
}
