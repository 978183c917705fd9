package store

import (
	"testing"

	"github.com/inovacc/stockfolio/internal/model"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	users := []*model.UserRecord{
		{ID: model.ParseID("1"), User: model.Profile{FirstName: "Ann", LastName: "Lee", City: "Oslo"}},
		{ID: model.ParseID("2"), User: model.Profile{FirstName: "Bo", LastName: "Ng", City: "Bergen"}},
		{ID: model.ParseID("x7"), User: model.Profile{FirstName: "Cy", LastName: "Ode"}},
	}
	stocks := []model.StockRecord{
		{Symbol: "AAPL", Name: "Apple Inc."},
		{Symbol: "KO", Name: "Coca-Cola Company (The)"},
	}

	return New(users, stocks)
}

func ids(users []*model.UserRecord) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.ID.String()
	}

	return out
}

func TestFindUserByID(t *testing.T) {
	s := newTestStore()

	tests := []struct {
		name   string
		id     string
		wantOK bool
		want   string
	}{
		{name: "numeric text", id: "2", wantOK: true, want: "Bo"},
		{name: "float form", id: "2.0", wantOK: true, want: "Bo"},
		{name: "padded", id: " 1 ", wantOK: true, want: "Ann"},
		{name: "string id", id: "x7", wantOK: true, want: "Cy"},
		{name: "missing", id: "9", wantOK: false},
		{name: "empty", id: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, ok := s.FindUserByID(model.ParseID(tt.id))
			require.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				require.Equal(t, tt.want, u.User.FirstName)
			} else {
				require.Nil(t, u)
			}
		})
	}
}

func TestRemoveUserByID(t *testing.T) {
	s := newTestStore()

	require.True(t, s.RemoveUserByID(model.ParseID("2")))
	require.Equal(t, []string{"1", "x7"}, ids(s.Users()))

	require.False(t, s.RemoveUserByID(model.ParseID("2")))
	require.Equal(t, 2, s.Len())
}

func TestRemoveUserByID_AbsentLeavesCollection(t *testing.T) {
	s := newTestStore()
	before := s.Users()

	require.False(t, s.RemoveUserByID(model.ParseID("42")))

	after := s.Users()
	require.Len(t, after, len(before))

	for i := range before {
		require.Same(t, before[i], after[i])
	}
}

func TestUpdateUser_InPlace(t *testing.T) {
	s := newTestStore()
	held, ok := s.FindUserByID(model.ParseID("1"))
	require.True(t, ok)

	fields := model.Fields{FirstName: "Anne", LastName: "Lee", Address: "2 Pier", City: "Oslo", Email: "anne@x.io"}
	require.True(t, s.UpdateUser(model.ParseID("1"), fields))

	// the reference taken before the update observes it
	require.Equal(t, "Anne", held.User.FirstName)
	require.Equal(t, "anne@x.io", held.User.Email)
	require.Equal(t, "1", held.ID.String())
}

func TestUpdateUser_NeverInserts(t *testing.T) {
	s := newTestStore()

	require.False(t, s.UpdateUser(model.ParseID("99"), model.Fields{FirstName: "Nobody"}))
	require.Equal(t, 3, s.Len())
}

func TestUsers_SnapshotOrdering(t *testing.T) {
	s := newTestStore()
	snap := s.Users()

	require.True(t, s.RemoveUserByID(model.ParseID("1")))
	require.Len(t, snap, 3)
	require.Equal(t, 2, s.Len())
}

func TestFindStockBySymbol(t *testing.T) {
	s := newTestStore()

	st, ok := s.FindStockBySymbol("KO")
	require.True(t, ok)
	require.Equal(t, "Coca-Cola Company (The)", st.Name)

	_, ok = s.FindStockBySymbol("ko")
	require.False(t, ok)

	_, ok = s.FindStockBySymbol("ZZZ")
	require.False(t, ok)
}
