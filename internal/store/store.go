package store

import (
	"slices"

	"github.com/inovacc/stockfolio/internal/model"
)

// Store holds the working copy of users and the read-only stock reference
// data. It is built once at startup and shared by pointer with every
// controller. All access happens from the UI event loop, one handler at a
// time, so it carries no locking.
type Store struct {
	users  []*model.UserRecord
	stocks []model.StockRecord
}

// New creates a Store over the given records. The store takes ownership of
// the user records; the stock slice is copied.
func New(users []*model.UserRecord, stocks []model.StockRecord) *Store {
	return &Store{
		users:  users,
		stocks: slices.Clone(stocks),
	}
}

// Users returns the current ordered working set. The slice is a snapshot of
// the ordering; the records themselves are the live ones.
func (s *Store) Users() []*model.UserRecord {
	return slices.Clone(s.users)
}

// Stocks returns the ordered stock reference data.
func (s *Store) Stocks() []model.StockRecord {
	return slices.Clone(s.stocks)
}

// Len returns the number of users in the working set.
func (s *Store) Len() int {
	return len(s.users)
}

// FindUserByID returns the first user whose id matches after normalization.
func (s *Store) FindUserByID(id model.ID) (*model.UserRecord, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.users[i], true
	}

	return nil, false
}

// RemoveUserByID removes the first matching user, keeping the order of the
// rest. It reports whether anything was removed.
func (s *Store) RemoveUserByID(id model.ID) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.users = slices.Delete(s.users, i, i+1)

	return true
}

// UpdateUser overwrites the editable fields of the first matching user in
// place. It never inserts; a missing id reports false.
func (s *Store) UpdateUser(id model.ID, fields model.Fields) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.users[i].User.Apply(fields)

	return true
}

// FindStockBySymbol looks a stock up by its exact symbol.
func (s *Store) FindStockBySymbol(symbol string) (model.StockRecord, bool) {
	for _, st := range s.stocks {
		if st.Symbol == symbol {
			return st, true
		}
	}

	return model.StockRecord{}, false
}

func (s *Store) indexOf(id model.ID) int {
	return slices.IndexFunc(s.users, func(u *model.UserRecord) bool {
		return u.ID.Equal(id)
	})
}
