package core

import (
	"log/slog"

	"github.com/inovacc/stockfolio/internal/model"
)

// UserListRenderer turns the user collection into list entries.
type UserListRenderer struct {
	surface  ListSurface
	onSelect func(id string)
	logger   *slog.Logger
}

// Render fully replaces the rendered list and re-attaches exactly one
// selection handler.
func (r *UserListRenderer) Render(users []*model.UserRecord) {
	entries := make([]ListEntry, len(users))
	for i, u := range users {
		entries[i] = ListEntry{ID: u.ID.String(), Label: u.Label()}
	}

	r.logger.Debug("rendering user list", "count", len(entries))
	r.surface.RenderUsers(entries, r.onSelect)
}

// PortfolioRenderer turns a user's holdings into rows.
type PortfolioRenderer struct {
	surface PortfolioSurface
	onView  func(symbol string)
	logger  *slog.Logger
}

// Render replaces the portfolio display with one row per entry, in order.
func (r *PortfolioRenderer) Render(user *model.UserRecord) {
	rows := PortfolioRows(user)

	r.logger.Debug("rendering portfolio", "user", user.ID.String(), "rows", len(rows))
	r.surface.RenderPortfolio(rows, r.onView)
}

// PortfolioRows builds the rows for a user without rendering them.
func PortfolioRows(user *model.UserRecord) []PortfolioRow {
	rows := make([]PortfolioRow, len(user.User.Portfolio))
	for i, e := range user.User.Portfolio {
		rows[i] = PortfolioRow{
			Symbol:  e.Symbol,
			Owned:   e.Owned.String(),
			ViewTag: e.Symbol,
		}
	}

	return rows
}
