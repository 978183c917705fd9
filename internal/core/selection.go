package core

import (
	"log/slog"

	"github.com/inovacc/stockfolio/internal/model"
	"github.com/inovacc/stockfolio/internal/store"
)

// SelectionState is the state of the selection controller.
type SelectionState int

const (
	NoSelection SelectionState = iota
	UserSelected
)

func (s SelectionState) String() string {
	switch s {
	case UserSelected:
		return "user selected"
	default:
		return "no selection"
	}
}

// Selection is the user currently loaded into the edit form, if any.
type Selection struct {
	State SelectionState
	ID    model.ID
}

// SelectionController loads users into the form and stocks into the detail pane.
type SelectionController struct {
	store     *store.Store
	form      FormSurface
	detail    DetailSurface
	portfolio *PortfolioRenderer
	logoDir   string
	logoExt   string
	selection Selection
	logger    *slog.Logger
}

// Selection returns the current selection.
func (c *SelectionController) Selection() Selection {
	return c.selection
}

// SelectUser loads the user with the given id into the form and renders
// their portfolio. An unknown id changes nothing.
func (c *SelectionController) SelectUser(id string) {
	user, ok := c.store.FindUserByID(model.ParseID(id))
	if !ok {
		c.logger.Debug("select: user not found", "id", id)
		return
	}

	c.selection = Selection{State: UserSelected, ID: user.ID}

	c.form.SetField(FieldID, user.ID.String())
	c.form.SetField(FieldFirstName, user.User.FirstName)
	c.form.SetField(FieldLastName, user.User.LastName)
	c.form.SetField(FieldAddress, user.User.Address)
	c.form.SetField(FieldCity, user.User.City)
	c.form.SetField(FieldEmail, user.User.Email)

	c.portfolio.Render(user)
}

// ViewStock fills and reveals the detail pane for a symbol. It does not
// depend on the selection; an unknown symbol leaves the pane as it was.
func (c *SelectionController) ViewStock(symbol string) {
	stock, ok := c.store.FindStockBySymbol(symbol)
	if !ok {
		c.logger.Debug("view: stock not found", "symbol", symbol)
		return
	}

	c.detail.SetDetail(DetailName, stock.Name)
	c.detail.SetDetail(DetailSector, stock.Sector)
	c.detail.SetDetail(DetailIndustry, stock.SubIndustry)
	c.detail.SetDetail(DetailAddress, stock.Address)
	c.detail.SetDetail(DetailLogo, LogoPath(c.logoDir, stock.Symbol, c.logoExt))
	c.detail.ShowDetail()
}

// clearIf drops the selection when it points at the given id.
func (c *SelectionController) clearIf(id model.ID) {
	if c.selection.State == UserSelected && c.selection.ID.Equal(id) {
		c.selection = Selection{}
	}
}
