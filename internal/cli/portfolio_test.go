package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/stockfolio/internal/core"
	"github.com/inovacc/stockfolio/internal/model"
	"github.com/inovacc/stockfolio/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (*Model, *core.App) {
	t.Helper()

	users := []*model.UserRecord{
		{ID: model.ParseID("1"), User: model.Profile{
			FirstName: "Ann", LastName: "Lee", City: "Oslo",
			Portfolio: []model.PortfolioEntry{
				{Symbol: "AAPL", Owned: decimal.NewFromInt(10)},
				{Symbol: "KO", Owned: decimal.NewFromInt(4)},
			},
		}},
		{ID: model.ParseID("2"), User: model.Profile{FirstName: "Bo", LastName: "Ng", City: "Bergen"}},
	}
	stocks := []model.StockRecord{
		{Symbol: "AAPL", Name: "Apple Inc.", Sector: "Information Technology"},
		{Symbol: "KO", Name: "Coca-Cola", Sector: "Consumer Staples"},
	}

	m := NewModel()
	app := core.New(store.New(users, stocks), m).OnResult(m.ReportResult)
	app.Start()

	m.Update(tea.WindowSizeMsg{Width: 150, Height: 40})

	return m, app
}

func press(m *Model, msgs ...tea.KeyMsg) {
	for _, k := range msgs {
		m.Update(k)
	}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyBack  = tea.KeyMsg{Type: tea.KeyShiftTab}
	keySave  = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyDel   = tea.KeyMsg{Type: tea.KeyCtrlD}
	keyV     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")}
)

func TestModel_InitialList(t *testing.T) {
	m, _ := newTestModel(t)

	items := m.users.Items()
	require.Len(t, items, 2)
	require.Equal(t, "Lee, Ann", items[0].(userItem).Title())
	require.Equal(t, "Ng, Bo", items[1].(userItem).Title())
	require.Equal(t, paneUsers, m.focus)
}

func TestModel_SelectUserFillsForm(t *testing.T) {
	m, app := newTestModel(t)

	press(m, keyDown, keyEnter)

	require.Equal(t, "2", m.FieldValue(core.FieldID))
	require.Equal(t, "Bo", m.FieldValue(core.FieldFirstName))
	require.Equal(t, "Bergen", m.FieldValue(core.FieldCity))
	require.Empty(t, m.rows)
	require.Equal(t, core.UserSelected, app.Selection().Selection().State)
}

func TestModel_ViewStockFromPortfolio(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, keyEnter)
	require.Len(t, m.rows, 2)
	require.False(t, m.DetailVisible())

	// users -> 6 inputs -> portfolio, one step back from users
	press(m, keyBack)
	require.Equal(t, panePortfolio, m.focus)

	press(m, keyDown, keyV)

	require.True(t, m.DetailVisible())
	require.Equal(t, "Coca-Cola", m.detail[core.DetailName])
	require.Equal(t, "logos/KO.svg", m.detail[core.DetailLogo])
	require.Contains(t, m.View(), "Coca-Cola")
}

func TestModel_EditAndSave(t *testing.T) {
	m, app := newTestModel(t)

	press(m, keyEnter, keyTab, keyTab)
	require.Equal(t, paneForm, m.focus)
	require.Equal(t, 1, m.formFocus)

	// typing goes to the focused first name input
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ie")})
	require.Equal(t, "Annie", m.FieldValue(core.FieldFirstName))

	press(m, keySave)

	u, ok := app.Store().FindUserByID(model.ParseID("1"))
	require.True(t, ok)
	require.Equal(t, "Annie", u.User.FirstName)
	require.Equal(t, "Lee, Annie", m.users.Items()[0].(userItem).Title())
	require.Equal(t, "saved", m.status)
}

func TestModel_DeleteKeyIsConsumed(t *testing.T) {
	m, app := newTestModel(t)

	press(m, keyEnter, keyTab)
	require.Equal(t, 0, m.formFocus)

	press(m, keyDel)

	// ctrl+d would delete a character in a text input; here it deletes the user
	require.Equal(t, "1", m.FieldValue(core.FieldID))
	require.Equal(t, 1, app.Store().Len())
	require.Len(t, m.users.Items(), 1)
	require.Equal(t, "deleted", m.status)

	press(m, keyDel)
	require.Equal(t, "no matching user", m.status)
	require.False(t, m.statusOK)
}

func TestModel_RenderReplacesHandler(t *testing.T) {
	m, _ := newTestModel(t)

	calls := 0
	m.RenderUsers([]core.ListEntry{{ID: "9", Label: "X, Y"}}, func(string) { calls++ })
	m.RenderUsers([]core.ListEntry{{ID: "9", Label: "X, Y"}}, func(string) { calls++ })

	press(m, keyEnter)

	require.Equal(t, 1, calls)
	require.Len(t, m.users.Items(), 1)
}

func TestModel_CursorClampedAfterDelete(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, keyDown, keyEnter, keyDel)

	require.Len(t, m.users.Items(), 1)
	require.Equal(t, 0, m.users.Index())
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.Empty(t, m.View())
}
