package core

// Field names a text field of the edit form.
type Field string

const (
	FieldID        Field = "id"
	FieldFirstName Field = "firstname"
	FieldLastName  Field = "lastname"
	FieldAddress   Field = "address"
	FieldCity      Field = "city"
	FieldEmail     Field = "email"
)

// FormFields lists the form fields in display order.
var FormFields = []Field{FieldID, FieldFirstName, FieldLastName, FieldAddress, FieldCity, FieldEmail}

// DetailField names a text slot of the stock detail pane.
type DetailField string

const (
	DetailName     DetailField = "name"
	DetailSector   DetailField = "sector"
	DetailIndustry DetailField = "industry"
	DetailAddress  DetailField = "address"
	DetailLogo     DetailField = "logo"
)

// Action is an intentful user action bound to a callback.
type Action string

const (
	ActionSave   Action = "save"
	ActionDelete Action = "delete"
)

// ListEntry is one rendered line of the user list.
type ListEntry struct {
	ID    string
	Label string
}

// PortfolioRow is one rendered holding: symbol, owned count and a View
// affordance tagged with the symbol.
type PortfolioRow struct {
	Symbol  string
	Owned   string
	ViewTag string
}

// ListSurface renders the selectable user list. Each call replaces the
// previous entries and the previous handler; a surface never holds more
// than one selection handler.
type ListSurface interface {
	RenderUsers(entries []ListEntry, onSelect func(id string))
}

// PortfolioSurface renders the holdings of one user with the same
// replace-not-append rule for its handler.
type PortfolioSurface interface {
	RenderPortfolio(rows []PortfolioRow, onView func(symbol string))
}

// FormSurface exposes the edit form fields as text.
type FormSurface interface {
	SetField(f Field, value string)
	FieldValue(f Field) string
}

// DetailSurface is the stock detail pane.
type DetailSurface interface {
	SetDetail(f DetailField, value string)
	ShowDetail()
	DetailVisible() bool
}

// ActionBinder binds a callback to a user action. The surface consumes the
// triggering input so nothing else reacts to it. Binding again replaces.
type ActionBinder interface {
	BindAction(a Action, fn func())
}

// Surface is everything the controllers need from the presentation layer.
type Surface interface {
	ListSurface
	PortfolioSurface
	FormSurface
	DetailSurface
	ActionBinder
}
