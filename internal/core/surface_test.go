package core

// fakeSurface records what the controllers asked it to show. Like a real
// container, each render replaces the previous handler.
type fakeSurface struct {
	entries     []ListEntry
	onSelect    func(id string)
	listRenders int

	rows             []PortfolioRow
	onView           func(symbol string)
	portfolioRenders int

	fields map[Field]string

	detail        map[DetailField]string
	detailVisible bool

	actions map[Action]func()
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		fields:  map[Field]string{},
		detail:  map[DetailField]string{},
		actions: map[Action]func(){},
	}
}

func (f *fakeSurface) RenderUsers(entries []ListEntry, onSelect func(id string)) {
	f.entries = entries
	f.onSelect = onSelect
	f.listRenders++
}

func (f *fakeSurface) RenderPortfolio(rows []PortfolioRow, onView func(symbol string)) {
	f.rows = rows
	f.onView = onView
	f.portfolioRenders++
}

func (f *fakeSurface) SetField(field Field, value string) { f.fields[field] = value }

func (f *fakeSurface) FieldValue(field Field) string { return f.fields[field] }

func (f *fakeSurface) SetDetail(field DetailField, value string) { f.detail[field] = value }

func (f *fakeSurface) ShowDetail() { f.detailVisible = true }

func (f *fakeSurface) DetailVisible() bool { return f.detailVisible }

func (f *fakeSurface) BindAction(a Action, fn func()) { f.actions[a] = fn }

// click simulates selecting a rendered list entry.
func (f *fakeSurface) click(id string) {
	if f.onSelect != nil {
		f.onSelect(id)
	}
}

// view simulates activating a View affordance.
func (f *fakeSurface) view(tag string) {
	if f.onView != nil {
		f.onView(tag)
	}
}

func (f *fakeSurface) trigger(a Action) {
	if fn, ok := f.actions[a]; ok {
		fn()
	}
}

func (f *fakeSurface) labels() []string {
	out := make([]string, len(f.entries))
	for i, e := range f.entries {
		out[i] = e.Label
	}

	return out
}

func (f *fakeSurface) copyFields() map[Field]string {
	out := make(map[Field]string, len(f.fields))
	for k, v := range f.fields {
		out[k] = v
	}

	return out
}
