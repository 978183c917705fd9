// Package cli provides the terminal user interface for stockfolio.
//
// The package uses [Bubbletea] for the event loop, [Bubbles] for the user
// list and the form inputs, and [Lipgloss] for styling. [Model] follows the
// standard Bubbletea Model-View-Update architecture and also implements
// core.Surface, so the workflow in package core drives what it shows.
//
// # Layout
//
// Three panes side by side:
//   - Users: filterable list labelled "Lastname, Firstname"
//   - Edit User: six text inputs (id plus five profile fields)
//   - Portfolio: symbol/owned rows with a View button, and the stock detail
//     below once a stock has been viewed
//
// # Keys
//
// Tab and shift+tab move focus, enter selects, v views a stock, ctrl+s
// saves and ctrl+d deletes. Save and delete keys are consumed before the
// focused input sees them.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Bubbles]: https://github.com/charmbracelet/bubbles
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
