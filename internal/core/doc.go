// Package core provides the workflow layer for stockfolio.
//
// This package contains the selection and edit logic separated from any
// presentation toolkit. Controllers talk to the screen only through the
// small capability interfaces in surface.go, so the whole workflow runs
// headless in tests.
//
// # Design Principles
//
//   - Every lookup that misses is a silent no-op: no error, no state change
//   - Renders replace prior content and attach exactly one handler
//   - UI-specific logic belongs in the cli package, not here
//
// # Workflow
//
// [App.Start] renders the user list and binds Save and Delete. Selecting a
// list entry calls [SelectionController.SelectUser], which fills the form
// and renders the portfolio. A portfolio View calls
// [SelectionController.ViewStock]. [EditController.Save] and
// [EditController.Delete] act on the id held in the form and re-render
// the list afterwards.
package core
