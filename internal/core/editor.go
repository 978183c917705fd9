package core

import (
	"log/slog"

	"github.com/inovacc/stockfolio/internal/model"
	"github.com/inovacc/stockfolio/internal/store"
)

// EditController applies the edit form to the store.
//
// Both operations trust the id currently in the form, whatever put it
// there. A record that was never selected can be saved or deleted by
// typing its id.
type EditController struct {
	store     *store.Store
	form      FormSurface
	users     *UserListRenderer
	selection *SelectionController
	logger    *slog.Logger
}

// Delete removes the user named by the form id and re-renders the list.
// It reports whether a record was removed.
func (c *EditController) Delete() bool {
	id := model.ParseID(c.form.FieldValue(FieldID))

	if !c.store.RemoveUserByID(id) {
		c.logger.Debug("delete: user not found", "id", id.String())
		return false
	}

	c.selection.clearIf(id)
	c.logger.Info("user deleted", "id", id.String(), "remaining", c.store.Len())
	c.users.Render(c.store.Users())

	return true
}

// Save overwrites the five profile fields of the user named by the form id
// and re-renders the list. It never creates a record.
func (c *EditController) Save() bool {
	id := model.ParseID(c.form.FieldValue(FieldID))

	fields := model.Fields{
		FirstName: c.form.FieldValue(FieldFirstName),
		LastName:  c.form.FieldValue(FieldLastName),
		Address:   c.form.FieldValue(FieldAddress),
		City:      c.form.FieldValue(FieldCity),
		Email:     c.form.FieldValue(FieldEmail),
	}

	if !c.store.UpdateUser(id, fields) {
		c.logger.Debug("save: user not found", "id", id.String())
		return false
	}

	c.logger.Info("user saved", "id", id.String())
	c.users.Render(c.store.Users())

	return true
}
