package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Profile is the personal data of a user plus their holdings.
type Profile struct {
	FirstName string `json:"firstname" yaml:"firstname"`
	LastName  string `json:"lastname" yaml:"lastname"`
	Address   string `json:"address" yaml:"address"`
	City      string `json:"city" yaml:"city"`
	Email     string `json:"email" yaml:"email"`

	// Portfolio is read-only in this application
	Portfolio []PortfolioEntry `json:"portfolio" yaml:"portfolio"`
}

// Fields returns the editable part of the profile.
func (p *Profile) Fields() Fields {
	return Fields{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Address:   p.Address,
		City:      p.City,
		Email:     p.Email,
	}
}

// Apply overwrites the editable part of the profile. The portfolio is left alone.
func (p *Profile) Apply(f Fields) {
	p.FirstName = f.FirstName
	p.LastName = f.LastName
	p.Address = f.Address
	p.City = f.City
	p.Email = f.Email
}

// Fields are the five text values a save writes back to a profile.
type Fields struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	Email     string
}

// PortfolioEntry is a holding of one stock.
type PortfolioEntry struct {
	Symbol string          `json:"symbol" yaml:"symbol"`
	Owned  decimal.Decimal `json:"owned" yaml:"owned"`
}

// MarshalJSON writes Owned as a JSON number, the way datasets carry it.
func (e PortfolioEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Symbol string      `json:"symbol"`
		Owned  json.Number `json:"owned"`
	}{
		Symbol: e.Symbol,
		Owned:  json.Number(e.Owned.String()),
	})
}
