package model

// StockRecord is the static description of a listed company.
type StockRecord struct {
	Symbol      string `json:"symbol" yaml:"symbol"`
	Name        string `json:"name" yaml:"name"`
	Sector      string `json:"sector" yaml:"sector"`
	SubIndustry string `json:"subIndustry" yaml:"subIndustry"`
	Address     string `json:"address" yaml:"address"`
}
