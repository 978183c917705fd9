// Package model defines the data structures used throughout stockfolio.
//
// # Users
//
// A [UserRecord] pairs an [ID] with a [Profile]. The profile holds five
// editable text fields and a read-only portfolio of [PortfolioEntry] values:
//
//	type UserRecord struct {
//	    ID   ID      // canonical, loosely compared identifier
//	    User Profile // firstname, lastname, address, city, email, portfolio
//	}
//
// Ids arrive as JSON numbers from datasets and as text from the edit form.
// [ParseID] and [ID.Equal] normalize both sides so the two always meet.
//
// # Stocks
//
// A [StockRecord] is immutable reference data keyed by symbol.
//
// # Config
//
// The [Config] struct mirrors the sections of the ini configuration file.
package model
