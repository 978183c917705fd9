// Package store provides the in-memory data store for stockfolio.
//
// A [Store] holds the ordered working set of users and the immutable list
// of stocks. It is constructed once, either directly with [New] or from
// dataset files with [Load], and passed by pointer to the controllers in
// package core. There is no persistence: edits live until the process exits.
//
// # Lookups
//
// User lookups compare ids in normalized form (see model.ParseID), so a
// numeric id from a dataset matches the same id typed into a form:
//
//	st, _ := store.Load("", "")
//	u, ok := st.FindUserByID(model.ParseID("1"))
//
// Stock lookups match the symbol exactly.
//
// # Datasets
//
// [Load] reads JSON or YAML by file extension. An empty path selects the
// sample dataset embedded in the binary.
package store
