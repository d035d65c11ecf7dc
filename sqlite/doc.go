// Package sqlite is the SQLite facade: structured select, insert, update,
// delete, and raw operations over a single file-backed session.
//
//	db, err := sqlite.New(sqlite.Config{Path: "app.db"})
//	if err != nil {
//		return err
//	}
//	if err := db.Connect(ctx); err != nil {
//		return err
//	}
//	defer db.Close(ctx)
//
// Booleans are bound as 0/1 integers and decoded back to bool for columns
// declared BOOLEAN, matching how SQLite itself stores them.
package sqlite
