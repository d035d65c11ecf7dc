// Package postgres is the PostgreSQL facade: structured select, insert,
// update, delete, and raw operations over a single pgx connection.
//
//	db, err := postgres.New(postgres.Config{
//		Host:     "localhost",
//		Port:     5432,
//		User:     "app",
//		Password: "secret",
//		Database: "app",
//	})
//	if err != nil {
//		return err
//	}
//	if err := db.Connect(ctx); err != nil {
//		return err
//	}
//	defer db.Close(ctx)
//
//	rows, err := db.Select(ctx, "users", engine.SelectOpts{
//		Filters: []query.Filter{query.Gt("age", 18)},
//	})
//
// Each facade instance owns its own session; instances never share state.
package postgres
