// Package pg reads a PostgreSQL table into a dataset and writes an
// anonymization mapping back to it, using the pgx/v5 driver.
//
// Config is populated from environment variables (see the field tags) and
// Connect opens a *pgxpool.Pool, retrying while the database comes up.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	ds, err := pg.LoadTable(ctx, pool, "public.rides", "ride_name")
//	if err != nil {
//	    return err
//	}
//	_, mapping, err := a.Anonymize(ctx, ds)
//	if err != nil {
//	    return err
//	}
//	updated, err := pg.ApplyMapping(ctx, pool, "public.rides", "ride_name", mapping)
//
// Table and column names are quoted with pgx.Identifier, so they are taken
// literally and never interpolated as SQL.
//
// # Error Handling
//
// IsNotFoundError, IsUndefinedTableError and IsUndefinedColumnError classify
// errors returned by pgx, including those wrapped by this package.
package pg
