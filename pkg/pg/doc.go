// Package pg connects to PostgreSQL through a pgx pool and applies goose
// migrations shipped inside the binary.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, migrations.FS, log); err != nil {
//	    return err
//	}
//
// IsNotFoundError and IsDuplicateKeyError classify driver errors so
// repositories can map them to their own sentinels.
package pg
