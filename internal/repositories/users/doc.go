// Package users provides the durable store for account records.
//
// # Overview
//
// The package defines a Repository interface with the account CRUD contract
// and one SQL implementation (SQLRepository) that speaks two dialects:
// SQLite (the embedded default) and PostgreSQL. Both persist data through a
// dbx.DBTX, so the same repository works over *sql.DB or *sql.Tx.
//
// # Consistency
//
//   - Save with a zero id inserts and returns a copy carrying the new id;
//     with a known id it overwrites every column of that row.
//     An unknown non-zero id is common.ErrorNotFound.
//   - Username uniqueness is enforced by a unique index. A violation surfaces
//     as *common.StorageError wrapping common.ErrorUserNameTaken, which closes
//     the window between ContainsUserName and Save.
//   - Delete with a zero id is a no-op.
//
// Typical Usage
//
//	repo := users.NewSQLiteRepository(db)
//	saved, _ := repo.Save(ctx, &models.User{UserName: "alice01", HashedPassword: h})
//	one, _ := repo.Read(ctx, saved.ID)
//	_ = repo.Delete(ctx, one)
package users
