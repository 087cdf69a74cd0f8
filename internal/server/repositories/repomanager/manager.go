package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/railticket/internal/dbx"
	"github.com/dmitrijs2005/railticket/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DB handle or transaction
// and migrates the schema.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
