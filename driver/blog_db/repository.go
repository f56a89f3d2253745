package blog_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBPool is the subset of pgxpool.Pool the repository uses. pgxmock
// satisfies it, which keeps the driver tests off a live database.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

type BlogDBRepository struct {
	pool DBPool
}

func NewBlogDBRepository(pool DBPool) *BlogDBRepository {
	return &BlogDBRepository{pool: pool}
}
