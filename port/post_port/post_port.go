package post_port

import (
	"context"

	"grandriver/domain"
)

// FetchPostsPort reads posts for the public and admin surfaces.
type FetchPostsPort interface {
	FetchHomePosts(ctx context.Context, limit int) ([]*domain.Post, error)
	FetchPublishedPosts(ctx context.Context, limit, offset int) ([]*domain.Post, error)
	FetchRelatedPosts(ctx context.Context, excludeSlug string, limit int) ([]*domain.Post, error)
	FetchAllPosts(ctx context.Context) ([]*domain.Post, error)
	FetchPostBySlug(ctx context.Context, slug string) (*domain.Post, error)
	FetchPostByID(ctx context.Context, id int64) (*domain.Post, error)
	CountPublishedPosts(ctx context.Context) (int, error)
	FetchPublishedTagColumns(ctx context.Context) ([]string, error)
	FetchPublishedSlugs(ctx context.Context) ([]domain.SitemapEntry, error)
}

// MutatePostsPort writes posts.
type MutatePostsPort interface {
	InsertPost(ctx context.Context, post *domain.Post) (int64, error)
	UpdatePost(ctx context.Context, post *domain.Post) error
	DeletePost(ctx context.Context, id int64) error
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
}

// PostStatsPort reads the dashboard counters.
type PostStatsPort interface {
	FetchPostStats(ctx context.Context) (*domain.PostStats, error)
}
