package post_gateway

import (
	"context"

	"grandriver/domain"
	"grandriver/driver/blog_db"
)

// MutatePostGateway adapts the blog_db repository to the write-side
// post port.
type MutatePostGateway struct {
	repo *blog_db.BlogDBRepository
}

func NewMutatePostGateway(repo *blog_db.BlogDBRepository) *MutatePostGateway {
	return &MutatePostGateway{repo: repo}
}

func (g *MutatePostGateway) InsertPost(ctx context.Context, post *domain.Post) (int64, error) {
	return g.repo.InsertPost(ctx, post)
}

func (g *MutatePostGateway) UpdatePost(ctx context.Context, post *domain.Post) error {
	return g.repo.UpdatePost(ctx, post)
}

func (g *MutatePostGateway) DeletePost(ctx context.Context, id int64) error {
	return g.repo.DeletePost(ctx, id)
}

func (g *MutatePostGateway) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	return g.repo.SlugExists(ctx, slug, excludeID)
}

// PostStatsGateway adapts the blog_db repository to the stats port.
type PostStatsGateway struct {
	repo *blog_db.BlogDBRepository
}

func NewPostStatsGateway(repo *blog_db.BlogDBRepository) *PostStatsGateway {
	return &PostStatsGateway{repo: repo}
}

func (g *PostStatsGateway) FetchPostStats(ctx context.Context) (*domain.PostStats, error) {
	return g.repo.FetchPostStats(ctx)
}
