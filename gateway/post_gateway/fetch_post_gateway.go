package post_gateway

import (
	"context"

	"grandriver/domain"
	"grandriver/driver/blog_db"
)

// FetchPostGateway adapts the blog_db repository to the read-side post
// port.
type FetchPostGateway struct {
	repo *blog_db.BlogDBRepository
}

func NewFetchPostGateway(repo *blog_db.BlogDBRepository) *FetchPostGateway {
	return &FetchPostGateway{repo: repo}
}

func (g *FetchPostGateway) FetchHomePosts(ctx context.Context, limit int) ([]*domain.Post, error) {
	return g.repo.FetchHomePosts(ctx, limit)
}

func (g *FetchPostGateway) FetchPublishedPosts(ctx context.Context, limit, offset int) ([]*domain.Post, error) {
	return g.repo.FetchPublishedPosts(ctx, limit, offset)
}

func (g *FetchPostGateway) FetchRelatedPosts(ctx context.Context, excludeSlug string, limit int) ([]*domain.Post, error) {
	return g.repo.FetchRelatedPosts(ctx, excludeSlug, limit)
}

func (g *FetchPostGateway) FetchAllPosts(ctx context.Context) ([]*domain.Post, error) {
	return g.repo.FetchAllPosts(ctx)
}

func (g *FetchPostGateway) FetchPostBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	return g.repo.FetchPostBySlug(ctx, slug)
}

func (g *FetchPostGateway) FetchPostByID(ctx context.Context, id int64) (*domain.Post, error) {
	return g.repo.FetchPostByID(ctx, id)
}

func (g *FetchPostGateway) CountPublishedPosts(ctx context.Context) (int, error) {
	return g.repo.CountPublishedPosts(ctx)
}

func (g *FetchPostGateway) FetchPublishedTagColumns(ctx context.Context) ([]string, error) {
	return g.repo.FetchPublishedTagColumns(ctx)
}

func (g *FetchPostGateway) FetchPublishedSlugs(ctx context.Context) ([]domain.SitemapEntry, error) {
	return g.repo.FetchPublishedSlugs(ctx)
}
