package fetch_post_usecase

import (
	"context"

	"grandriver/domain"
	"grandriver/port/post_port"
)

// FetchFeedPostsUsecase returns the newest published posts for the RSS
// feed, capped at the configured feed limit.
type FetchFeedPostsUsecase struct {
	fetchPostsPort post_port.FetchPostsPort
}

func NewFetchFeedPostsUsecase(fetchPostsPort post_port.FetchPostsPort) *FetchFeedPostsUsecase {
	return &FetchFeedPostsUsecase{fetchPostsPort: fetchPostsPort}
}

func (u *FetchFeedPostsUsecase) Execute(ctx context.Context, limit int) ([]*domain.Post, error) {
	return u.fetchPostsPort.FetchPublishedPosts(ctx, limit, 0)
}

// FetchSitemapUsecase returns the slugs and last-modified times of all
// published posts, newest first.
type FetchSitemapUsecase struct {
	fetchPostsPort post_port.FetchPostsPort
}

func NewFetchSitemapUsecase(fetchPostsPort post_port.FetchPostsPort) *FetchSitemapUsecase {
	return &FetchSitemapUsecase{fetchPostsPort: fetchPostsPort}
}

func (u *FetchSitemapUsecase) Execute(ctx context.Context) ([]domain.SitemapEntry, error) {
	return u.fetchPostsPort.FetchPublishedSlugs(ctx)
}
