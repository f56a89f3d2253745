package fetch_post_usecase

import (
	"context"

	"grandriver/domain"
	"grandriver/port/post_port"
)

// FetchHomePostsUsecase loads the posts shown on the home page,
// featured entries first.
type FetchHomePostsUsecase struct {
	fetchPostsPort post_port.FetchPostsPort
}

func NewFetchHomePostsUsecase(fetchPostsPort post_port.FetchPostsPort) *FetchHomePostsUsecase {
	return &FetchHomePostsUsecase{fetchPostsPort: fetchPostsPort}
}

func (u *FetchHomePostsUsecase) Execute(ctx context.Context, limit int) ([]*domain.Post, error) {
	return u.fetchPostsPort.FetchHomePosts(ctx, limit)
}
