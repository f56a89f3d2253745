package save_post_usecase

import (
	"context"

	"grandriver/port/post_port"
)

type DeletePostUsecase struct {
	mutatePostsPort post_port.MutatePostsPort
}

func NewDeletePostUsecase(mutatePostsPort post_port.MutatePostsPort) *DeletePostUsecase {
	return &DeletePostUsecase{mutatePostsPort: mutatePostsPort}
}

func (u *DeletePostUsecase) Execute(ctx context.Context, id int64) error {
	return u.mutatePostsPort.DeletePost(ctx, id)
}
