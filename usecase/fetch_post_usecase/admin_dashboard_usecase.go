package fetch_post_usecase

import (
	"context"

	"grandriver/domain"
	"grandriver/port/post_port"
)

// AdminDashboard carries the full post list, drafts included, together
// with the aggregate counters shown at the top of the dashboard.
type AdminDashboard struct {
	Posts []*domain.Post
	Stats *domain.PostStats
}

type FetchAdminDashboardUsecase struct {
	fetchPostsPort post_port.FetchPostsPort
	statsPort      post_port.PostStatsPort
}

func NewFetchAdminDashboardUsecase(fetchPostsPort post_port.FetchPostsPort, statsPort post_port.PostStatsPort) *FetchAdminDashboardUsecase {
	return &FetchAdminDashboardUsecase{
		fetchPostsPort: fetchPostsPort,
		statsPort:      statsPort,
	}
}

func (u *FetchAdminDashboardUsecase) Execute(ctx context.Context) (*AdminDashboard, error) {
	posts, err := u.fetchPostsPort.FetchAllPosts(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := u.statsPort.FetchPostStats(ctx)
	if err != nil {
		return nil, err
	}

	return &AdminDashboard{Posts: posts, Stats: stats}, nil
}
