package di

import (
	"grandriver/config"
	"grandriver/driver/blog_db"
	"grandriver/gateway/post_gateway"
	"grandriver/gateway/settings_gateway"
	"grandriver/usecase/auth_usecase"
	"grandriver/usecase/backup_usecase"
	"grandriver/usecase/fetch_post_usecase"
	"grandriver/usecase/save_post_usecase"
	"grandriver/usecase/settings_usecase"
)

type ApplicationComponents struct {
	FetchHomePostsUsecase      *fetch_post_usecase.FetchHomePostsUsecase
	FetchBlogIndexUsecase      *fetch_post_usecase.FetchBlogIndexUsecase
	FetchPostDetailUsecase     *fetch_post_usecase.FetchPostDetailUsecase
	FetchAdminDashboardUsecase *fetch_post_usecase.FetchAdminDashboardUsecase
	FetchFeedPostsUsecase      *fetch_post_usecase.FetchFeedPostsUsecase
	FetchSitemapUsecase        *fetch_post_usecase.FetchSitemapUsecase
	SavePostUsecase            *save_post_usecase.SavePostUsecase
	DuplicatePostUsecase       *save_post_usecase.DuplicatePostUsecase
	DeletePostUsecase          *save_post_usecase.DeletePostUsecase
	FetchSettingsUsecase       *settings_usecase.FetchSettingsUsecase
	BackupPostsUsecase         *backup_usecase.BackupPostsUsecase
	AuthUsecase                *auth_usecase.AuthUsecase
	Assets                     config.AssetsConfig
	BlogDBRepository           *blog_db.BlogDBRepository
}

func NewApplicationComponents(pool blog_db.DBPool, cfg *config.Config) (*ApplicationComponents, error) {
	repository := blog_db.NewBlogDBRepository(pool)

	// Gateways bridge the ports onto the single repository.
	fetchPostGateway := post_gateway.NewFetchPostGateway(repository)
	mutatePostGateway := post_gateway.NewMutatePostGateway(repository)
	postStatsGateway := post_gateway.NewPostStatsGateway(repository)
	settingsGateway := settings_gateway.NewSettingsGateway(repository)

	authUsecase, err := auth_usecase.NewAuthUsecase(cfg.Admin)
	if err != nil {
		return nil, err
	}

	return &ApplicationComponents{
		FetchHomePostsUsecase:      fetch_post_usecase.NewFetchHomePostsUsecase(fetchPostGateway),
		FetchBlogIndexUsecase:      fetch_post_usecase.NewFetchBlogIndexUsecase(fetchPostGateway),
		FetchPostDetailUsecase:     fetch_post_usecase.NewFetchPostDetailUsecase(fetchPostGateway),
		FetchAdminDashboardUsecase: fetch_post_usecase.NewFetchAdminDashboardUsecase(fetchPostGateway, postStatsGateway),
		FetchFeedPostsUsecase:      fetch_post_usecase.NewFetchFeedPostsUsecase(fetchPostGateway),
		FetchSitemapUsecase:        fetch_post_usecase.NewFetchSitemapUsecase(fetchPostGateway),
		SavePostUsecase:            save_post_usecase.NewSavePostUsecase(fetchPostGateway, mutatePostGateway),
		DuplicatePostUsecase:       save_post_usecase.NewDuplicatePostUsecase(fetchPostGateway, mutatePostGateway),
		DeletePostUsecase:          save_post_usecase.NewDeletePostUsecase(mutatePostGateway),
		FetchSettingsUsecase:       settings_usecase.NewFetchSettingsUsecase(settingsGateway, cfg.Site),
		BackupPostsUsecase:         backup_usecase.NewBackupPostsUsecase(fetchPostGateway, cfg.Backup.PostsCSVPath),
		AuthUsecase:                authUsecase,
		Assets:                     cfg.Assets,
		BlogDBRepository:           repository,
	}, nil
}
