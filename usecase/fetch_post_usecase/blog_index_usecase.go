package fetch_post_usecase

import (
	"context"
	"sort"

	"grandriver/domain"
	"grandriver/port/post_port"
)

// BlogIndexPage is one page of the blog index together with its
// pagination state and the distinct tag set across all published posts.
type BlogIndexPage struct {
	Posts      []*domain.Post
	Page       int
	TotalPages int
	AllTags    []string
}

type FetchBlogIndexUsecase struct {
	fetchPostsPort post_port.FetchPostsPort
}

func NewFetchBlogIndexUsecase(fetchPostsPort post_port.FetchPostsPort) *FetchBlogIndexUsecase {
	return &FetchBlogIndexUsecase{fetchPostsPort: fetchPostsPort}
}

// Execute loads one page of published posts. Pages below 1 are clamped
// to the first page; pages past the end come back empty but keep the
// correct TotalPages so the pagination UI stays navigable.
func (u *FetchBlogIndexUsecase) Execute(ctx context.Context, page, pageSize int) (*BlogIndexPage, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * pageSize
	posts, err := u.fetchPostsPort.FetchPublishedPosts(ctx, pageSize, offset)
	if err != nil {
		return nil, err
	}

	total, err := u.fetchPostsPort.CountPublishedPosts(ctx)
	if err != nil {
		return nil, err
	}
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	tags, err := u.collectTags(ctx)
	if err != nil {
		return nil, err
	}

	return &BlogIndexPage{
		Posts:      posts,
		Page:       page,
		TotalPages: totalPages,
		AllTags:    tags,
	}, nil
}

func (u *FetchBlogIndexUsecase) collectTags(ctx context.Context) ([]string, error) {
	columns, err := u.fetchPostsPort.FetchPublishedTagColumns(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, column := range columns {
		for _, tag := range domain.SplitTags(column) {
			seen[tag] = true
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags, nil
}
