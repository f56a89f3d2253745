package fetch_post_usecase

import (
	"context"

	"grandriver/domain"
	"grandriver/port/post_port"
	apperrors "grandriver/utils/errors"
	html_parser "grandriver/utils/html_parser"
	"grandriver/utils/logger"
)

// PostDetail is everything the post page renders: the post itself, its
// content with anchor IDs assigned, the derived reading metadata, and
// the related-posts rail.
type PostDetail struct {
	Post          *domain.Post
	ContentHTML   string
	ReadTime      int
	TOC           []html_parser.Heading
	SummaryPoints []string
	MorePosts     []*domain.Post
}

type FetchPostDetailUsecase struct {
	fetchPostsPort post_port.FetchPostsPort
}

func NewFetchPostDetailUsecase(fetchPostsPort post_port.FetchPostsPort) *FetchPostDetailUsecase {
	return &FetchPostDetailUsecase{fetchPostsPort: fetchPostsPort}
}

// Execute loads a post by slug. Drafts behave as missing unless
// includeDrafts is set (admin session present).
func (u *FetchPostDetailUsecase) Execute(ctx context.Context, slug string, includeDrafts bool, relatedLimit int) (*PostDetail, error) {
	post, err := u.fetchPostsPort.FetchPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.Published && !includeDrafts {
		return nil, apperrors.ErrPostNotFound
	}

	return u.buildDetail(ctx, post, relatedLimit)
}

// ExecuteByID loads a post by primary key for the admin preview, which
// always sees drafts.
func (u *FetchPostDetailUsecase) ExecuteByID(ctx context.Context, id int64, relatedLimit int) (*PostDetail, error) {
	post, err := u.fetchPostsPort.FetchPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u.buildDetail(ctx, post, relatedLimit)
}

func (u *FetchPostDetailUsecase) buildDetail(ctx context.Context, post *domain.Post, relatedLimit int) (*PostDetail, error) {
	contentHTML, toc, err := html_parser.TableOfContents(post.Content)
	if err != nil {
		// A post that fails heading extraction still renders, just
		// without in-page navigation.
		logger.Logger.WarnContext(ctx, "table of contents extraction failed", "error", err, "slug", post.Slug)
		contentHTML = post.Content
		toc = nil
	}

	morePosts, err := u.fetchPostsPort.FetchRelatedPosts(ctx, post.Slug, relatedLimit)
	if err != nil {
		return nil, err
	}

	return &PostDetail{
		Post:          post,
		ContentHTML:   contentHTML,
		ReadTime:      html_parser.EstimateReadTime(post.Content),
		TOC:           toc,
		SummaryPoints: post.SummaryPointList(),
		MorePosts:     morePosts,
	}, nil
}
