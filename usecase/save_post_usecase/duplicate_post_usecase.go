package save_post_usecase

import (
	"context"
	"fmt"
	"time"

	"grandriver/domain"
	"grandriver/port/post_port"
)

type DuplicatePostUsecase struct {
	fetchPostsPort  post_port.FetchPostsPort
	mutatePostsPort post_port.MutatePostsPort
}

func NewDuplicatePostUsecase(fetchPostsPort post_port.FetchPostsPort, mutatePostsPort post_port.MutatePostsPort) *DuplicatePostUsecase {
	return &DuplicatePostUsecase{
		fetchPostsPort:  fetchPostsPort,
		mutatePostsPort: mutatePostsPort,
	}
}

// Execute copies a post as an unfeatured draft titled "<title> (Copy)"
// under the first free "<slug>-copy" slug, appending -2, -3 and so on
// until one is available. It returns the new draft.
func (u *DuplicatePostUsecase) Execute(ctx context.Context, id int64) (*domain.Post, error) {
	source, err := u.fetchPostsPort.FetchPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	baseSlug := source.Slug + "-copy"
	candidate := baseSlug
	for suffix := 2; ; suffix++ {
		taken, err := u.mutatePostsPort.SlugExists(ctx, candidate, 0)
		if err != nil {
			return nil, err
		}
		if !taken {
			break
		}
		candidate = fmt.Sprintf("%s-%d", baseSlug, suffix)
	}

	now := time.Now().UTC()
	publishDate := source.PublishDate
	if publishDate == nil {
		publishDate = &now
	}

	clone := &domain.Post{
		Title:           source.Title + " (Copy)",
		Slug:            candidate,
		Excerpt:         source.Excerpt,
		Content:         source.Content,
		CoverURL:        source.CoverURL,
		Tags:            source.Tags,
		Published:       false,
		CreatedAt:       now,
		UpdatedAt:       now,
		PublishDate:     publishDate,
		MetaTitle:       source.MetaTitle,
		MetaDescription: source.MetaDescription,
		HeroKicker:      source.HeroKicker,
		HeroStyle:       source.HeroStyle,
		HighlightQuote:  source.HighlightQuote,
		SummaryPoints:   source.SummaryPoints,
		CTALabel:        source.CTALabel,
		CTAURL:          source.CTAURL,
		Featured:        false,
	}

	newID, err := u.mutatePostsPort.InsertPost(ctx, clone)
	if err != nil {
		return nil, err
	}
	clone.ID = newID
	return clone, nil
}
