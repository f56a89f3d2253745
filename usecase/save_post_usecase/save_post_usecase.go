package save_post_usecase

import (
	"context"
	"time"

	"grandriver/domain"
	"grandriver/port/post_port"
	apperrors "grandriver/utils/errors"
	html_parser "grandriver/utils/html_parser"
)

// SaveAction is the submit button pressed on the editor form.
type SaveAction string

const (
	ActionDraft   SaveAction = "draft"
	ActionPublish SaveAction = "publish"
	ActionPreview SaveAction = "preview"
)

// ParseSaveAction maps a raw form value onto a known action, defaulting
// to draft.
func ParseSaveAction(value string) SaveAction {
	switch SaveAction(value) {
	case ActionPublish:
		return ActionPublish
	case ActionPreview:
		return ActionPreview
	default:
		return ActionDraft
	}
}

// Publishes reports whether the action leaves the post published.
// Preview saves the work in progress as a draft.
func (a SaveAction) Publishes() bool {
	return a == ActionPublish
}

// SavePostInput carries the editor form fields for both create and
// edit. ID is zero for a new post.
type SavePostInput struct {
	ID               int64
	Title            string
	SlugInput        string
	Excerpt          string
	Content          string
	CoverURL         string
	Tags             string
	PublishDateInput string
	Action           SaveAction
	MetaTitle        string
	MetaDescription  string
	HeroKicker       string
	HeroStyle        string
	HighlightQuote   string
	SummaryPoints    string
	CTALabel         string
	CTAURL           string
	Featured         bool
}

// publishDateLayouts are the accepted editor formats, tried in order.
var publishDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

type SavePostUsecase struct {
	fetchPostsPort  post_port.FetchPostsPort
	mutatePostsPort post_port.MutatePostsPort
}

func NewSavePostUsecase(fetchPostsPort post_port.FetchPostsPort, mutatePostsPort post_port.MutatePostsPort) *SavePostUsecase {
	return &SavePostUsecase{
		fetchPostsPort:  fetchPostsPort,
		mutatePostsPort: mutatePostsPort,
	}
}

// Execute validates and persists the editor form. On success it returns
// the saved post with its assigned ID.
func (u *SavePostUsecase) Execute(ctx context.Context, input SavePostInput) (*domain.Post, error) {
	if input.Title == "" || input.Excerpt == "" || input.Content == "" {
		return nil, apperrors.ValidationError(
			"Title, excerpt, and content are required.",
			map[string]interface{}{"post_id": input.ID},
		)
	}

	slugSource := input.SlugInput
	if slugSource == "" {
		slugSource = input.Title
	}
	slug := domain.Slugify(slugSource)
	if slug == "" {
		return nil, apperrors.ValidationError(
			"Unable to generate a slug. Please adjust the title.",
			map[string]interface{}{"slug_input": input.SlugInput},
		)
	}

	taken, err := u.mutatePostsPort.SlugExists(ctx, slug, input.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrSlugTaken
	}

	var existing *domain.Post
	if input.ID != 0 {
		existing, err = u.fetchPostsPort.FetchPostByID(ctx, input.ID)
		if err != nil {
			return nil, err
		}
	}

	publishDate, err := resolvePublishDate(input.PublishDateInput, existing)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &domain.Post{
		ID:              input.ID,
		Title:           input.Title,
		Slug:            slug,
		Excerpt:         input.Excerpt,
		Content:         html_parser.SanitizeContent(input.Content),
		CoverURL:        input.CoverURL,
		Tags:            domain.NormalizeTags(input.Tags),
		Published:       input.Action.Publishes(),
		UpdatedAt:       now,
		PublishDate:     publishDate,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		HeroKicker:      input.HeroKicker,
		HeroStyle:       domain.NormalizeHeroStyle(input.HeroStyle),
		HighlightQuote:  input.HighlightQuote,
		SummaryPoints:   input.SummaryPoints,
		CTALabel:        input.CTALabel,
		CTAURL:          input.CTAURL,
		Featured:        input.Featured,
	}

	if existing != nil {
		post.CreatedAt = existing.CreatedAt
		if err := u.mutatePostsPort.UpdatePost(ctx, post); err != nil {
			return nil, err
		}
		return post, nil
	}

	post.CreatedAt = now
	id, err := u.mutatePostsPort.InsertPost(ctx, post)
	if err != nil {
		return nil, err
	}
	post.ID = id
	return post, nil
}

// resolvePublishDate keeps the existing publish date when the field was
// left blank on an edit, and stamps the current time for a brand new
// post.
func resolvePublishDate(raw string, existing *domain.Post) (*time.Time, error) {
	if raw != "" {
		for _, layout := range publishDateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				t = t.UTC()
				return &t, nil
			}
		}
		return nil, apperrors.ValidationError(
			"Publish date is not a recognized date format.",
			map[string]interface{}{"publish_date": raw},
		)
	}
	if existing != nil && existing.PublishDate != nil {
		d := *existing.PublishDate
		return &d, nil
	}
	now := time.Now().UTC()
	return &now, nil
}
