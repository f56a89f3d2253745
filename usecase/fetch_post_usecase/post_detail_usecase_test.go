package fetch_post_usecase

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"grandriver/domain"
	"grandriver/mocks"
	apperrors "grandriver/utils/errors"
	"grandriver/utils/logger"
)

func publishedPost() *domain.Post {
	publishDate := time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Post{
		ID:          1,
		Title:       "Margin Expansion at Scale",
		Slug:        "margin-expansion-at-scale",
		Excerpt:     "Where operating leverage is still underpriced.",
		Content:     "<h2>Setup</h2><p>One hundred words of analysis.</p><h2>Risks</h2><p>More words.</p>",
		Published:   true,
		CreatedAt:   publishDate.Add(-24 * time.Hour),
		UpdatedAt:   publishDate,
		PublishDate: &publishDate,
		HeroStyle:   domain.HeroStyleLight,
	}
}

func TestFetchPostDetailUsecase_Execute(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	tests := []struct {
		name          string
		includeDrafts bool
		mockSetup     func(*mocks.MockFetchPostsPort)
		wantErr       error
		check         func(*testing.T, *PostDetail)
	}{
		{
			name: "published_post_visible_to_public",
			mockSetup: func(mockPort *mocks.MockFetchPostsPort) {
				mockPort.EXPECT().FetchPostBySlug(ctx, "margin-expansion-at-scale").Return(publishedPost(), nil)
				mockPort.EXPECT().FetchRelatedPosts(ctx, "margin-expansion-at-scale", 3).Return([]*domain.Post{}, nil)
			},
			check: func(t *testing.T, detail *PostDetail) {
				if detail.Post.Slug != "margin-expansion-at-scale" {
					t.Errorf("unexpected slug %q", detail.Post.Slug)
				}
				if detail.ReadTime < 1 {
					t.Errorf("read time should be at least 1, got %d", detail.ReadTime)
				}
				if len(detail.TOC) != 2 {
					t.Errorf("expected 2 headings, got %d", len(detail.TOC))
				}
			},
		},
		{
			name: "draft_hidden_from_public",
			mockSetup: func(mockPort *mocks.MockFetchPostsPort) {
				draft := publishedPost()
				draft.Published = false
				mockPort.EXPECT().FetchPostBySlug(ctx, "margin-expansion-at-scale").Return(draft, nil)
			},
			wantErr: apperrors.ErrPostNotFound,
		},
		{
			name:          "draft_visible_to_admin",
			includeDrafts: true,
			mockSetup: func(mockPort *mocks.MockFetchPostsPort) {
				draft := publishedPost()
				draft.Published = false
				mockPort.EXPECT().FetchPostBySlug(ctx, "margin-expansion-at-scale").Return(draft, nil)
				mockPort.EXPECT().FetchRelatedPosts(ctx, "margin-expansion-at-scale", 3).Return([]*domain.Post{}, nil)
			},
			check: func(t *testing.T, detail *PostDetail) {
				if detail.Post.Published {
					t.Error("expected draft post")
				}
			},
		},
		{
			name: "missing_post",
			mockSetup: func(mockPort *mocks.MockFetchPostsPort) {
				mockPort.EXPECT().FetchPostBySlug(ctx, "margin-expansion-at-scale").Return(nil, apperrors.ErrPostNotFound)
			},
			wantErr: apperrors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPort := mocks.NewMockFetchPostsPort(ctrl)
			tt.mockSetup(mockPort)

			usecase := NewFetchPostDetailUsecase(mockPort)
			detail, err := usecase.Execute(ctx, "margin-expansion-at-scale", tt.includeDrafts, 3)

			if tt.wantErr != nil {
				if !apperrors.IsPostNotFound(err) {
					t.Fatalf("expected post-not-found, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, detail)
		})
	}
}

func TestFetchPostDetailUsecase_ExecuteByID(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	draft := publishedPost()
	draft.Published = false

	mockPort := mocks.NewMockFetchPostsPort(ctrl)
	mockPort.EXPECT().FetchPostByID(ctx, int64(1)).Return(draft, nil)
	mockPort.EXPECT().FetchRelatedPosts(ctx, draft.Slug, 3).Return([]*domain.Post{publishedPost()}, nil)

	usecase := NewFetchPostDetailUsecase(mockPort)
	detail, err := usecase.ExecuteByID(ctx, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Post.Published {
		t.Error("preview should surface drafts")
	}
	if len(detail.MorePosts) != 1 {
		t.Errorf("expected 1 related post, got %d", len(detail.MorePosts))
	}
}

func TestFetchPostDetailUsecase_AnchorsAssigned(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	post := publishedPost()
	mockPort := mocks.NewMockFetchPostsPort(ctrl)
	mockPort.EXPECT().FetchPostBySlug(ctx, post.Slug).Return(post, nil)
	mockPort.EXPECT().FetchRelatedPosts(ctx, post.Slug, 3).Return(nil, nil)

	usecase := NewFetchPostDetailUsecase(mockPort)
	detail, err := usecase.Execute(ctx, post.Slug, false, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, heading := range detail.TOC {
		if heading.ID == "" {
			t.Errorf("heading %q has no anchor", heading.Text)
		}
	}
}
