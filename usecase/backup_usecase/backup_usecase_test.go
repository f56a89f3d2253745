package backup_usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"grandriver/domain"
	"grandriver/mocks"
	"grandriver/utils/logger"
)

func TestBackupPostsUsecase_Execute(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	publishDate := time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC)
	posts := []*domain.Post{
		{
			ID:        2,
			Title:     "Second",
			Slug:      "second",
			Published: false,
			CreatedAt: publishDate,
			UpdatedAt: publishDate,
			HeroStyle: domain.HeroStyleSlate,
			Featured:  true,
		},
		{
			ID:          1,
			Title:       "First, with comma",
			Slug:        "first",
			Excerpt:     "Line one\nline two",
			Published:   true,
			CreatedAt:   publishDate,
			UpdatedAt:   publishDate,
			PublishDate: &publishDate,
			HeroStyle:   domain.HeroStyleLight,
		},
	}

	mockPort := mocks.NewMockFetchPostsPort(ctrl)
	mockPort.EXPECT().FetchAllPosts(ctx).Return(posts, nil)

	csvPath := filepath.Join(t.TempDir(), "backups", "posts_backup.csv")
	usecase := NewBackupPostsUsecase(mockPort, csvPath)
	usecase.Execute(ctx)

	f, err := os.Open(csvPath)
	if err != nil {
		t.Fatalf("backup file not written: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("backup is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	if records[0][0] != "id" || records[0][19] != "featured" {
		t.Errorf("unexpected header: %v", records[0])
	}
	// Rows come out ordered by ID regardless of fetch order.
	if records[1][0] != "1" || records[2][0] != "2" {
		t.Errorf("rows not ordered by id: %v / %v", records[1][0], records[2][0])
	}
	if records[1][1] != "First, with comma" {
		t.Errorf("comma not preserved: %q", records[1][1])
	}
	if records[1][10] != "2024-02-01T12:00:00Z" {
		t.Errorf("publish date = %q", records[1][10])
	}
	if records[2][10] != "" {
		t.Errorf("nil publish date should be empty, got %q", records[2][10])
	}
	if records[2][7] != "0" || records[2][19] != "1" {
		t.Errorf("bool columns wrong: published=%q featured=%q", records[2][7], records[2][19])
	}
}

func TestBackupPostsUsecase_FetchFailureDoesNotWrite(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	mockPort := mocks.NewMockFetchPostsPort(ctrl)
	mockPort.EXPECT().FetchAllPosts(ctx).Return(nil, errors.New("connection refused"))

	csvPath := filepath.Join(t.TempDir(), "posts_backup.csv")
	usecase := NewBackupPostsUsecase(mockPort, csvPath)
	usecase.Execute(ctx)

	if _, err := os.Stat(csvPath); !os.IsNotExist(err) {
		t.Error("backup file should not exist after a fetch failure")
	}
}
