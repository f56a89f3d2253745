// Package backup_usecase writes the full post table to a CSV file after
// mutating operations, as a cheap point-in-time export.
package backup_usecase

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"grandriver/domain"
	"grandriver/port/post_port"
	"grandriver/utils/logger"
)

var backupHeader = []string{
	"id", "title", "slug", "excerpt", "content", "cover_url", "tags",
	"published", "created_at", "updated_at", "publish_date",
	"meta_title", "meta_description", "hero_kicker", "hero_style",
	"highlight_quote", "summary_points", "cta_label", "cta_url",
	"featured",
}

type BackupPostsUsecase struct {
	fetchPostsPort post_port.FetchPostsPort
	csvPath        string
}

func NewBackupPostsUsecase(fetchPostsPort post_port.FetchPostsPort, csvPath string) *BackupPostsUsecase {
	return &BackupPostsUsecase{fetchPostsPort: fetchPostsPort, csvPath: csvPath}
}

// Execute snapshots every post, drafts included, to the configured CSV
// path ordered by ID. Failures are logged rather than propagated so a
// broken backup path never blocks a save.
func (u *BackupPostsUsecase) Execute(ctx context.Context) {
	if err := u.write(ctx); err != nil {
		logger.Logger.ErrorContext(ctx, "post backup failed", "error", err, "path", u.csvPath)
	}
}

func (u *BackupPostsUsecase) write(ctx context.Context) error {
	posts, err := u.fetchPostsPort.FetchAllPosts(ctx)
	if err != nil {
		return err
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })

	if dir := filepath.Dir(u.csvPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(u.csvPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(backupHeader); err != nil {
		return err
	}
	for _, post := range posts {
		if err := w.Write(backupRecord(post)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Sync()
}

func backupRecord(p *domain.Post) []string {
	publishDate := ""
	if p.PublishDate != nil {
		publishDate = p.PublishDate.UTC().Format(time.RFC3339)
	}
	return []string{
		strconv.FormatInt(p.ID, 10),
		p.Title,
		p.Slug,
		p.Excerpt,
		p.Content,
		p.CoverURL,
		p.Tags,
		boolColumn(p.Published),
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
		publishDate,
		p.MetaTitle,
		p.MetaDescription,
		p.HeroKicker,
		string(p.HeroStyle),
		p.HighlightQuote,
		p.SummaryPoints,
		p.CTALabel,
		p.CTAURL,
		boolColumn(p.Featured),
	}
}

func boolColumn(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
