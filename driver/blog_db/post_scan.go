package blog_db

import (
	"grandriver/domain"

	"github.com/jackc/pgx/v5"
)

// postColumns is the canonical SELECT list for posts. Nullable text
// columns collapse to empty strings at the driver boundary so the rest
// of the application never deals with sql nulls.
const postColumns = `
	id, title, slug, excerpt, content,
	COALESCE(cover_url, ''), COALESCE(tags, ''), published,
	created_at, updated_at, publish_date,
	COALESCE(meta_title, ''), COALESCE(meta_description, ''),
	COALESCE(hero_kicker, ''), COALESCE(hero_style, ''),
	COALESCE(highlight_quote, ''), COALESCE(summary_points, ''),
	COALESCE(cta_label, ''), COALESCE(cta_url, ''), featured`

func scanPost(row pgx.Row) (*domain.Post, error) {
	var post domain.Post
	var heroStyle string

	err := row.Scan(
		&post.ID, &post.Title, &post.Slug, &post.Excerpt, &post.Content,
		&post.CoverURL, &post.Tags, &post.Published,
		&post.CreatedAt, &post.UpdatedAt, &post.PublishDate,
		&post.MetaTitle, &post.MetaDescription,
		&post.HeroKicker, &heroStyle,
		&post.HighlightQuote, &post.SummaryPoints,
		&post.CTALabel, &post.CTAURL, &post.Featured,
	)
	if err != nil {
		return nil, err
	}

	// Unknown stored styles degrade to the default instead of failing.
	post.HeroStyle = domain.NormalizeHeroStyle(heroStyle)
	return &post, nil
}

func scanPosts(rows pgx.Rows) ([]*domain.Post, error) {
	defer rows.Close()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}
