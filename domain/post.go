package domain

import (
	"regexp"
	"strings"
	"time"
)

// HeroStyle names one of the supported hero treatments on the post page.
type HeroStyle string

const (
	HeroStyleLight    HeroStyle = "light"
	HeroStyleSlate    HeroStyle = "slate"
	HeroStyleMidnight HeroStyle = "midnight"
)

// Post represents a research post. Optional text columns map to empty
// strings; PublishDate is nil while unscheduled.
type Post struct {
	ID              int64      `json:"id" db:"id"`
	Title           string     `json:"title" db:"title"`
	Slug            string     `json:"slug" db:"slug"`
	Excerpt         string     `json:"excerpt" db:"excerpt"`
	Content         string     `json:"content" db:"content"`
	CoverURL        string     `json:"cover_url" db:"cover_url"`
	Tags            string     `json:"tags" db:"tags"`
	Published       bool       `json:"published" db:"published"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
	PublishDate     *time.Time `json:"publish_date" db:"publish_date"`
	MetaTitle       string     `json:"meta_title" db:"meta_title"`
	MetaDescription string     `json:"meta_description" db:"meta_description"`
	HeroKicker      string     `json:"hero_kicker" db:"hero_kicker"`
	HeroStyle       HeroStyle  `json:"hero_style" db:"hero_style"`
	HighlightQuote  string     `json:"highlight_quote" db:"highlight_quote"`
	SummaryPoints   string     `json:"summary_points" db:"summary_points"`
	CTALabel        string     `json:"cta_label" db:"cta_label"`
	CTAURL          string     `json:"cta_url" db:"cta_url"`
	Featured        bool       `json:"featured" db:"featured"`
}

// DisplayDate is the date shown on public surfaces and used for feed
// ordering: the publish date when set, the creation time otherwise.
func (p *Post) DisplayDate() time.Time {
	if p.PublishDate != nil {
		return *p.PublishDate
	}
	return p.CreatedAt
}

// TagList splits the stored comma-separated tag column into trimmed,
// non-empty tag names.
func (p *Post) TagList() []string {
	return SplitTags(p.Tags)
}

// SummaryPointList splits the stored summary points into trimmed,
// non-empty lines.
func (p *Post) SummaryPointList() []string {
	points := make([]string, 0)
	for _, line := range strings.Split(p.SummaryPoints, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			points = append(points, line)
		}
	}
	return points
}

// SEOTitle returns the meta title override when present, the post title
// otherwise.
func (p *Post) SEOTitle() string {
	if p.MetaTitle != "" {
		return p.MetaTitle
	}
	return p.Title
}

// SEODescription returns the first non-empty of the meta description
// override, the excerpt, and the given fallback.
func (p *Post) SEODescription(fallback string) string {
	if p.MetaDescription != "" {
		return p.MetaDescription
	}
	if p.Excerpt != "" {
		return p.Excerpt
	}
	return fallback
}

// SplitTags splits a comma-separated tag string into trimmed, non-empty
// tag names.
func SplitTags(tags string) []string {
	result := make([]string, 0)
	for _, tag := range strings.Split(tags, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			result = append(result, tag)
		}
	}
	return result
}

// NormalizeTags rewrites a raw tag field into the canonical "a, b, c"
// storage form.
func NormalizeTags(tags string) string {
	return strings.Join(SplitTags(tags), ", ")
}

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSeparators   = regexp.MustCompile(`[\s_-]+`)
)

// Slugify derives a URL slug from free text: lowercase, drop anything
// outside [a-z0-9 space -], collapse runs of separators into single
// hyphens, and trim leading/trailing hyphens. The result may be empty
// when the input carries no usable characters.
func Slugify(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = slugInvalidChars.ReplaceAllString(value, "")
	value = slugSeparators.ReplaceAllString(value, "-")
	return strings.Trim(value, "-")
}

// NormalizeHeroStyle maps free-form input onto a supported hero style,
// degrading to light rather than erroring.
func NormalizeHeroStyle(value string) HeroStyle {
	switch HeroStyle(strings.ToLower(strings.TrimSpace(value))) {
	case HeroStyleSlate:
		return HeroStyleSlate
	case HeroStyleMidnight:
		return HeroStyleMidnight
	default:
		return HeroStyleLight
	}
}
