package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple title", "AAPL Services Momentum", "aapl-services-momentum"},
		{"punctuation stripped", "JPM: NII Trajectory & Credit!", "jpm-nii-trajectory-credit"},
		{"underscores collapse", "msft__copilot  monetization", "msft-copilot-monetization"},
		{"leading and trailing separators", "  --Energy Outlook-- ", "energy-outlook"},
		{"already a slug", "cost-traffic-resilience", "cost-traffic-resilience"},
		{"only invalid characters", "!!!&&&", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestNormalizeHeroStyle(t *testing.T) {
	tests := []struct {
		input    string
		expected HeroStyle
	}{
		{"light", HeroStyleLight},
		{"slate", HeroStyleSlate},
		{"midnight", HeroStyleMidnight},
		{"MIDNIGHT", HeroStyleMidnight},
		{"  slate ", HeroStyleSlate},
		{"neon", HeroStyleLight},
		{"", HeroStyleLight},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeHeroStyle(tt.input), "input %q", tt.input)
	}
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"Large-Cap", "Tech"}, SplitTags("Large-Cap, Tech"))
	assert.Equal(t, []string{"Energy"}, SplitTags(" ,Energy, ,"))
	assert.Empty(t, SplitTags(""))
	assert.Empty(t, SplitTags(" , ,"))
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, "Large-Cap, Tech", NormalizeTags(" Large-Cap ,Tech,,"))
	assert.Equal(t, "", NormalizeTags("  "))
}

func TestPost_DisplayDate(t *testing.T) {
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	published := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)

	post := Post{CreatedAt: created}
	assert.Equal(t, created, post.DisplayDate())

	post.PublishDate = &published
	assert.Equal(t, published, post.DisplayDate())
}

func TestPost_SummaryPointList(t *testing.T) {
	post := Post{SummaryPoints: "Services ARR now >$100B\n\n  Hardware elasticity contained  \n"}
	assert.Equal(t, []string{"Services ARR now >$100B", "Hardware elasticity contained"}, post.SummaryPointList())

	post.SummaryPoints = ""
	assert.Empty(t, post.SummaryPointList())
}

func TestPost_SEOFields(t *testing.T) {
	post := Post{Title: "AAPL Deep Dive", Excerpt: "Services thesis."}

	assert.Equal(t, "AAPL Deep Dive", post.SEOTitle())
	assert.Equal(t, "Services thesis.", post.SEODescription("fallback"))

	post.MetaTitle = "AAPL: The Services Thesis"
	post.MetaDescription = "A closer look at services."
	assert.Equal(t, "AAPL: The Services Thesis", post.SEOTitle())
	assert.Equal(t, "A closer look at services.", post.SEODescription("fallback"))

	empty := Post{}
	assert.Equal(t, "fallback", empty.SEODescription("fallback"))
}
