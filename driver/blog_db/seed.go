package blog_db

import (
	"context"
	"errors"
	"time"

	"grandriver/domain"
	"grandriver/utils/logger"
)

// SeedPosts installs the starter research posts when the posts table is
// empty. Re-running against a populated table is a no-op.
func (r *BlogDBRepository) SeedPosts(ctx context.Context) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		logger.Logger.ErrorContext(ctx, "error counting posts before seed", "error", err)
		return errors.New("error counting posts before seed")
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	for i := range seedPosts {
		post := seedPosts[i]
		post.CreatedAt = now
		post.UpdatedAt = now
		if _, err := r.InsertPost(ctx, &post); err != nil {
			return err
		}
	}

	logger.Logger.Info("Seeded starter posts", "count", len(seedPosts))
	return nil
}

func seedDate(value string) *time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	return &t
}

var seedPosts = []domain.Post{
	{
		Title:          "AAPL: Services Momentum and Valuation Floors",
		Slug:           "aapl-services-momentum",
		Excerpt:        "Assessing how Apple's services mix and installed base durability create valuation support despite cyclical hardware headwinds.",
		Content:        "<p>Apple's services momentum continues to offset hardware volatility while management leans on ecosystem stickiness...</p>",
		CoverURL:       "https://images.unsplash.com/photo-1520607162513-77705c0f0d4a?auto=format&fit=crop&w=1200&q=80",
		Tags:           "Large-Cap, Tech",
		Published:      true,
		PublishDate:    seedDate("2024-01-15T12:00:00Z"),
		HeroKicker:     "Deep Dive",
		HeroStyle:      domain.HeroStyleMidnight,
		HighlightQuote: "Services mix has widened Apple's defensibility, underpinning floor valuation multiples.",
		SummaryPoints:  "Services ARR now >$100B\nHardware elasticity contained by trade-in programs",
		CTALabel:       "Read full thesis",
		CTAURL:         "/post/aapl-services-momentum",
		Featured:       true,
	},
	{
		Title:         "JPM: NII Trajectory and Credit Normalization",
		Slug:          "jpm-nii-trajectory",
		Excerpt:       "Parsing JPMorgan's net interest income outlook alongside reserve releases as consumer credit normalizes.",
		Content:       "<p>JPMorgan's guidance implies manageable NII compression as deposit betas rise and card delinquencies revert toward historical levels...</p>",
		CoverURL:      "https://images.unsplash.com/photo-1454165205744-3b78555e5572?auto=format&fit=crop&w=1200&q=80",
		Tags:          "Large-Cap, Financials",
		Published:     true,
		PublishDate:   seedDate("2024-01-22T12:00:00Z"),
		HeroKicker:    "Banking",
		HeroStyle:     domain.HeroStyleSlate,
		SummaryPoints: "Deposit mix shifting to interest-bearing\nCredit normalization manageable vs reserves",
	},
	{
		Title:         "MSFT: Copilot Monetization Pathways",
		Slug:          "msft-copilot-monetization",
		Excerpt:       "Examining Microsoft's early traction with Copilot SKUs and the multi-year revenue opportunity.",
		Content:       "<p>Microsoft's AI positioning remains differentiated as enterprise pilots convert to paid commitments and attach rates expand across the Microsoft 365 base...</p>",
		CoverURL:      "https://images.unsplash.com/photo-1517430816045-df4b7de11d1d?auto=format&fit=crop&w=1200&q=80",
		Tags:          "Large-Cap, Tech",
		Published:     true,
		PublishDate:   seedDate("2024-02-01T12:00:00Z"),
		HeroKicker:    "Software",
		HeroStyle:     domain.HeroStyleLight,
		SummaryPoints: "Copilot ARPU uplift still in early innings\nAzure AI services accelerating cloud growth",
	},
	{
		Title:       "XOM: Capex Discipline vs. Price Deck",
		Slug:        "xom-capex-discipline",
		Excerpt:     "Evaluating Exxon Mobil's capital allocation against a volatile crude price deck and shareholder returns.",
		Content:     "<p>Exxon Mobil's capital discipline anchors free cash flow resilience with upstream mix shifting toward low breakeven barrels...</p>",
		CoverURL:    "https://images.unsplash.com/photo-1509395176047-4a66953fd231?auto=format&fit=crop&w=1200&q=80",
		Tags:        "Energy, Large-Cap",
		Published:   true,
		PublishDate: seedDate("2024-02-08T12:00:00Z"),
		HeroKicker:  "Energy",
		HeroStyle:   domain.HeroStyleMidnight,
	},
	{
		Title:       "COST: Traffic Resilience and Mix",
		Slug:        "cost-traffic-resilience",
		Excerpt:     "Understanding Costco's traffic resilience as mix shifts toward services and higher-margin categories.",
		Content:     "<p>Costco continues to drive strong traffic growth as membership economics fund investments in price leadership and ancillary services expansion...</p>",
		CoverURL:    "https://images.unsplash.com/photo-1515169067865-5387ec356754?auto=format&fit=crop&w=1200&q=80",
		Tags:        "Consumer, Large-Cap",
		Published:   true,
		PublishDate: seedDate("2024-02-15T12:00:00Z"),
		HeroKicker:  "Consumer",
		HeroStyle:   domain.HeroStyleSlate,
	},
}
