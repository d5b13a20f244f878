// Package reconcile orchestrates the match + price-assessment flow across
// the line items of one invoice and rolls the outcomes up into a report.
package reconcile

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/invoice-reconciler/constants"
	"github.com/joseph-ayodele/invoice-reconciler/internal/common"
	"github.com/joseph-ayodele/invoice-reconciler/internal/entity"
	"github.com/joseph-ayodele/invoice-reconciler/internal/match"
	"github.com/joseph-ayodele/invoice-reconciler/internal/price"
)

type Service struct {
	Logger  *slog.Logger
	Matcher *match.Matcher
	Prices  *price.Validator
}

func NewService(logger *slog.Logger, matcher *match.Matcher, prices *price.Validator) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if matcher == nil {
		matcher = match.New(match.Config{}, match.Vocabulary{}, logger)
	}
	if prices == nil {
		prices = price.NewValidator(price.Bands{})
	}
	return &Service{Logger: logger, Matcher: matcher, Prices: prices}
}

// Reconcile matches every line item against the reference materials and
// attaches a price assessment where a match carries a usable rate.
// A nil item list or nil material set is a precondition violation
// (InvalidArgument); an empty material set is not — every line simply
// reports NO_MATCH. The materials slice is only read.
func (s *Service) Reconcile(ctx context.Context, items []entity.LineItem, materials []entity.Material) (*entity.Report, error) {
	if items == nil {
		return nil, common.InvalidArgumentError("line items are required")
	}
	if materials == nil {
		return nil, common.InvalidArgumentError("reference materials are required")
	}

	report := &entity.Report{
		ID:          uuid.New(),
		Items:       make([]entity.ReconciledItem, 0, len(items)),
		GeneratedAt: time.Now().UTC(),
	}

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res := s.Matcher.Match(item.RawName, materials)
		var assessment *entity.PriceAssessment
		if res.Matched {
			report.MatchedCount++
			assessment = s.Prices.Assess(item.Rate, res.Candidate.Price)
		}
		report.Items = append(report.Items, entity.ReconciledItem{
			Item:  item,
			Match: res,
			Price: assessment,
		})
	}

	if len(items) > 0 {
		report.MatchPct = 100 * float64(report.MatchedCount) / float64(len(items))
	}
	report.Status = constants.StatusForMatchPct(report.MatchPct)

	s.Logger.Info("reconcile.ok",
		"report_id", report.ID,
		"items", len(items),
		"matched", report.MatchedCount,
		"match_pct", report.MatchPct,
		"status", report.Status,
	)
	return report, nil
}
