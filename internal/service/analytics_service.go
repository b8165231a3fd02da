package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/Bezziboi/j-app/internal/dto"
	"github.com/Bezziboi/j-app/internal/model"
	"github.com/Bezziboi/j-app/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	summaryCacheKey = "analytics:summary"
	summaryCacheTTL = time.Minute
	dateLayout      = "2006-01-02"
	recentLimit     = 5
)

// AnalyticsService recomputes the dashboard summary from the full report
// set on every view. The Redis cache only short-circuits repeat views
// between writes — every write invalidates it, so a view never observes
// stale figures.
type AnalyticsService struct {
	repo repository.ReportRepository
	rdb  *redis.Client // nil disables caching
	now  func() time.Time
}

func NewAnalyticsService(repo repository.ReportRepository, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{repo: repo, rdb: rdb, now: time.Now}
}

func (s *AnalyticsService) Summary(ctx context.Context) (*dto.AnalyticsSummaryResponse, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, summaryCacheKey).Bytes(); err == nil {
			var cached dto.AnalyticsSummaryResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	reports, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	summary := s.compute(reports)

	if s.rdb != nil {
		if raw, err := json.Marshal(summary); err == nil {
			if err := s.rdb.Set(ctx, summaryCacheKey, raw, summaryCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("analytics summary cache write failed")
			}
		}
	}
	return summary, nil
}

// Invalidate drops the cached summary. Called after every report write.
func (s *AnalyticsService) Invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, summaryCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("analytics summary cache invalidation failed")
	}
}

func (s *AnalyticsService) compute(reports []model.DailyReport) *dto.AnalyticsSummaryResponse {
	today := s.now().Format(dateLayout)
	weekStart := s.now().AddDate(0, 0, -6).Format(dateLayout)
	monthStart := time.Date(s.now().Year(), s.now().Month(), 1, 0, 0, 0, 0, s.now().Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	// Trailing 7 calendar days, both bounds inclusive. YYYY-MM-DD strings
	// order the same way the dates do.
	var week, month []model.DailyReport
	for _, r := range reports {
		if r.ReportDate >= weekStart && r.ReportDate <= today {
			week = append(week, r)
		}
		if r.ReportDate >= monthStart.Format(dateLayout) && r.ReportDate <= monthEnd.Format(dateLayout) {
			month = append(month, r)
		}
	}
	sort.Slice(week, func(i, j int) bool { return week[i].ReportDate < week[j].ReportDate })

	recent := week
	if len(recent) > recentLimit {
		recent = recent[len(recent)-recentLimit:]
	}
	recentResp := make([]dto.ReportResponse, len(recent))
	for i := range recent {
		recentResp[i] = *toReportResponse(&recent[i])
	}

	return &dto.AnalyticsSummaryResponse{
		AllTime:       periodStats(reports),
		Last7Days:     periodStats(week),
		CurrentMonth:  periodStats(month),
		RecentReports: recentResp,
	}
}

func periodStats(reports []model.DailyReport) dto.PeriodStats {
	stats := dto.PeriodStats{
		ReportCount:   len(reports),
		TotalProfit:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		AvgProfit:     decimal.Zero,
		AvgExpenses:   decimal.Zero,
		NetBalance:    decimal.Zero,
	}
	for _, r := range reports {
		stats.TotalProfit = stats.TotalProfit.Add(r.PosProfit)
		stats.TotalExpenses = stats.TotalExpenses.Add(r.TotalExpenses)
	}
	stats.NetBalance = stats.TotalProfit.Sub(stats.TotalExpenses)
	if len(reports) > 0 {
		count := decimal.NewFromInt(int64(len(reports)))
		stats.AvgProfit = stats.TotalProfit.Div(count).Round(2)
		stats.AvgExpenses = stats.TotalExpenses.Div(count).Round(2)
	}
	return stats
}
