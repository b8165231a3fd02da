package service

import (
	"context"
	"testing"
	"time"

	"github.com/Bezziboi/j-app/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
}

func seedReport(repo *memReportRepo, date, profit, expenses string) {
	repo.reports[date] = &model.DailyReport{
		ReportDate:    date,
		PosProfit:     dec(profit),
		TotalExpenses: dec(expenses),
	}
}

func newAnalytics(repo *memReportRepo) *AnalyticsService {
	svc := NewAnalyticsService(repo, nil)
	svc.now = fixedNow
	return svc
}

func TestSummary_Empty(t *testing.T) {
	svc := newAnalytics(newMemReportRepo())

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.AllTime.ReportCount)
	assertDec(t, "0", summary.AllTime.TotalProfit)
	assertDec(t, "0", summary.AllTime.AvgProfit)
	assertDec(t, "0", summary.AllTime.NetBalance)
	assert.Empty(t, summary.RecentReports)
}

func TestSummary_WindowsAndAverages(t *testing.T) {
	repo := newMemReportRepo()
	seedReport(repo, "2024-02-28", "100", "50")  // previous month
	seedReport(repo, "2024-03-01", "200", "100") // month only
	seedReport(repo, "2024-03-08", "10", "5")    // day before the 7-day window
	seedReport(repo, "2024-03-09", "300", "150") // window start (inclusive)
	seedReport(repo, "2024-03-12", "400", "200")
	seedReport(repo, "2024-03-15", "500", "250") // today (inclusive)
	seedReport(repo, "2024-03-16", "999", "999") // future date — month, not week
	svc := newAnalytics(repo)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, summary.AllTime.ReportCount)

	week := summary.Last7Days
	assert.Equal(t, 3, week.ReportCount)
	assertDec(t, "1200", week.TotalProfit)
	assertDec(t, "600", week.TotalExpenses)
	assertDec(t, "400", week.AvgProfit)
	assertDec(t, "200", week.AvgExpenses)
	assertDec(t, "600", week.NetBalance)

	assert.Equal(t, 6, summary.CurrentMonth.ReportCount)

	// 7-day subset ascending by date
	require.Len(t, summary.RecentReports, 3)
	assert.Equal(t, "2024-03-09", summary.RecentReports[0].Date)
	assert.Equal(t, "2024-03-12", summary.RecentReports[1].Date)
	assert.Equal(t, "2024-03-15", summary.RecentReports[2].Date)
}

func TestSummary_RecentCappedAtFive(t *testing.T) {
	repo := newMemReportRepo()
	for day := 9; day <= 15; day++ {
		seedReport(repo, time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC).Format(dateLayout), "100", "50")
	}
	svc := newAnalytics(repo)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, summary.Last7Days.ReportCount)
	require.Len(t, summary.RecentReports, 5)
	assert.Equal(t, "2024-03-11", summary.RecentReports[0].Date)
	assert.Equal(t, "2024-03-15", summary.RecentReports[4].Date)
}

func TestSummary_Recomputes(t *testing.T) {
	repo := newMemReportRepo()
	seedReport(repo, "2024-03-15", "100", "50")
	svc := newAnalytics(repo)

	first, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.AllTime.ReportCount)

	seedReport(repo, "2024-03-14", "200", "100")
	second, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, second.AllTime.ReportCount)
	assertDec(t, "300", second.AllTime.TotalProfit)
}
