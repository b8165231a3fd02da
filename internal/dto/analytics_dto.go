package dto

import "github.com/shopspring/decimal"

// PeriodStats aggregates a subset of reports (all-time, trailing week,
// current month). Averages are zero when the subset is empty.
type PeriodStats struct {
	ReportCount   int             `json:"report_count"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	AvgProfit     decimal.Decimal `json:"avg_profit"`
	AvgExpenses   decimal.Decimal `json:"avg_expenses"`
	NetBalance    decimal.Decimal `json:"net_balance"`
}

// AnalyticsSummaryResponse is recomputed from the full report set on each
// view. RecentReports is the trailing-7-day subset ascending by date,
// truncated to the most recent 5 for display.
type AnalyticsSummaryResponse struct {
	AllTime       PeriodStats      `json:"all_time"`
	Last7Days     PeriodStats      `json:"last_7_days"`
	CurrentMonth  PeriodStats      `json:"current_month"`
	RecentReports []ReportResponse `json:"recent_reports"`
}
