package service

import (
	"context"
	"errors"
	"time"

	"github.com/Bezziboi/j-app/internal/dto"
	"github.com/Bezziboi/j-app/internal/model"
	"github.com/Bezziboi/j-app/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ReportExporter enqueues the async PDF-and-email export of a saved report.
// Implemented by worker.Dispatcher.
type ReportExporter interface {
	EnqueueReportExport(ctx context.Context, date string) error
}

// SummaryCache invalidates the cached analytics summary after report writes.
type SummaryCache interface {
	Invalidate(ctx context.Context)
}

type ReportService interface {
	// Save is the create-or-update-by-date protocol: update the existing
	// report for the date in place, create otherwise. The returned bool
	// is true when a new report was created.
	Save(ctx context.Context, createdBy string, req dto.SaveReportRequest) (*dto.ReportResponse, bool, error)
	// Update replaces the report for an existing date; ErrReportNotFound
	// when no report exists for it.
	Update(ctx context.Context, date, createdBy string, req dto.UpdateReportRequest) (*dto.ReportResponse, error)
	Get(ctx context.Context, date string) (*dto.ReportResponse, error)
	List(ctx context.Context) ([]dto.ReportResponse, error)
	Delete(ctx context.Context, date string) error
}

type reportService struct {
	repo     repository.ReportRepository
	exporter ReportExporter // nil when export is disabled
	cache    SummaryCache   // nil in tests
}

func NewReportService(repo repository.ReportRepository, exporter ReportExporter, cache SummaryCache) ReportService {
	return &reportService{repo: repo, exporter: exporter, cache: cache}
}

func (s *reportService) Save(ctx context.Context, createdBy string, req dto.SaveReportRequest) (*dto.ReportResponse, bool, error) {
	existing, err := s.repo.FindByDate(ctx, req.Date)
	switch {
	case err == nil:
		resp, uerr := s.replace(ctx, existing, createdBy, req.Date, updateFields(req))
		return resp, false, uerr

	case errors.Is(err, gorm.ErrRecordNotFound):
		report := buildReport(createdBy, req.Date, updateFields(req))
		if cerr := s.repo.Create(ctx, report); cerr != nil {
			if errors.Is(cerr, gorm.ErrDuplicatedKey) {
				// Lost a concurrent create on the date unique index —
				// the save protocol degrades to an update.
				won, ferr := s.repo.FindByDate(ctx, req.Date)
				if ferr != nil {
					return nil, false, ferr
				}
				resp, uerr := s.replace(ctx, won, createdBy, req.Date, updateFields(req))
				return resp, false, uerr
			}
			return nil, false, cerr
		}
		s.afterWrite(ctx, req.Date)
		return toReportResponse(report), true, nil

	default:
		return nil, false, err
	}
}

func (s *reportService) Update(ctx context.Context, date, createdBy string, req dto.UpdateReportRequest) (*dto.ReportResponse, error) {
	existing, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return s.replace(ctx, existing, createdBy, date, req)
}

func (s *reportService) Get(ctx context.Context, date string) (*dto.ReportResponse, error) {
	report, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return toReportResponse(report), nil
}

func (s *reportService) List(ctx context.Context) ([]dto.ReportResponse, error) {
	reports, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ReportResponse, len(reports))
	for i := range reports {
		resp[i] = *toReportResponse(&reports[i])
	}
	return resp, nil
}

func (s *reportService) Delete(ctx context.Context, date string) error {
	if err := s.repo.DeleteByDate(ctx, date); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReportNotFound
		}
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// replace rebuilds an existing report from the request, keeping its
// identity and creation timestamp, and persists it.
func (s *reportService) replace(ctx context.Context, existing *model.DailyReport, createdBy, date string, req dto.UpdateReportRequest) (*dto.ReportResponse, error) {
	report := buildReport(createdBy, date, req)
	report.ID = existing.ID
	report.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, report); err != nil {
		return nil, err
	}
	s.afterWrite(ctx, date)
	return toReportResponse(report), nil
}

func (s *reportService) afterWrite(ctx context.Context, date string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	if s.exporter != nil {
		if err := s.exporter.EnqueueReportExport(ctx, date); err != nil {
			// Export is best-effort; the save itself already succeeded.
			log.Error().Err(err).Str("date", date).Msg("failed to enqueue report export")
		}
	}
}

func updateFields(req dto.SaveReportRequest) dto.UpdateReportRequest {
	return dto.UpdateReportRequest{
		PosProfit:         req.PosProfit,
		EmployeePayout:    req.EmployeePayout,
		GovernmentExpense: req.GovernmentExpense,
		ProductExpenses:   req.ProductExpenses,
		OtherExpenses:     req.OtherExpenses,
	}
}

// buildReport reconciles the raw request fields into a persistable report.
func buildReport(createdBy, date string, req dto.UpdateReportRequest) *model.DailyReport {
	payout := DefaultEmployeePayout
	if req.EmployeePayout != nil {
		payout = *req.EmployeePayout
	}
	government := DefaultGovernmentExpense
	if req.GovernmentExpense != nil {
		government = *req.GovernmentExpense
	}

	totals := Reconcile(ReportInput{
		PosProfit:         req.PosProfit,
		EmployeePayout:    payout,
		GovernmentExpense: government,
		ProductExpenses:   req.ProductExpenses,
		OtherExpenses:     req.OtherExpenses,
	})

	report := &model.DailyReport{
		ReportDate:        date,
		PosProfit:         req.PosProfit,
		EmployeePayout:    payout,
		GovernmentExpense: government,
		TotalExpenses:     totals.TotalExpenses,
		CashInRegister:    totals.CashInRegister,
		RemainingBalance:  totals.RemainingBalance,
		Excess:            totals.Excess,
		CreatedBy:         createdBy,
	}
	report.Items = append(
		buildItems(model.KindProduct, req.ProductExpenses),
		buildItems(model.KindOther, req.OtherExpenses)...,
	)
	return report
}

func buildItems(kind string, items []dto.ExpenseItemPayload) []model.ExpenseItem {
	out := make([]model.ExpenseItem, len(items))
	for i, item := range items {
		out[i] = model.ExpenseItem{
			ItemID:   item.ID,
			Kind:     kind,
			Title:    item.Title,
			Amount:   item.Amount,
			Position: i,
		}
	}
	return out
}

func toReportResponse(r *model.DailyReport) *dto.ReportResponse {
	resp := &dto.ReportResponse{
		Date:              r.ReportDate,
		PosProfit:         r.PosProfit,
		EmployeePayout:    r.EmployeePayout,
		GovernmentExpense: r.GovernmentExpense,
		TotalExpenses:     r.TotalExpenses,
		CashInRegister:    r.CashInRegister,
		RemainingBalance:  r.RemainingBalance,
		Excess:            r.Excess,
		CreatedBy:         r.CreatedBy,
		CreatedAt:         r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:         r.UpdatedAt.UTC().Format(time.RFC3339),
	}
	resp.ProductExpenses = []dto.ExpenseItemResponse{}
	resp.OtherExpenses = []dto.ExpenseItemResponse{}
	for _, item := range r.Items {
		out := dto.ExpenseItemResponse{ID: item.ItemID, Title: item.Title, Amount: item.Amount}
		if item.Kind == model.KindProduct {
			resp.ProductExpenses = append(resp.ProductExpenses, out)
		} else {
			resp.OtherExpenses = append(resp.OtherExpenses, out)
		}
	}
	return resp
}
