package repository

import (
	"context"

	"github.com/Bezziboi/j-app/internal/model"

	"gorm.io/gorm"
)

// ReportRepository is the persistence contract for daily reports. Create
// surfaces a duplicate report_date as gorm.ErrDuplicatedKey (TranslateError
// is enabled on the connection) — that unique index, not any client-side
// check, is what enforces at-most-one-report-per-date.
type ReportRepository interface {
	Create(ctx context.Context, r *model.DailyReport) error
	Update(ctx context.Context, r *model.DailyReport) error
	FindByDate(ctx context.Context, date string) (*model.DailyReport, error)
	List(ctx context.Context) ([]model.DailyReport, error)
	DeleteByDate(ctx context.Context, date string) error
}

type reportRepo struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) ReportRepository { return &reportRepo{db: db} }

func (r *reportRepo) Create(ctx context.Context, report *model.DailyReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// Update replaces the whole report in place, expense items included.
func (r *reportRepo) Update(ctx context.Context, report *model.DailyReport) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("report_id = ?", report.ID).Delete(&model.ExpenseItem{}).Error; err != nil {
			return err
		}
		return tx.Save(report).Error
	})
}

func (r *reportRepo) FindByDate(ctx context.Context, date string) (*model.DailyReport, error) {
	var report model.DailyReport
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("report_date = ?", date).
		First(&report).Error
	return &report, err
}

func (r *reportRepo) List(ctx context.Context) ([]model.DailyReport, error) {
	var reports []model.DailyReport
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("report_date DESC").
		Find(&reports).Error
	return reports, err
}

func (r *reportRepo) DeleteByDate(ctx context.Context, date string) error {
	res := r.db.WithContext(ctx).Where("report_date = ?", date).Delete(&model.DailyReport{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
