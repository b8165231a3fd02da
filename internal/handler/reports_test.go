package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/Bezziboi/j-app/internal/dto"
	"github.com/Bezziboi/j-app/internal/middleware"
	"github.com/Bezziboi/j-app/internal/model"
	"github.com/Bezziboi/j-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory ReportRepository stub ───────────────────────────────────────────

type stubReportRepo struct {
	reports map[string]*model.DailyReport
}

func newStubReportRepo() *stubReportRepo {
	return &stubReportRepo{reports: make(map[string]*model.DailyReport)}
}

func (r *stubReportRepo) Create(_ context.Context, report *model.DailyReport) error {
	if _, exists := r.reports[report.ReportDate]; exists {
		return gorm.ErrDuplicatedKey
	}
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	cp := *report
	r.reports[report.ReportDate] = &cp
	return nil
}

func (r *stubReportRepo) Update(_ context.Context, report *model.DailyReport) error {
	cp := *report
	r.reports[report.ReportDate] = &cp
	return nil
}

func (r *stubReportRepo) FindByDate(_ context.Context, date string) (*model.DailyReport, error) {
	report, ok := r.reports[date]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *report
	return &cp, nil
}

func (r *stubReportRepo) List(_ context.Context) ([]model.DailyReport, error) {
	out := make([]model.DailyReport, 0, len(r.reports))
	for _, report := range r.reports {
		out = append(out, *report)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReportDate > out[j].ReportDate })
	return out, nil
}

func (r *stubReportRepo) DeleteByDate(_ context.Context, date string) error {
	if _, ok := r.reports[date]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.reports, date)
	return nil
}

// ── Router wiring ─────────────────────────────────────────────────────────────

func reportsTestRouter(repo *stubReportRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewReportService(repo, nil, nil)
	h := NewReportsHandler(svc, "/tmp/jadygoy/pdfs")

	r := gin.New()
	v1 := r.Group("/v1", middleware.JWTAuth(testSecret))
	v1.GET("/reports", h.List)
	v1.POST("/reports", h.Save)
	v1.GET("/reports/:date", h.Get)
	v1.PUT("/reports/:date", h.Update)
	v1.DELETE("/reports/:date", middleware.RequireAdmin(), h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func staffToken(t *testing.T) string {
	return signToken(t, uuid.NewString(), "aylar", false, time.Hour)
}

func adminToken(t *testing.T) string {
	return signToken(t, uuid.NewString(), "admin", true, time.Hour)
}

func sampleSaveReq(date string) dto.SaveReportRequest {
	return dto.SaveReportRequest{
		Date:      date,
		PosProfit: decimal.NewFromInt(1000),
		ProductExpenses: []dto.ExpenseItemPayload{
			{ID: "p1", Title: "Un", Amount: decimal.NewFromInt(50)},
		},
	}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestSaveReport_CreateThenUpdate(t *testing.T) {
	repo := newStubReportRepo()
	r := reportsTestRouter(repo)
	token := staffToken(t)

	w := doJSON(t, r, http.MethodPost, "/v1/reports", token, sampleSaveReq("2024-03-15"))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2024-03-15", resp.Date)
	assert.Equal(t, "900", resp.TotalExpenses.String()) // 650 + 200 + 50
	assert.Equal(t, "100", resp.RemainingBalance.String())
	assert.Equal(t, "aylar", resp.CreatedBy)

	// Saving the same date again replaces instead of conflicting.
	second := sampleSaveReq("2024-03-15")
	second.PosProfit = decimal.NewFromInt(2000)
	w = doJSON(t, r, http.MethodPost, "/v1/reports", token, second)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1100", resp.RemainingBalance.String())
	assert.Len(t, repo.reports, 1)
}

func TestSaveReport_ValidationFailures(t *testing.T) {
	r := reportsTestRouter(newStubReportRepo())
	token := staffToken(t)

	bad := sampleSaveReq("15-03-2024") // wrong date layout
	w := doJSON(t, r, http.MethodPost, "/v1/reports", token, bad)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	negative := sampleSaveReq("2024-03-15")
	negative.PosProfit = decimal.NewFromInt(-10)
	w = doJSON(t, r, http.MethodPost, "/v1/reports", token, negative)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetReport_NotFound(t *testing.T) {
	r := reportsTestRouter(newStubReportRepo())
	w := doJSON(t, r, http.MethodGet, "/v1/reports/2024-03-15", staffToken(t), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetReport_InvalidDateParam(t *testing.T) {
	r := reportsTestRouter(newStubReportRepo())
	w := doJSON(t, r, http.MethodGet, "/v1/reports/not-a-date", staffToken(t), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateReport_MissingDate(t *testing.T) {
	r := reportsTestRouter(newStubReportRepo())
	req := dto.UpdateReportRequest{PosProfit: decimal.NewFromInt(500)}
	w := doJSON(t, r, http.MethodPut, "/v1/reports/2024-03-15", staffToken(t), req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListReports_NewestFirst(t *testing.T) {
	repo := newStubReportRepo()
	r := reportsTestRouter(repo)
	token := staffToken(t)

	for _, date := range []string{"2024-03-13", "2024-03-15", "2024-03-14"} {
		w := doJSON(t, r, http.MethodPost, "/v1/reports", token, sampleSaveReq(date))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/v1/reports", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 3)
	assert.Equal(t, "2024-03-15", resp[0].Date)
	assert.Equal(t, "2024-03-13", resp[2].Date)
}

func TestDeleteReport_AdminOnly(t *testing.T) {
	repo := newStubReportRepo()
	r := reportsTestRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/v1/reports", staffToken(t), sampleSaveReq("2024-03-15"))
	require.Equal(t, http.StatusCreated, w.Code)

	// Staff cannot delete.
	w = doJSON(t, r, http.MethodDelete, "/v1/reports/2024-03-15", staffToken(t), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Len(t, repo.reports, 1)

	// Admin can.
	w = doJSON(t, r, http.MethodDelete, "/v1/reports/2024-03-15", adminToken(t), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, repo.reports)

	// Deleting it again is a 404.
	w = doJSON(t, r, http.MethodDelete, "/v1/reports/2024-03-15", adminToken(t), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
