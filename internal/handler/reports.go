package handler

import (
	"errors"
	"net/http"

	"github.com/Bezziboi/j-app/internal/apierror"
	"github.com/Bezziboi/j-app/internal/dto"
	"github.com/Bezziboi/j-app/internal/infra"
	"github.com/Bezziboi/j-app/internal/middleware"
	"github.com/Bezziboi/j-app/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct {
	svc         service.ReportService
	storagePath string
}

func NewReportsHandler(svc service.ReportService, storagePath string) *ReportsHandler {
	return &ReportsHandler{svc: svc, storagePath: storagePath}
}

// Save godoc
// @Summary Save the daily report (create-or-update by date)
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.SaveReportRequest true "Report fields"
// @Success 200 {object} dto.ReportResponse "updated existing report"
// @Success 201 {object} dto.ReportResponse "created new report"
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/reports [post]
func (h *ReportsHandler) Save(c *gin.Context) {
	var req dto.SaveReportRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, created, err := h.svc.Save(c.Request.Context(), claims.Username, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to save report"))
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}

// Update godoc
// @Summary Replace the report for an existing date
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param date path string true "Report date (YYYY-MM-DD)"
// @Param body body dto.UpdateReportRequest true "Report fields"
// @Success 200 {object} dto.ReportResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/reports/{date} [put]
func (h *ReportsHandler) Update(c *gin.Context) {
	date := dateParam(c)
	if date == "" {
		return
	}
	var req dto.UpdateReportRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.Update(c.Request.Context(), date, claims.Username, req)
	if err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to update report"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Fetch the report for one date
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param date path string true "Report date (YYYY-MM-DD)"
// @Success 200 {object} dto.ReportResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/reports/{date} [get]
func (h *ReportsHandler) Get(c *gin.Context) {
	date := dateParam(c)
	if date == "" {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch report"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary List all reports, newest date first
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ReportResponse
// @Router /v1/reports [get]
func (h *ReportsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list reports"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete the report for a date (admin only)
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param date path string true "Report date (YYYY-MM-DD)"
// @Success 200 {object} map[string]string
// @Failure 404 {object} apierror.APIError
// @Router /v1/reports/{date} [delete]
func (h *ReportsHandler) Delete(c *gin.Context) {
	date := dateParam(c)
	if date == "" {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), date); err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to delete report"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Report deleted successfully"})
}

// ExportPDF godoc
// @Summary Download the daily report sheet as PDF
// @Tags reports
// @Produce application/pdf
// @Security BearerAuth
// @Param date path string true "Report date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 404 {object} apierror.APIError
// @Router /v1/reports/{date}/pdf [get]
func (h *ReportsHandler) ExportPDF(c *gin.Context) {
	date := dateParam(c)
	if date == "" {
		return
	}
	report, err := h.svc.Get(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch report"))
		return
	}
	pdfPath, err := infra.GenerateReportPDF(report, h.storagePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to generate PDF"))
		return
	}
	c.FileAttachment(pdfPath, "report_"+date+".pdf")
}
