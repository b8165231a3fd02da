package worker

// export_worker.go
// Processes report export jobs: loads the saved report, renders the PDF
// sheet and mails it to the configured recipient.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Bezziboi/j-app/internal/infra"
	"github.com/Bezziboi/j-app/internal/service"

	"github.com/rs/zerolog/log"
)

// ExportJobPayload is the job envelope sent to QueueReportExport.
type ExportJobPayload struct {
	Date string `json:"date"`
}

// ExportWorker renders and emails saved daily reports.
type ExportWorker struct {
	reports     service.ReportService
	mailer      *infra.Mailer
	storagePath string
	recipient   string
}

func NewExportWorker(reports service.ReportService, mailer *infra.Mailer, storagePath, recipient string) *ExportWorker {
	return &ExportWorker{reports: reports, mailer: mailer, storagePath: storagePath, recipient: recipient}
}

// Process renders the report sheet and sends it as an attachment. The job
// carries only the date: the report is re-read so the export always
// reflects the latest save, even when jobs pile up.
func (w *ExportWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ExportJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("export_worker: invalid payload")
		return
	}
	if w.recipient == "" {
		log.Warn().Msg("export_worker: no recipient configured — skipping")
		return
	}

	report, err := w.reports.Get(ctx, payload.Date)
	if err != nil {
		log.Error().Err(err).Str("date", payload.Date).Msg("export_worker: report lookup failed")
		return
	}

	pdfPath, err := infra.GenerateReportPDF(report, w.storagePath)
	if err != nil {
		log.Error().Err(err).Str("date", payload.Date).Msg("export_worker: pdf generation failed")
		return
	}

	subject := fmt.Sprintf("Jadygoy Cafe daily report — %s", report.Date)
	body := fmt.Sprintf(
		"Daily report for %s.\n\nTotal expenses: %s TMT\nRemaining balance: %s TMT\n",
		report.Date,
		report.TotalExpenses.StringFixed(2),
		report.RemainingBalance.StringFixed(2),
	)
	if err := w.mailer.SendReport(w.recipient, subject, body, pdfPath); err != nil {
		log.Error().Err(err).Str("to", w.recipient).Msg("export_worker: failed to send email")
		return
	}
	log.Info().Str("date", report.Date).Str("to", w.recipient).Msg("export_worker: report sent")
}
