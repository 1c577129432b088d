package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/0DarkSoul/sistema-oficina/internal/application/analytics"
	"github.com/0DarkSoul/sistema-oficina/internal/application/documents"
	"github.com/0DarkSoul/sistema-oficina/internal/application/dto"
)

// DashboardHandler trata os indicadores e o relatório financeiro (protegido).
type DashboardHandler struct {
	uc   *analytics.UseCase
	docs *documents.UseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.UseCase, docs *documents.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, docs: docs}
}

// Dashboard devolve os indicadores calculados sobre todas as OS do usuário.
// GET /api/dashboard
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.uc.Dashboard(GetUserID(c))
	if err != nil {
		return mapDomainError(c, err, "dados não encontrados")
	}
	return c.JSON(stats)
}

// Report devolve o relatório financeiro. Aceita ?filter=TODAY|THIS_MONTH|LAST_MONTH
// ou ?start=YYYY-MM-DD&end=YYYY-MM-DD (intervalo inclusivo).
// GET /api/reports/financial
func (h *DashboardHandler) Report(c *fiber.Ctx) error {
	userID := GetUserID(c)

	if filter := c.Query("filter"); filter != "" {
		out, err := h.uc.QuickReport(userID, analytics.QuickFilter(filter))
		if err != nil {
			return mapDomainError(c, err, "dados não encontrados")
		}
		return c.JSON(out)
	}

	start, end, ok := parseRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start e end no formato YYYY-MM-DD"})
	}
	out, err := h.uc.Report(userID, start, end)
	if err != nil {
		return mapDomainError(c, err, "dados não encontrados")
	}
	return c.JSON(out)
}

// ReportPDF devolve o relatório financeiro em PDF.
// GET /api/reports/financial/pdf
func (h *DashboardHandler) ReportPDF(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var start, end time.Time
	if filter := c.Query("filter"); filter != "" {
		s, e, err := analytics.QuickRange(analytics.QuickFilter(filter), time.Now())
		if err != nil {
			return mapDomainError(c, err, "dados não encontrados")
		}
		start, end = s, e
	} else {
		var ok bool
		start, end, ok = parseRange(c)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start e end no formato YYYY-MM-DD"})
		}
	}

	pdfBytes, filename, err := h.docs.DownloadReportPDF(c.Context(), userID, start, end)
	if err != nil {
		return mapDomainError(c, err, "dados não encontrados")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// parseRange lê ?start= e ?end= como datas locais YYYY-MM-DD.
func parseRange(c *fiber.Ctx) (time.Time, time.Time, bool) {
	start, err := time.ParseInLocation("2006-01-02", c.Query("start"), time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.ParseInLocation("2006-01-02", c.Query("end"), time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
