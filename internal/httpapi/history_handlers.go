package httpapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/verborum/verborum/internal/globaltime"
)

const historyUnavailableMessage = "History storage is not configured"

func (s *Server) handleHistoryList(c echo.Context) error {
	if s.pool == nil {
		return failUnavailable(c, historyUnavailableMessage)
	}

	limit, err := parsePositiveInt(c.QueryParam("limit"), s.cfg.HistoryPageSize, 1, 500)
	if err != nil {
		return failValidation(c, map[string]string{"limit": err.Error()})
	}

	items, err := s.pool.ListTranslationRecords(c.Request().Context(), limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("query translation history failed")
		return internalError(c, "Failed to load history")
	}

	total, err := s.pool.CountTranslationRecords(c.Request().Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("count translation history failed")
		return internalError(c, "Failed to load history")
	}

	return success(c, map[string]any{
		"items": items,
		"total": total,
	})
}

func (s *Server) handleHistoryClear(c echo.Context) error {
	if s.pool == nil {
		return failUnavailable(c, historyUnavailableMessage)
	}

	removed, err := s.pool.ClearTranslationRecords(c.Request().Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("clear translation history failed")
		return internalError(c, "Failed to clear history")
	}

	return success(c, map[string]any{"removed": removed})
}

// handleHistoryExport streams the full history as a downloadable JSON file,
// mirroring the portal's Export History button.
func (s *Server) handleHistoryExport(c echo.Context) error {
	if s.pool == nil {
		return failUnavailable(c, historyUnavailableMessage)
	}

	const exportLimit = 10000
	items, err := s.pool.ListTranslationRecords(c.Request().Context(), exportLimit)
	if err != nil {
		s.logger.Error().Err(err).Msg("export translation history failed")
		return internalError(c, "Failed to export history")
	}

	filename := fmt.Sprintf("verborum_history_%s.json", globaltime.UTC().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.JSON(http.StatusOK, items)
}
