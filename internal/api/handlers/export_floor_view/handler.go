package export_floor_view

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RoomOccupancy/internal/api/handlers"
	getFloorView "github.com/m04kA/SMC-RoomOccupancy/internal/api/handlers/get_floor_view"
	"github.com/m04kA/SMC-RoomOccupancy/internal/infra/export"
)

const msgInvalidParams = "некорректные параметры запроса"

type Handler struct {
	useCase FloorViewUseCase
	logger  Logger
}

func NewHandler(useCase FloorViewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/view/export.xlsx
// Query params: day, period, floor (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := getFloorView.ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /api/view/export.xlsx - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		getFloorView.RespondUseCaseError(w, h.logger, "GET /api/view/export.xlsx", err)
		return
	}

	// Книга собирается целиком до отправки заголовков, чтобы ошибка могла вернуть 500
	var buf bytes.Buffer
	if err := export.WriteFrame(&buf, resp.Frame); err != nil {
		h.logger.Error("GET /api/view/export.xlsx - Failed to build workbook: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(resp.Frame.Selection)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("GET /api/view/export.xlsx - Failed to write response: %v", err)
	}
}
