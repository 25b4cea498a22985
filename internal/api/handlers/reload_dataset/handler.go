package reload_dataset

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomOccupancy/internal/api/handlers"
	"github.com/m04kA/SMC-RoomOccupancy/internal/usecase/load_dataset"
)

const msgSourceUnavailable = "источник данных расписания недоступен"

type Handler struct {
	useCase LoadUseCase
	logger  Logger
}

func NewHandler(useCase LoadUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/reload
// Перечитывает источник в обход кэша и перестраивает индекс
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.useCase.Execute(r.Context(), &load_dataset.Request{Force: true})
	if err != nil {
		switch {
		case errors.Is(err, load_dataset.ErrSourceUnavailable):
			h.logger.Warn("POST /api/reload - Source unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgSourceUnavailable)
		default:
			h.logger.Error("POST /api/reload - Failed to reload dataset: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /api/reload - Dataset reloaded: rooms=%d, classInfo=%d, schedules=%d, rejected=%d",
		resp.Rooms, resp.ClassInfo, resp.Schedules, len(resp.Rejected))
	handlers.RespondJSON(w, http.StatusOK, ToResponse(resp))
}
