package get_filters

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomOccupancy/internal/api/handlers"
	"github.com/m04kA/SMC-RoomOccupancy/internal/service/catalog"
)

type Handler struct {
	service FiltersService
	logger  Logger
}

func NewHandler(service FiltersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/filters
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filters, err := h.service.Filters(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrDatasetNotLoaded):
			h.logger.Warn("GET /api/filters - Dataset not loaded")
			handlers.RespondServiceUnavailable(w)
		default:
			h.logger.Error("GET /api/filters - Failed to get filters: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, filters)
}
