package get_data

import (
	"net/http"

	"github.com/m04kA/SMC-RoomOccupancy/internal/api/handlers"
)

const msgFailedToLoad = "Failed to load data"

type Handler struct {
	service DatasetService
	logger  Logger
}

func NewHandler(service DatasetService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/data
// Отдает все три таблицы, ответ не кэшируется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	ds, err := h.service.Dataset(r.Context())
	if err != nil {
		h.logger.Error("GET /api/data - Failed to load data: %v", err)
		handlers.RespondJSON(w, http.StatusInternalServerError, ErrorBody{Error: msgFailedToLoad})
		return
	}

	doc := ToDocument(ds)
	h.logger.Info("GET /api/data - rooms=%d, classInfo=%d, schedules=%d",
		len(doc.Rooms), len(doc.ClassInfo), len(doc.Schedules))
	handlers.RespondJSON(w, http.StatusOK, doc)
}
