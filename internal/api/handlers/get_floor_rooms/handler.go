package get_floor_rooms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomOccupancy/internal/api/handlers"
	"github.com/m04kA/SMC-RoomOccupancy/internal/service/catalog"
)

const msgInvalidFloor = "некорректный номер этажа"

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/rooms/floor/{floor}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	floor, err := strconv.Atoi(mux.Vars(r)["floor"])
	if err != nil {
		h.logger.Warn("GET /api/rooms/floor/{floor} - Invalid floor: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFloor)
		return
	}

	rooms, err := h.service.RoomsOnFloor(r.Context(), floor)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrDatasetNotLoaded):
			h.logger.Warn("GET /api/rooms/floor/{floor} - Dataset not loaded")
			handlers.RespondServiceUnavailable(w)
		default:
			h.logger.Error("GET /api/rooms/floor/{floor} - Failed to get rooms: floor=%d, error=%v", floor, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rooms)
}
