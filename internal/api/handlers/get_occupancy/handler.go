package get_occupancy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomOccupancy/internal/api/handlers"
	"github.com/m04kA/SMC-RoomOccupancy/internal/usecase/get_occupancy"
)

const (
	msgInvalidFloor  = "некорректный номер этажа"
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	useCase OccupancyUseCase
	logger  Logger
}

func NewHandler(useCase OccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/occupancy/{day}/{period}/{floor}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	floor, err := strconv.Atoi(vars["floor"])
	if err != nil {
		h.logger.Warn("GET /api/occupancy - Invalid floor: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFloor)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &get_occupancy.Request{
		Day:    vars["day"],
		Period: vars["period"],
		Floor:  floor,
	})
	if err != nil {
		switch {
		case errors.Is(err, get_occupancy.ErrInvalidInput):
			h.logger.Warn("GET /api/occupancy - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
		case errors.Is(err, get_occupancy.ErrDatasetNotLoaded):
			h.logger.Warn("GET /api/occupancy - Dataset not loaded")
			handlers.RespondServiceUnavailable(w)
		default:
			h.logger.Error("GET /api/occupancy - Failed to resolve occupancy: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /api/occupancy - day=%s, period=%s, floor=%d, occupied=%d",
		resp.Day, resp.Period, resp.Floor, len(resp.Rooms))
	handlers.RespondJSON(w, http.StatusOK, ToResponse(resp))
}
