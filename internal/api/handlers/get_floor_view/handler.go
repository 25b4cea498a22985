package get_floor_view

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomOccupancy/internal/api/handlers"
	"github.com/m04kA/SMC-RoomOccupancy/internal/usecase/get_floor_view"
)

const msgInvalidParams = "некорректные параметры запроса"

type Handler struct {
	useCase FloorViewUseCase
	images  ImageLocator
	logger  Logger
}

func NewHandler(useCase FloorViewUseCase, images ImageLocator, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		images:  images,
		logger:  logger,
	}
}

// Handle GET /api/view
// Query params: day, period, floor, width, height (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /api/view - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		RespondUseCaseError(w, h.logger, "GET /api/view", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ToResponse(resp, h.images))
}

// RespondUseCaseError отвечает на ошибку use case вида этажа
func RespondUseCaseError(w http.ResponseWriter, logger Logger, route string, err error) {
	switch {
	case errors.Is(err, get_floor_view.ErrInvalidInput):
		logger.Warn("%s - Invalid parameters: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
	case errors.Is(err, get_floor_view.ErrDatasetNotLoaded):
		logger.Warn("%s - Dataset not loaded", route)
		handlers.RespondServiceUnavailable(w)
	default:
		logger.Error("%s - Failed to build floor view: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
