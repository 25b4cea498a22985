package render_floor_overlay

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomOccupancy/internal/api/handlers"
	getFloorView "github.com/m04kA/SMC-RoomOccupancy/internal/api/handlers/get_floor_view"
	"github.com/m04kA/SMC-RoomOccupancy/internal/infra/floorplan"
)

const (
	msgInvalidFloor  = "некорректный номер этажа"
	msgInvalidParams = "некорректные параметры запроса"
	msgNoFloorPlan   = "для этажа нет плана"
)

type Handler struct {
	useCase  FloorViewUseCase
	renderer OverlayRenderer
	logger   Logger
}

func NewHandler(useCase FloorViewUseCase, renderer OverlayRenderer, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /api/floors/{floor}/overlay.png
// Query params: day, period, width, height (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	floor, err := strconv.Atoi(mux.Vars(r)["floor"])
	if err != nil {
		h.logger.Warn("GET /api/floors/{floor}/overlay.png - Invalid floor: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFloor)
		return
	}

	req, err := getFloorView.ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /api/floors/{floor}/overlay.png - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	req.Floor = &floor

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		getFloorView.RespondUseCaseError(w, h.logger, "GET /api/floors/{floor}/overlay.png", err)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, resp.Frame.Image, resp.Frame.Overlay); err != nil {
		switch {
		case errors.Is(err, floorplan.ErrCanvasTooLarge):
			h.logger.Warn("GET /api/floors/{floor}/overlay.png - Canvas out of bounds: floor=%d, error=%v", floor, err)
			handlers.RespondBadRequest(w, msgInvalidParams)
		case errors.Is(err, floorplan.ErrNoOverlay), errors.Is(err, floorplan.ErrImageNotFound):
			h.logger.Warn("GET /api/floors/{floor}/overlay.png - No floor plan: floor=%d, error=%v", floor, err)
			handlers.RespondNotFound(w, msgNoFloorPlan)
		default:
			h.logger.Error("GET /api/floors/{floor}/overlay.png - Failed to render: floor=%d, error=%v", floor, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("GET /api/floors/{floor}/overlay.png - Failed to write response: %v", err)
	}
}
