package floorplan

import (
	"bytes"
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
	"github.com/m04kA/SMC-RoomOccupancy/internal/view"
	"github.com/m04kA/SMC-RoomOccupancy/pkg/logger"
)

func writeFloorImage(t *testing.T, width, height int) string {
	t.Helper()
	dir := t.TempDir()
	img := imaging.New(width, height, color.White)
	require.NoError(t, imaging.Save(img, filepath.Join(dir, "floor-1.png")))
	return dir
}

func TestRenderer_ImageSize(t *testing.T) {
	r := NewRenderer(writeFloorImage(t, 200, 100))

	w, h, err := r.ImageSize("floor-1.png")
	require.NoError(t, err)
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)

	_, _, err = r.ImageSize("floor-9.png")
	assert.ErrorIs(t, err, ErrImageNotFound)
}

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer(writeFloorImage(t, 200, 100))

	overlay := &view.Overlay{
		ScaleX: 0.5,
		ScaleY: 0.5,
		Width:  100,
		Height: 50,
		Rooms: []view.OverlayRoom{
			{RoomID: 1, Number: "101", Left: 5, Top: 5, Width: 20, Height: 20, Used: true},
			{RoomID: 2, Number: "102", Left: 50, Top: 5, Width: 20, Height: 20},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "floor-1.png", overlay))

	img, err := imaging.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())

	used := color.NRGBAModel.Convert(img.At(10, 10)).(color.NRGBA)
	assert.Greater(t, used.R, used.G, "occupied room is highlighted red")

	free := color.NRGBAModel.Convert(img.At(55, 10)).(color.NRGBA)
	assert.Greater(t, free.G, free.R, "free room is highlighted green")

	background := color.NRGBAModel.Convert(img.At(90, 45)).(color.NRGBA)
	assert.Equal(t, background.R, background.G)
}

func TestRenderer_Render_NoOverlay(t *testing.T) {
	r := NewRenderer(t.TempDir())
	assert.ErrorIs(t, r.Render(&bytes.Buffer{}, "floor-1.png", nil), ErrNoOverlay)
	assert.ErrorIs(t, r.Render(&bytes.Buffer{}, "", &view.Overlay{}), ErrNoOverlay)
}

func TestRenderer_ProbeSizes(t *testing.T) {
	r := NewRenderer(writeFloorImage(t, 300, 150))

	floors := []domain.FloorConfig{
		{Floor: 1, Image: "floor-1.png"},
		{Floor: 2, Image: "floor-2.png"},
		{Floor: 3, Image: "floor-1.png", Width: 10, Height: 10},
	}

	probed := r.ProbeSizes(floors, logger.NewNop())
	assert.Equal(t, 300, probed[0].Width)
	assert.Equal(t, 150, probed[0].Height)
	assert.Equal(t, 0, probed[1].Width, "missing file keeps floor without geometry")
	assert.Equal(t, 10, probed[2].Width, "configured size wins")
	assert.Equal(t, 0, floors[0].Width, "input is not modified")
}

func TestRenderer_Render_CanvasBounds(t *testing.T) {
	r := NewRenderer(writeFloorImage(t, 200, 100))

	tests := []struct {
		name          string
		width, height float64
	}{
		{name: "huge", width: 1e10, height: 1e10},
		{name: "over pixel budget", width: 8192, height: 4096},
		{name: "zero", width: 0, height: 50},
		{name: "nan", width: math.NaN(), height: 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := r.Render(&buf, "floor-1.png", &view.Overlay{Width: tc.width, Height: tc.height})
			assert.ErrorIs(t, err, ErrCanvasTooLarge)
			assert.Zero(t, buf.Len())
		})
	}
}
