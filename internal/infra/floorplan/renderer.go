package floorplan

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"io/fs"
	"math"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
	"github.com/m04kA/SMC-RoomOccupancy/internal/view"
)

const (
	// Прозрачность подсветки аудиторий
	highlightOpacity = 0.5

	// MaxCanvasPixels предельная площадь отрисовываемого плана
	MaxCanvasPixels = 4096 * 4096
)

var (
	usedColor      = color.NRGBA{R: 220, G: 53, B: 69, A: 255}
	availableColor = color.NRGBA{R: 40, G: 167, B: 69, A: 255}
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Renderer рисует план этажа с подсвеченными аудиториями
type Renderer struct {
	dir string
}

// NewRenderer создает рендерер, изображения ищутся в каталоге dir
func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// Render рисует изображение этажа в размере overlay и кодирует его в PNG
// Занятые аудитории подсвечиваются красным, свободные зеленым
func (r *Renderer) Render(w io.Writer, imageName string, overlay *view.Overlay) error {
	if overlay == nil || imageName == "" {
		return ErrNoOverlay
	}
	if err := checkCanvas(overlay.Width, overlay.Height); err != nil {
		return err
	}

	src, err := r.open(imageName)
	if err != nil {
		return err
	}

	width := int(math.Round(overlay.Width))
	height := int(math.Round(overlay.Height))
	canvas := imaging.Clone(src)
	if canvas.Bounds().Dx() != width || canvas.Bounds().Dy() != height {
		canvas = imaging.Resize(src, width, height, imaging.Lanczos)
	}

	for _, room := range overlay.Rooms {
		rect := roomRect(room)
		if rect.Empty() {
			continue
		}
		fill := availableColor
		if room.Used {
			fill = usedColor
		}
		patch := imaging.New(rect.Dx(), rect.Dy(), fill)
		canvas = imaging.Overlay(canvas, patch, rect.Min, highlightOpacity)
	}

	if err := imaging.Encode(w, canvas, imaging.PNG); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, imageName, err)
	}
	return nil
}

// ImageSize возвращает исходный размер изображения этажа
func (r *Renderer) ImageSize(imageName string) (int, int, error) {
	img, err := r.open(imageName)
	if err != nil {
		return 0, 0, err
	}
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}

// ProbeSizes дополняет конфигурацию этажей размерами из файлов изображений
// Этажи без изображения или с недоступным файлом остаются без геометрии
func (r *Renderer) ProbeSizes(floors []domain.FloorConfig, log Logger) []domain.FloorConfig {
	result := make([]domain.FloorConfig, len(floors))
	copy(result, floors)

	for i, f := range result {
		if f.HasGeometry() || f.Image == "" {
			continue
		}
		width, height, err := r.ImageSize(f.Image)
		if err != nil {
			log.Warn("Floor %d: cannot probe size of %s: %v", f.Floor, f.Image, err)
			continue
		}
		result[i].Width, result[i].Height = width, height
		log.Info("Floor %d: probed native size %dx%d from %s", f.Floor, width, height, f.Image)
	}

	return result
}

func (r *Renderer) open(imageName string) (image.Image, error) {
	path := filepath.Join(r.dir, filepath.Base(imageName))
	img, err := imaging.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrImageNotFound, imageName)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, imageName, err)
	}
	return img, nil
}

func roomRect(room view.OverlayRoom) image.Rectangle {
	left := int(math.Round(room.Left))
	top := int(math.Round(room.Top))
	return image.Rect(left, top,
		left+int(math.Round(room.Width)),
		top+int(math.Round(room.Height)))
}

func checkCanvas(width, height float64) error {
	if !(width >= 1 && height >= 1) || width*height > MaxCanvasPixels {
		return fmt.Errorf("%w: %gx%g", ErrCanvasTooLarge, width, height)
	}
	return nil
}
