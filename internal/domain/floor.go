package domain

import (
	"fmt"
	"sort"
)

// FloorConfig статическое описание плана этажа
// Width и Height - размеры исходного изображения, по ним считается масштаб
type FloorConfig struct {
	Floor  int
	Label  string
	Image  string
	Width  int
	Height int
}

// HasGeometry returns true if room geometry can be scaled onto the image
func (f *FloorConfig) HasGeometry() bool {
	return f.Width > 0 && f.Height > 0
}

// FloorCatalog таблица конфигураций этажей
type FloorCatalog map[int]FloorConfig

// NewFloorCatalog builds a catalog, later entries override earlier ones
func NewFloorCatalog(floors []FloorConfig) FloorCatalog {
	catalog := make(FloorCatalog, len(floors))
	for _, f := range floors {
		catalog[f.Floor] = f
	}
	return catalog
}

// Config returns the configuration of a floor
func (c FloorCatalog) Config(floor int) (FloorConfig, bool) {
	cfg, ok := c[floor]
	return cfg, ok
}

// Label returns the configured label or the generic "Floor N" fallback
func (c FloorCatalog) Label(floor int) string {
	if cfg, ok := c[floor]; ok && cfg.Label != "" {
		return cfg.Label
	}
	return fmt.Sprintf("Floor %d", floor)
}

// Image returns the configured image reference, empty if the floor is unknown
func (c FloorCatalog) Image(floor int) string {
	if cfg, ok := c[floor]; ok {
		return cfg.Image
	}
	return ""
}

// Floors returns configured floor numbers in ascending order
func (c FloorCatalog) Floors() []int {
	floors := make([]int, 0, len(c))
	for f := range c {
		floors = append(floors, f)
	}
	sort.Ints(floors)
	return floors
}
