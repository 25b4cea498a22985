package models

// Filters возможные значения фильтров
type Filters struct {
	Days    []string `json:"days"`
	Periods []string `json:"periods"`
	Floors  []Floor  `json:"floors"`
}

// Floor этаж в списке фильтров
type Floor struct {
	Floor    int    `json:"floor"`
	Label    string `json:"label"`
	ImageURL string `json:"imageUrl,omitempty"` // Пусто, если план этажа не настроен
	Width    int    `json:"width,omitempty"`    // Исходная ширина плана
	Height   int    `json:"height,omitempty"`   // Исходная высота плана
}
