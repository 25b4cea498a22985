package reload_dataset

import (
	"time"

	"github.com/m04kA/SMC-RoomOccupancy/internal/usecase/load_dataset"
)

// ReloadResponse итог перезагрузки набора данных
type ReloadResponse struct {
	Source    string        `json:"source"`
	FromCache bool          `json:"fromCache"`
	Rooms     int           `json:"rooms"`
	ClassInfo int           `json:"classInfo"`
	Schedules int           `json:"schedules"`
	Rejected  []RejectedRow `json:"rejected"`
	Days      []string      `json:"days"`
	Periods   []string      `json:"periods"`
	Floors    []int         `json:"floors"`
	BuiltAt   time.Time     `json:"builtAt"`
}

// RejectedRow отклоненная строка исходной таблицы
type RejectedRow struct {
	Table string `json:"table"`
	Index int    `json:"index"`
	Error string `json:"error"`
}

// ToResponse переводит ответ use case в формат API
func ToResponse(resp *load_dataset.Response) *ReloadResponse {
	rejected := make([]RejectedRow, 0, len(resp.Rejected))
	for _, r := range resp.Rejected {
		rejected = append(rejected, RejectedRow{
			Table: r.Table,
			Index: r.Index,
			Error: r.Err.Error(),
		})
	}

	return &ReloadResponse{
		Source:    resp.Source,
		FromCache: resp.FromCache,
		Rooms:     resp.Rooms,
		ClassInfo: resp.ClassInfo,
		Schedules: resp.Schedules,
		Rejected:  rejected,
		Days:      resp.Days,
		Periods:   resp.Periods,
		Floors:    resp.Floors,
		BuiltAt:   resp.BuiltAt,
	}
}
