package schedule

import "github.com/m04kA/SMC-RoomOccupancy/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
