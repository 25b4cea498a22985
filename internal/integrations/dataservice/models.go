package dataservice

// DataPath путь выдачи набора данных на удаленном сервисе
const DataPath = "/api/data"

// ErrorResponse модель ошибки от удаленного сервиса
type ErrorResponse struct {
	Error string `json:"error"`
}
