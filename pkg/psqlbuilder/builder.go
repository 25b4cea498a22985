package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder squirrel с плейсхолдерами PostgreSQL ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select начинает SELECT-запрос
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Quote оборачивает идентификатор в двойные кавычки
// Таблицы исходной схемы названы в CamelCase и без кавычек не найдутся
func Quote(ident string) string {
	return `"` + ident + `"`
}

// QuoteAll quotes every identifier
func QuoteAll(idents ...string) []string {
	quoted := make([]string, len(idents))
	for i, ident := range idents {
		quoted[i] = Quote(ident)
	}
	return quoted
}
