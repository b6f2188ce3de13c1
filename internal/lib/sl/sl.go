// Package sl содержит помощники для структурированного логирования через slog.
package sl

import "log/slog"

// Err оборачивает ошибку в slog.Attr с ключом "error", чтобы ошибки во всех
// обработчиках и сервисах логировались одним и тем же полем.
//
// Пример:
//
//	log.Error("failed to read meal", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.String("error", err.Error())
}
