// Package memstore предоставляет реализацию репозиториев для in-memory хранилища.
//
// Все методы репозитория преобразуют внутренние ошибки хранилища в общие ошибки уровня репозитория
// с помощью convertErrorType:
//   - memory.ErrDuplicateKey -> repositories.ErrDuplicateKey
//   - memory.ErrNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
//
// Многошаговые операции (проверка уникальности slug и вставка, учет перехода, восстановление,
// окончательное удаление) выполняются под общим мьютексом хранилища db.MemoryStorage.TxMu.
package memstore
