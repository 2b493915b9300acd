// Package sql предоставляет реализацию репозиториев на gorm для PostgreSQL и SQLite.
//
// Все методы репозитория преобразуют ошибки gorm в общие ошибки уровня репозитория
// с помощью convertErrorType:
//   - gorm.ErrDuplicatedKey -> repositories.ErrDuplicateKey
//   - gorm.ErrRecordNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
//
// Уникальность slug и атомарность счетчика переходов обеспечиваются самой базой:
// уникальным индексом idx_links_slug и инкрементом access_count = access_count + 1.
package sql
