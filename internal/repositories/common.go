package repositories

// Поля, по которым допускается сортировка списка ссылок.
const (
	SortByTitle       = "title"
	SortBySlug        = "slug"
	SortByAccessCount = "access_count"
	SortByCreatedAt   = "created_at"
)

// SortableLinkFields белый список полей сортировки.
var SortableLinkFields = []string{SortByTitle, SortBySlug, SortByAccessCount, SortByCreatedAt} //nolint:gochecknoglobals

// Scope область видимости ссылок по признаку мягкого удаления.
type Scope int

const (
	ScopeActive  Scope = iota // только не удаленные
	ScopeTrashed              // только мягко удаленные
	ScopeAny                  // все
)

// LinkQuery параметры выборки ссылок владельца. Значения должны быть нормализованы сервисным слоем.
type LinkQuery struct {
	Search string
	SortBy string
	Limit  int
	Offset int
	UserID uint
	Desc   bool
}

// LinkUpdate изменяемые поля ссылки. nil означает "не менять", ClearTitle записывает NULL в title.
type LinkUpdate struct {
	OriginalURL *string
	Slug        *string
	Title       *string
	ClearTitle  bool
}

// LinkTotals агрегаты по ссылкам владельца.
type LinkTotals struct {
	Links int64
	Views int64
}
