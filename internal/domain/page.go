package domain

// Page страница списка, нумерация с 1
type Page struct {
	Number int
	Size   int
}

// NewPage нормализует номер и размер страницы
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

// Limit размер страницы для LIMIT
func (p Page) Limit() uint64 {
	return uint64(p.Size)
}

// Offset смещение для OFFSET
func (p Page) Offset() uint64 {
	return uint64((p.Number - 1) * p.Size)
}
