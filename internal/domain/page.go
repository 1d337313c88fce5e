package domain

type Page[T any] struct {
	Content          []T   `json:"content"`
	TotalPages       int   `json:"totalPages"`
	TotalElements    int64 `json:"totalElements"`
	Last             bool  `json:"last"`
	First            bool  `json:"first"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	NumberOfElements int   `json:"numberOfElements"`
	Empty            bool  `json:"empty"`
}

// NewPage fills the paging metadata for one slice of a larger result.
func NewPage[T any](content []T, number int, size int, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}
	return Page[T]{
		Content:          content,
		TotalPages:       pages,
		TotalElements:    total,
		Last:             number >= pages-1,
		First:            number == 0,
		Number:           number,
		Size:             size,
		NumberOfElements: len(content),
		Empty:            len(content) == 0,
	}
}
