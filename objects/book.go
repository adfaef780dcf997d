package objects

type Book struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

func (b Book) GetID() int {
	return b.ID
}

// BookInput is the caller-supplied part of a book. Fields are stored trimmed.
type BookInput struct {
	Title  string `json:"title" validate:"notblank"`
	Author string `json:"author" validate:"notblank"`
}
