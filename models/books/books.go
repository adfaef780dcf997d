package books

import (
	goerrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"
	serverError "github.com/supakorn-kn/book-catalog/errors"
	"github.com/supakorn-kn/book-catalog/models"
	"github.com/supakorn-kn/book-catalog/objects"
)

const notBlankTag = "notblank"

var validate = newValidator()

func newValidator() *validator.Validate {

	v := validator.New()

	err := v.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	if err != nil {
		panic(err)
	}

	return v
}

// Validate reports the first invalid field of input, title before author.
func Validate(input objects.BookInput) error {

	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !goerrors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return serverError.UnknownError.New(err)
	}

	switch fieldErrors[0].StructField() {
	case "Title":
		return serverError.TitleInvalidError.New()
	case "Author":
		return serverError.AuthorInvalidError.New()
	default:
		return serverError.UnknownError.New(err)
	}
}

// Registry owns the book catalog. It is safe for concurrent use.
type Registry struct {
	store models.BaseModel[objects.Book]
}

var _ models.Model[objects.Book, objects.BookInput] = (*Registry)(nil)

func NewRegistry() *Registry {
	return new(Registry)
}

func (r *Registry) Create(input objects.BookInput) (objects.Book, error) {

	return r.store.Insert(func(bookID int) (objects.Book, error) {

		if err := Validate(input); err != nil {
			return objects.Book{}, err
		}

		return newBook(bookID, input), nil
	})
}

func (r *Registry) List() []objects.Book {
	return r.store.All()
}

func (r *Registry) FindByID(bookID int) (objects.Book, bool) {
	return r.store.GetByID(bookID)
}

func (r *Registry) Update(bookID int, input objects.BookInput) (objects.Book, error) {

	return r.store.Update(bookID, func(current objects.Book) (objects.Book, error) {

		if err := Validate(input); err != nil {
			return objects.Book{}, err
		}

		return newBook(current.ID, input), nil
	})
}

func (r *Registry) Delete(bookID int) (objects.Book, error) {
	return r.store.Delete(bookID)
}

func (r *Registry) Count() int {
	return r.store.Len()
}

func newBook(bookID int, input objects.BookInput) objects.Book {

	return objects.Book{
		ID:     bookID,
		Title:  strings.TrimSpace(input.Title),
		Author: strings.TrimSpace(input.Author),
	}
}
