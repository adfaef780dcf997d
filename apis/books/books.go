package books

import (
	goerrors "errors"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/book-catalog/errors"
	"github.com/supakorn-kn/book-catalog/models/books"
	"github.com/supakorn-kn/book-catalog/objects"
)

// bookPayload accepts any JSON type for each field so that a wrong type is
// reported as that field being invalid rather than as a malformed body.
type bookPayload struct {
	Title  any `json:"title"`
	Author any `json:"author"`
}

func (p bookPayload) toInput() objects.BookInput {

	title, _ := p.Title.(string)
	author, _ := p.Author.(string)

	return objects.BookInput{Title: title, Author: author}
}

type BooksCrudAPI struct {
	registry *books.Registry
	log      *slog.Logger
}

func NewBooksAPI(registry *books.Registry, log *slog.Logger) *BooksCrudAPI {

	if log == nil {
		log = slog.Default()
	}

	return &BooksCrudAPI{registry: registry, log: log}
}

func (api BooksCrudAPI) Insert(ctx *gin.Context) (*objects.Book, error) {

	input, err := bindBookInput(ctx)
	if err != nil {
		return nil, err
	}

	book, err := api.registry.Create(input)
	if err != nil {
		return nil, err
	}

	api.log.InfoContext(ctx, "POST /api/books - Added book", "id", book.ID, "title", book.Title)

	return &book, nil
}

func (api BooksCrudAPI) ReadOne(itemID int, ctx *gin.Context) (*objects.Book, error) {

	book, ok := api.registry.FindByID(itemID)
	if !ok {
		return nil, errors.ObjectIDNotFoundError.New()
	}

	return &book, nil
}

func (api BooksCrudAPI) Read(ctx *gin.Context) ([]objects.Book, error) {

	list := api.registry.List()
	api.log.InfoContext(ctx, "GET /api/books - Retrieved all books", "count", len(list))

	return list, nil
}

func (api BooksCrudAPI) Update(itemID int, ctx *gin.Context) (*objects.Book, error) {

	if _, ok := api.registry.FindByID(itemID); !ok {
		return nil, errors.ObjectIDNotFoundError.New()
	}

	input, err := bindBookInput(ctx)
	if err != nil {
		return nil, err
	}

	book, err := api.registry.Update(itemID, input)
	if err != nil {
		return nil, err
	}

	api.log.InfoContext(ctx, "PUT /api/books/:id - Updated book", "id", book.ID)

	return &book, nil
}

func (api BooksCrudAPI) Delete(itemID int, ctx *gin.Context) (*objects.Book, error) {

	book, err := api.registry.Delete(itemID)
	if err != nil {
		return nil, err
	}

	api.log.InfoContext(ctx, "DELETE /api/books/:id - Deleted book", "id", book.ID)

	return &book, nil
}

// bindBookInput decodes the JSON body. An empty body is treated as an empty
// object, so it fails field validation instead of body decoding.
func bindBookInput(ctx *gin.Context) (objects.BookInput, error) {

	var payload bookPayload

	err := ctx.ShouldBindJSON(&payload)
	if err != nil && !goerrors.Is(err, io.EOF) {
		return objects.BookInput{}, errors.RequestBodyInvalidError.New(err)
	}

	return payload.toInput(), nil
}
