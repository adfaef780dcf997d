// Package web serves the HTML pages of the catalog: the book list, the add and
// edit forms and the delete action.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/book-catalog/apis"
	"github.com/supakorn-kn/book-catalog/errors"
	"github.com/supakorn-kn/book-catalog/models/books"
	"github.com/supakorn-kn/book-catalog/objects"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	indexPage = "index.tmpl"
	addPage   = "add-book.tmpl"
	editPage  = "edit-book.tmpl"
	errorPage = "error.tmpl"
)

type pageData struct {
	PageTitle string
	Books     []objects.Book
	ID        int
	Title     string
	Author    string
	Error     string
	Message   string
}

type Pages struct {
	registry *books.Registry
	log      *slog.Logger
}

func LoadTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))
}

func RegisterPages(registry *books.Registry, log *slog.Logger, g *gin.Engine) {

	if log == nil {
		log = slog.Default()
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	g.SetHTMLTemplate(LoadTemplates())
	g.StaticFS("/static", http.FS(static))

	p := Pages{registry: registry, log: log}

	g.GET("/", p.index)
	g.GET("/books/add", p.addForm)
	g.POST("/books/add", p.add)
	g.GET("/books/edit/:id", p.editForm)
	g.POST("/books/edit/:id", p.edit)
	g.POST("/books/delete/:id", p.remove)
}

func (p Pages) index(ctx *gin.Context) {

	ctx.HTML(http.StatusOK, indexPage, pageData{PageTitle: "Books", Books: p.registry.List()})
}

func (p Pages) addForm(ctx *gin.Context) {

	ctx.HTML(http.StatusOK, addPage, pageData{PageTitle: "Add Book"})
}

func (p Pages) add(ctx *gin.Context) {

	input := bindForm(ctx)

	book, err := p.registry.Create(input)
	if err != nil {
		p.renderFormError(ctx, addPage, pageData{PageTitle: "Add Book", Title: input.Title, Author: input.Author}, err)
		return
	}

	p.log.InfoContext(ctx, "Added book from form", "id", book.ID, "title", book.Title)
	ctx.Redirect(http.StatusFound, "/")
}

func (p Pages) editForm(ctx *gin.Context) {

	bookID, err := apis.ParseID(ctx)
	if err != nil {
		p.renderError(ctx, err)
		return
	}

	book, ok := p.registry.FindByID(bookID)
	if !ok {
		p.renderError(ctx, errors.ObjectIDNotFoundError.New())
		return
	}

	ctx.HTML(http.StatusOK, editPage, pageData{PageTitle: "Edit Book", ID: book.ID, Title: book.Title, Author: book.Author})
}

func (p Pages) edit(ctx *gin.Context) {

	bookID, err := apis.ParseID(ctx)
	if err != nil {
		p.renderError(ctx, err)
		return
	}

	input := bindForm(ctx)

	book, err := p.registry.Update(bookID, input)
	if err != nil {
		data := pageData{PageTitle: "Edit Book", ID: bookID, Title: input.Title, Author: input.Author}
		p.renderFormError(ctx, editPage, data, err)
		return
	}

	p.log.InfoContext(ctx, "Updated book from form", "id", book.ID)
	ctx.Redirect(http.StatusFound, "/")
}

func (p Pages) remove(ctx *gin.Context) {

	bookID, err := apis.ParseID(ctx)
	if err != nil {
		p.renderError(ctx, err)
		return
	}

	book, err := p.registry.Delete(bookID)
	if err != nil {
		p.renderError(ctx, err)
		return
	}

	p.log.InfoContext(ctx, "Deleted book from form", "id", book.ID)
	ctx.Redirect(http.StatusFound, "/")
}

// renderFormError shows the form again with the entered values when the input was
// rejected, and the error page for anything else.
func (p Pages) renderFormError(ctx *gin.Context, page string, data pageData, err error) {

	if !errors.IsValidationError(err) {
		p.renderError(ctx, err)
		return
	}

	data.Error = err.Error()
	ctx.HTML(http.StatusBadRequest, page, data)
}

func (p Pages) renderError(ctx *gin.Context, err error) {

	statusCode := http.StatusInternalServerError
	message := "Something went wrong"

	switch {
	case errors.IsNotFoundError(err):
		statusCode = http.StatusNotFound
		message = err.Error()
	default:
		p.log.ErrorContext(ctx, "Unexpected page error", "path", ctx.Request.URL.Path, "error", err)
	}

	ctx.HTML(statusCode, errorPage, pageData{PageTitle: "Error", Message: message})
}

func bindForm(ctx *gin.Context) objects.BookInput {

	return objects.BookInput{
		Title:  ctx.PostForm("title"),
		Author: ctx.PostForm("author"),
	}
}
