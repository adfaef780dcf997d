package apis

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/book-catalog/errors"
)

func RegisterCrudAPI[Item any](api CrudAPI[Item], group *gin.RouterGroup) {

	group.POST("", func(ctx *gin.Context) {

		item, err := api.Insert(ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusCreated, item)
	})

	group.GET("", func(ctx *gin.Context) {

		items, err := api.Read(ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, items)
	})

	group.GET(":id", func(ctx *gin.Context) {

		itemID, err := ParseID(ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		item, err := api.ReadOne(itemID, ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, item)
	})

	group.PUT(":id", func(ctx *gin.Context) {

		itemID, err := ParseID(ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		item, err := api.Update(itemID, ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, item)
	})

	group.DELETE(":id", func(ctx *gin.Context) {

		itemID, err := ParseID(ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		item, err := api.Delete(itemID, ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, DeletedResponse[*Item]{Message: DeletedMessage, Book: item})
	})
}

// ParseID reads the :id path parameter. An id that is not a number can match no item,
// so it is reported as not found.
func ParseID(ctx *gin.Context) (int, error) {

	itemID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, errors.ObjectIDNotFoundError.New()
	}

	return itemID, nil
}

func writeErrorJSON(ctx *gin.Context, err error) {

	assertedError, ok := errors.TryAssertError(err)
	if !ok {
		slog.ErrorContext(ctx, "Unexpected API error", "path", ctx.Request.URL.Path, "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: errors.UnknownError.New(err).Error()})
		return
	}

	var statusCode int

	switch assertedError.Code {
	case errors.ObjectIDNotFoundErrorCode:
		statusCode = http.StatusNotFound
	case errors.TitleInvalidErrorCode, errors.AuthorInvalidErrorCode, errors.RequestBodyInvalidErrorCode:
		statusCode = http.StatusBadRequest
	default:
		statusCode = http.StatusInternalServerError
	}

	ctx.JSON(statusCode, ErrorResponse{Error: assertedError.Message})
}
