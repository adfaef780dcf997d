package apis

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type DeletedResponse[Item any] struct {
	Message string `json:"message"`
	Book    Item   `json:"book"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Books  int    `json:"books"`
}

type CrudAPI[Item any] interface {
	Insert(ctx *gin.Context) (*Item, error)
	ReadOne(itemID int, ctx *gin.Context) (*Item, error)
	Read(ctx *gin.Context) ([]Item, error)
	Update(itemID int, ctx *gin.Context) (*Item, error)
	Delete(itemID int, ctx *gin.Context) (*Item, error)
}

const DeletedMessage = "Book deleted"

func RegisterHealthCheck(g gin.IRoutes, count func() int) {

	g.GET("healthz", func(ctx *gin.Context) {

		ctx.JSON(http.StatusOK, HealthResponse{Status: "OK", Books: count()})
	})
}
