package controllers

import (
	"net/http"
	"strconv"

	"Gin_postgres_redis_library/app"
	"Gin_postgres_redis_library/db"
	"Gin_postgres_redis_library/models"

	"github.com/gin-gonic/gin"
)

type BookController struct{ *Srv }

func NewBookController(s *Srv) *BookController { return &BookController{Srv: s} }

type bookView struct {
	models.Book
	CategoryName string `json:"categoryName"`
	Available    bool   `json:"available"`
}

func viewBook(b models.Book) bookView {
	return bookView{Book: b, CategoryName: b.Category.String(), Available: b.Stock > 0}
}

// GET /api/books?q=&category=
func (bc *BookController) List(c *gin.Context) {
	q := db.BooksQuery{Q: c.Query("q")}
	if v := c.Query("category"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || !models.Category(n).Valid() {
			c.JSON(http.StatusBadRequest, app.H{"error": "invalid category"})
			return
		}
		q.Category = models.Category(n)
	}
	books, err := bc.Repo.ListBooks(c.Request.Context(), q)
	if err != nil {
		bc.fail(c, "list books", err)
		return
	}
	out := make([]bookView, 0, len(books))
	for _, b := range books {
		out = append(out, viewBook(b))
	}
	c.JSON(http.StatusOK, app.H{"items": out})
}

// GET /api/books/:id
func (bc *BookController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	b, err := bc.Repo.FindBookByID(c.Request.Context(), id)
	if err != nil {
		bc.fail(c, "get book", err)
		return
	}
	c.JSON(http.StatusOK, viewBook(*b))
}
