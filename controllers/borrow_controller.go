// controllers/borrow_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"Gin_postgres_redis_library/app"
	"Gin_postgres_redis_library/db"
	"Gin_postgres_redis_library/models"

	"github.com/gin-gonic/gin"
)

type BorrowController struct{ *Srv }

func NewBorrowController(s *Srv) *BorrowController { return &BorrowController{Srv: s} }

type borrowRequest struct {
	BookID uint `json:"bookId" binding:"required,min=1"`
}

// POST /api/borrows
func (bc *BorrowController) Request(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}
	var in borrowRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	rec, err := bc.Flow.RequestBorrow(c.Request.Context(), who, in.BookID)
	if err != nil {
		bc.fail(c, "request borrow", err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// GET /api/borrows?status=&userId=&page=&size=
// Borrowers only ever see their own records; userId is honoured for admins.
func (bc *BorrowController) List(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}
	q := db.BorrowsQuery{Status: models.BorrowStatus(c.Query("status"))}
	if q.Status != "" && !q.Status.Valid() {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid status"})
		return
	}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Size, _ = strconv.Atoi(c.DefaultQuery("size", "20"))
	if who.IsAdmin() {
		q.UserID = c.Query("userId")
	} else {
		q.UserID = who.UserID
	}

	res, err := bc.Repo.ListBorrows(c.Request.Context(), q)
	if err != nil {
		bc.fail(c, "list borrows", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/borrows/:id
func (bc *BorrowController) Get(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := bc.Repo.FindBorrowRow(c.Request.Context(), id)
	if err != nil {
		bc.fail(c, "get borrow", err)
		return
	}
	if !who.IsAdmin() && row.UserID != who.UserID {
		// same answer as a missing record
		bc.fail(c, "get borrow", models.ErrRecordNotFound)
		return
	}
	c.JSON(http.StatusOK, row)
}

// POST /api/borrows/:id/return
func (bc *BorrowController) Return(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rec, err := bc.Flow.Return(c.Request.Context(), who, id)
	if err != nil {
		bc.fail(c, "return borrow", err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// POST /api/admin/borrows/:id/approve
func (bc *BorrowController) Approve(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rec, err := bc.Flow.Approve(c.Request.Context(), who, id)
	if err != nil {
		bc.fail(c, "approve borrow", err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// POST /api/admin/borrows/:id/reject
func (bc *BorrowController) Reject(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rec, err := bc.Flow.Reject(c.Request.Context(), who, id)
	if err != nil {
		bc.fail(c, "reject borrow", err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
