package httpapi

import (
	"net/http"

	commentapp "netter/internal/core/comment/service"
	commentPort "netter/internal/ports/comment"

	"github.com/gin-gonic/gin"
)

type CommentController struct{ newScope ScopeFactory }

func NewCommentController(newScope ScopeFactory) *CommentController {
	return &CommentController{newScope: newScope}
}

func (ctl *CommentController) service() *commentapp.CommentService {
	sc := ctl.newScope()
	return commentapp.NewCommentService(sc.Comments(), sc)
}

func (ctl *CommentController) AddComment(c *gin.Context) {
	var cmd commentPort.AddCommentCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		badInput(c)
		return
	}
	cmd.PostID = c.Param("id")
	res, err := ctl.service().AddComment(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *CommentController) EditComment(c *gin.Context) {
	var cmd commentPort.EditCommentCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		badInput(c)
		return
	}
	cmd.CommentID = c.Param("id")
	res, err := ctl.service().EditComment(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *CommentController) DeleteComment(c *gin.Context) {
	if _, err := ctl.service().DeleteComment(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *CommentController) RestoreComment(c *gin.Context) {
	res, err := ctl.service().RestoreComment(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *CommentController) GetComments(c *gin.Context) {
	res, err := ctl.service().GetComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
