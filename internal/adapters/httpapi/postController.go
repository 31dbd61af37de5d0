package httpapi

import (
	"net/http"

	postapp "netter/internal/core/post/service"
	postPort "netter/internal/ports/post"

	"github.com/gin-gonic/gin"
)

type PostController struct{ newScope ScopeFactory }

func NewPostController(newScope ScopeFactory) *PostController {
	return &PostController{newScope: newScope}
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var cmd postPort.CreatePostCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		badInput(c)
		return
	}
	sc := ctl.newScope()
	res, err := postapp.NewCreatePostHandler(sc.Posts(), sc).Handle(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Location", "/api/posts/"+res.PostID)
	c.JSON(http.StatusCreated, res)
}

func (ctl *PostController) GetPosts(c *gin.Context) {
	res, err := postapp.NewGetPostsHandler(ctl.newScope().Posts()).Handle(c.Request.Context(), postPort.GetPostsQuery{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) UpdatePost(c *gin.Context) {
	var cmd postPort.UpdatePostCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		badInput(c)
		return
	}
	cmd.PostID = c.Param("id")
	sc := ctl.newScope()
	res, err := postapp.NewUpdatePostContentHandler(sc.Posts(), sc).Handle(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	if _, err := ctl.setDeleted(c, true); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *PostController) RestorePost(c *gin.Context) {
	res, err := ctl.setDeleted(c, false)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) setDeleted(c *gin.Context, deleted bool) (*postPort.PostDTO, error) {
	sc := ctl.newScope()
	return postapp.NewSetPostDeletedHandler(sc.Posts(), sc).Handle(c.Request.Context(), postPort.SetDeletedCommand{
		PostID:  c.Param("id"),
		Deleted: deleted,
	})
}
