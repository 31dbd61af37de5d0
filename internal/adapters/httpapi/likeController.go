package httpapi

import (
	"net/http"

	likeapp "netter/internal/core/like/service"
	likePort "netter/internal/ports/like"

	"github.com/gin-gonic/gin"
)

type LikeController struct{ newScope ScopeFactory }

func NewLikeController(newScope ScopeFactory) *LikeController {
	return &LikeController{newScope: newScope}
}

func (ctl *LikeController) LikePost(c *gin.Context) {
	var cmd likePort.LikePostCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		badInput(c)
		return
	}
	cmd.PostID = c.Param("id")
	sc := ctl.newScope()
	res, err := likeapp.NewLikeService(sc.Likes(), sc).LikePost(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *LikeController) GetLikes(c *gin.Context) {
	sc := ctl.newScope()
	res, err := likeapp.NewLikeService(sc.Likes(), sc).GetLikes(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
