package httpapi

import (
	"net/http"

	followapp "netter/internal/core/follow/service"
	followPort "netter/internal/ports/follow"

	"github.com/gin-gonic/gin"
)

type FollowController struct{ newScope ScopeFactory }

func NewFollowController(newScope ScopeFactory) *FollowController {
	return &FollowController{newScope: newScope}
}

func (ctl *FollowController) service() *followapp.FollowService {
	sc := ctl.newScope()
	return followapp.NewFollowService(sc.Follows(), sc)
}

func (ctl *FollowController) FollowUser(c *gin.Context) {
	var cmd followPort.FollowCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		badInput(c)
		return
	}
	res, err := ctl.service().FollowUser(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *FollowController) UnfollowUser(c *gin.Context) {
	var cmd followPort.FollowCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		badInput(c)
		return
	}
	if err := ctl.service().UnfollowUser(c.Request.Context(), cmd); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *FollowController) GetFollowers(c *gin.Context) {
	res, err := ctl.service().GetFollowers(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *FollowController) GetFollowing(c *gin.Context) {
	res, err := ctl.service().GetFollowing(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
