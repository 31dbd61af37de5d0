package httpapi

import (
	"net/http"

	userapp "netter/internal/core/user/service"
	userPort "netter/internal/ports/user"

	"github.com/gin-gonic/gin"
)

type UserController struct{ newScope ScopeFactory }

func NewUserController(newScope ScopeFactory) *UserController {
	return &UserController{newScope: newScope}
}

func (ctl *UserController) CreateUser(c *gin.Context) {
	var cmd userPort.CreateUserCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		badInput(c)
		return
	}
	sc := ctl.newScope()
	res, err := userapp.NewCreateUserHandler(sc.Users(), sc).Handle(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Location", "/api/users/"+res.UserID)
	c.JSON(http.StatusCreated, res)
}

func (ctl *UserController) GetUserByID(c *gin.Context) {
	sc := ctl.newScope()
	res, err := userapp.NewGetUserByIDHandler(sc.Users()).Handle(c.Request.Context(), userPort.GetUserByIDQuery{UserID: c.Param("id")})
	if err != nil {
		writeError(c, err)
		return
	}
	if res == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *UserController) UpdateProfile(c *gin.Context) {
	var cmd userPort.UpdateProfileCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		badInput(c)
		return
	}
	cmd.UserID = c.Param("id")
	sc := ctl.newScope()
	res, err := userapp.NewUpdateProfileHandler(sc.Users(), sc).Handle(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *UserController) Deactivate(c *gin.Context) { ctl.setActive(c, false) }

func (ctl *UserController) Activate(c *gin.Context) { ctl.setActive(c, true) }

func (ctl *UserController) setActive(c *gin.Context, active bool) {
	sc := ctl.newScope()
	res, err := userapp.NewSetActiveHandler(sc.Users(), sc).Handle(c.Request.Context(), userPort.SetActiveCommand{
		UserID: c.Param("id"),
		Active: active,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
