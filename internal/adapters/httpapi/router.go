package httpapi

import (
	"net/http"
	"time"

	"netter/internal/adapters/httpapi/middleware"
	"netter/internal/config"
	commentPort "netter/internal/ports/comment"
	followPort "netter/internal/ports/follow"
	likePort "netter/internal/ports/like"
	"netter/internal/ports/persistence"
	postPort "netter/internal/ports/post"
	userPort "netter/internal/ports/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Scope is one unit of work with the repositories that write into it.
type Scope interface {
	persistence.UnitOfWork
	Users() userPort.Repository
	Posts() postPort.Repository
	Follows() followPort.Repository
	Likes() likePort.Repository
	Comments() commentPort.Repository
}

// ScopeFactory is called once per request.
type ScopeFactory func() Scope

func SetupRoutes(newScope ScopeFactory, logger *zap.Logger, env string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))
	if env != config.EnvProduction {
		r.Use(cors.Default())
	}

	uc := NewUserController(newScope)
	pc := NewPostController(newScope)
	fc := NewFollowController(newScope)
	lc := NewLikeController(newScope)
	cc := NewCommentController(newScope)

	api := r.Group("/api")

	api.POST("/users", uc.CreateUser)
	api.GET("/users/:id", uc.GetUserByID)
	api.PUT("/users/:id/profile", uc.UpdateProfile)
	api.POST("/users/:id/deactivate", uc.Deactivate)
	api.POST("/users/:id/activate", uc.Activate)
	api.GET("/users/:id/followers", fc.GetFollowers)
	api.GET("/users/:id/following", fc.GetFollowing)

	api.POST("/posts", pc.CreatePost)
	api.GET("/posts", pc.GetPosts)
	api.PUT("/posts/:id", pc.UpdatePost)
	api.DELETE("/posts/:id", pc.DeletePost)
	api.POST("/posts/:id/restore", pc.RestorePost)
	api.POST("/posts/:id/likes", lc.LikePost)
	api.GET("/posts/:id/likes", lc.GetLikes)
	api.POST("/posts/:id/comments", cc.AddComment)
	api.GET("/posts/:id/comments", cc.GetComments)

	api.PUT("/comments/:id", cc.EditComment)
	api.DELETE("/comments/:id", cc.DeleteComment)
	api.POST("/comments/:id/restore", cc.RestoreComment)

	api.POST("/follows", fc.FollowUser)
	api.DELETE("/follows", fc.UnfollowUser)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Healthy", "timestamp": time.Now().UTC()})
	})
	return r
}
