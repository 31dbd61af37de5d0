package main

import (
	"context"
	"fmt"

	dbadapter "netter/internal/adapters/database"
	followapp "netter/internal/core/follow/service"
	postapp "netter/internal/core/post/service"
	userapp "netter/internal/core/user/service"
	followPort "netter/internal/ports/follow"
	postPort "netter/internal/ports/post"
	userPort "netter/internal/ports/user"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// seed creates demo users that all follow each other and publish a few posts each. Every
// command runs in its own scope, as an HTTP request would.
func seed(ctx context.Context, logger *zap.Logger, store *dbadapter.Store, numUsers, postsPerUser int) error {
	logger.Info("Seeding users", zap.Int("users", numUsers))

	userIDs := make([]string, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		sc := store.NewScope()
		username := fmt.Sprintf("testuser%d", i)
		u, err := userapp.NewCreateUserHandler(sc.Users(), sc).Handle(ctx, userPort.CreateUserCommand{
			Username:    username,
			Email:       username + "@example.com",
			DisplayName: fmt.Sprintf("Test User %d", i),
		})
		if err != nil {
			logger.Error("Error creating user", zap.String("username", username), zap.Error(err))
			continue
		}
		userIDs = append(userIDs, u.UserID)
	}
	logger.Info("Finished creating users", zap.Int("count", len(userIDs)))

	follows := 0
	for _, followerID := range userIDs {
		for _, followeeID := range userIDs {
			if followerID == followeeID {
				continue
			}
			sc := store.NewScope()
			_, err := followapp.NewFollowService(sc.Follows(), sc).FollowUser(ctx, followPort.FollowCommand{
				FollowerID: followerID,
				FolloweeID: followeeID,
			})
			if err != nil {
				logger.Error("Error creating follow", zap.String("followerID", followerID), zap.String("followeeID", followeeID), zap.Error(err))
				continue
			}
			follows++
		}
	}
	logger.Info("Follow setup completed", zap.Int("count", follows))

	p := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(4)
	for _, uid := range userIDs {
		p.Go(func(ctx context.Context) error {
			for n := 1; n <= postsPerUser; n++ {
				sc := store.NewScope()
				_, err := postapp.NewCreatePostHandler(sc.Posts(), sc).Handle(ctx, postPort.CreatePostCommand{
					UserID:  uid,
					Content: fmt.Sprintf("Post %d by user %s", n, uid),
				})
				if err != nil {
					return fmt.Errorf("create post for %s: %w", uid, err)
				}
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return err
	}

	logger.Info("Seed completed", zap.Int("users", len(userIDs)), zap.Int("posts", len(userIDs)*postsPerUser))
	return nil
}
