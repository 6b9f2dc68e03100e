package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "personal-agenda/internal/auth/delivery/http"
	authUC "personal-agenda/internal/auth/usecase"
	"personal-agenda/internal/middleware"
	taskHTTP "personal-agenda/internal/task/delivery/http"
	taskRepo "personal-agenda/internal/task/repository/postgre"
	taskUC "personal-agenda/internal/task/usecase"
	userHTTP "personal-agenda/internal/user/delivery/http"
	userRepo "personal-agenda/internal/user/repository/postgre"
	userUC "personal-agenda/internal/user/usecase"
)

// setupDomains initializes each domain and registers its routes.
//
// Pattern per domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// User domain
	usrRepo := userRepo.New(srv.postgresDB, srv.l)
	usrUC := userUC.New(usrRepo, srv.l)
	usrHandler := userHTTP.New(srv.l, usrUC)
	userHTTP.RegisterRoutes(api, usrHandler, mw)

	// Auth domain, issues tokens against the user domain
	authUseCase := authUC.New(usrUC, srv.jwtManager, srv.l)
	authHandler := authHTTP.New(srv.l, authUseCase)
	authHTTP.RegisterRoutes(api, authHandler)

	// Task domain
	tskRepo := taskRepo.New(srv.postgresDB, srv.l)
	tskUC := taskUC.New(tskRepo, srv.l)
	tskHandler := taskHTTP.New(srv.l, tskUC)
	taskHTTP.RegisterRoutes(api, tskHandler, mw)

	srv.l.Infof(ctx, "User, auth and task domains registered")
	return nil
}
