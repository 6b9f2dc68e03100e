package webhook

import (
	"context"
	"time"

	"personal-agenda/internal/extraction"
	"personal-agenda/internal/task"
	"personal-agenda/internal/user"
	pkgLog "personal-agenda/pkg/log"
)

// Sender delivers outbound messages back to the user.
// *whatsapp.Client satisfies it.
type Sender interface {
	SendText(ctx context.Context, to, body string) error
}

type Handler struct {
	userUC       user.UseCase
	taskUC       task.UseCase
	extractionUC extraction.UseCase
	sender       Sender
	security     *SecurityValidator
	loc          *time.Location
	l            pkgLog.Logger
}

func NewHandler(
	userUC user.UseCase,
	taskUC task.UseCase,
	extractionUC extraction.UseCase,
	sender Sender,
	securityConfig SecurityConfig,
	loc *time.Location,
	l pkgLog.Logger,
) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		userUC:       userUC,
		taskUC:       taskUC,
		extractionUC: extractionUC,
		sender:       sender,
		security:     NewSecurityValidator(securityConfig),
		loc:          loc,
		l:            l,
	}
}
