package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/campusconnect/campus-service/internal/events"
)

// AuditService records identity events as structured audit log entries.
// Which verification check failed lives here, never in a client response.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to identity events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventAccountRegistered, a.handleAccountRegistered)
	a.dispatcher.Subscribe(events.EventLoginSucceeded, a.handleLoginSucceeded)
	a.dispatcher.Subscribe(events.EventLoginFailed, a.handleLoginFailed)
}

func (a *AuditService) handleAccountRegistered(ctx context.Context, event events.Event) error {
	a.logger.Info("AccountRegistered", zap.String("username", event.Username), zap.Any("payload", event.Payload))
	return nil
}

func (a *AuditService) handleLoginSucceeded(ctx context.Context, event events.Event) error {
	a.logger.Info("LoginSucceeded", zap.String("username", event.Username), zap.Any("payload", event.Payload))
	return nil
}

func (a *AuditService) handleLoginFailed(ctx context.Context, event events.Event) error {
	a.logger.Warn("LoginFailed", zap.String("username", event.Username), zap.Any("payload", event.Payload))
	return nil
}
