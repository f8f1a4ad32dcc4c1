package service

import (
	"github.com/koafy/setter-console/internal/adapter"
	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/models"
)

// Services groups the console's use cases.
type Services struct {
	ChatService    ChatService
	AppInfoService AppInfoService
}

// NewServices wires every service onto the Setter API adapter. notifier
// receives send outcomes and may be nil.
func NewServices(api adapter.SetterAPI, notifier Notifier, build models.BuildInfo, logger *logger.Logger) *Services {
	return &Services{
		ChatService:    NewChatService(api, notifier, logger),
		AppInfoService: NewAppInfoService(build, api, logger),
	}
}
