package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/internal/utils"
	"github.com/koafy/setter-console/models"
)

type chatService struct {
	api      ChatAPI
	notifier Notifier

	logger *logger.Logger
}

// NewChatService returns a [ChatService]. notifier may be nil.
func NewChatService(api ChatAPI, notifier Notifier, logger *logger.Logger) ChatService {
	return &chatService{
		api:      api,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *chatService) List(ctx context.Context, accountID, filter string) ([]models.Chat, error) {
	if accountID == "" {
		return nil, ErrNoAccount
	}

	chats, err := s.api.ListChats(ctx, accountID)
	if err != nil {
		s.logger.Err(err).Str("func", "chatService.List").Str("account_id", accountID).Msg("failed to list chats")
		return nil, fmt.Errorf("list chats: %w", err)
	}

	matched := make([]models.Chat, 0, len(chats))
	for _, chat := range chats {
		if chat.Matches(filter) {
			matched = append(matched, chat)
		}
	}

	slices.SortStableFunc(matched, func(a, b models.Chat) int {
		return cmp.Compare(b.Timestamp.UnixNano(), a.Timestamp.UnixNano())
	})

	return matched, nil
}

func (s *chatService) Open(accountID, chatID string) *Conversation {
	return &Conversation{
		api:       s.api,
		notifier:  s.notifier,
		accountID: accountID,
		chatID:    chatID,
		ids:       utils.NewUUIDGenerator(tempIDPrefix),
		logger:    s.logger.WithAccount(accountID),
	}
}
