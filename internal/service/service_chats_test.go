// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/koafy/setter-console/internal/adapter"
	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/internal/mock"
	"github.com/koafy/setter-console/models"
)

func newTestChatSvc(t *testing.T) (ChatService, *mock.MockChatAPI, *mock.MockNotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockChatAPI(ctrl)
	notifier := mock.NewMockNotifier(ctrl)
	return NewChatService(api, notifier, logger.Nop()), api, notifier
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestChatService_List_FiltersAndSorts(t *testing.T) {
	svc, api, _ := newTestChatSvc(t)
	ctx := context.Background()

	t0 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	api.EXPECT().ListChats(ctx, "u1").Return([]models.Chat{
		{ID: "1", Name: "Alice", Phone: "+100", Timestamp: t0},
		{ID: "2", Name: "Bob", Phone: "+200", Timestamp: t0.Add(time.Hour)},
		{ID: "3", Name: "alicia", Phone: "+300", Timestamp: t0.Add(2 * time.Hour)},
	}, nil)

	chats, err := svc.List(ctx, "u1", "ALI")
	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, "3", chats[0].ID)
	assert.Equal(t, "1", chats[1].ID)
}

func TestChatService_List_FilterByPhone(t *testing.T) {
	svc, api, _ := newTestChatSvc(t)

	api.EXPECT().ListChats(gomock.Any(), "u1").Return([]models.Chat{
		{ID: "1", Name: "Alice", Phone: "+100"},
		{ID: "2", Name: "Bob", Phone: "+200"},
	}, nil)

	chats, err := svc.List(context.Background(), "u1", "+20")
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, "2", chats[0].ID)
}

func TestChatService_List_EmptyFilterReturnsAll(t *testing.T) {
	svc, api, _ := newTestChatSvc(t)

	api.EXPECT().ListChats(gomock.Any(), "u1").Return([]models.Chat{{ID: "1"}, {ID: "2"}}, nil)

	chats, err := svc.List(context.Background(), "u1", "")
	require.NoError(t, err)
	assert.Len(t, chats, 2)
}

func TestChatService_List_NoAccount(t *testing.T) {
	svc, _, _ := newTestChatSvc(t)

	_, err := svc.List(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrNoAccount)
}

func TestChatService_List_APIError(t *testing.T) {
	svc, api, _ := newTestChatSvc(t)

	api.EXPECT().ListChats(gomock.Any(), "u1").Return(nil, adapter.ErrInternalServerError)

	_, err := svc.List(context.Background(), "u1", "")
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}

// ── Conversation ─────────────────────────────────────────────────────────────

func TestConversation_SendSuccess(t *testing.T) {
	svc, api, notifier := newTestChatSvc(t)
	ctx := context.Background()
	conv := svc.Open("u1", "chat-1")

	serverTime := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	api.EXPECT().SendMessage(ctx, "u1", "chat-1", "hello").
		DoAndReturn(func(context.Context, string, string, string) (models.Message, error) {
			msgs := conv.Messages()
			require.Len(t, msgs, 1)
			assert.Equal(t, models.MessageSending, msgs[0].State)
			assert.True(t, strings.HasPrefix(msgs[0].ID, "temp-"))
			return models.Message{ID: "srv-1", Text: "hello", Timestamp: serverTime}, nil
		})
	notifier.EXPECT().AddNotification(gomock.Any()).
		DoAndReturn(func(n models.Notification) models.Notification {
			assert.Equal(t, models.NotificationSuccess, n.Type)
			assert.Equal(t, "Message sent", n.Title)
			return n
		})

	sent, err := conv.Send(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, "srv-1", sent.ID)
	assert.Equal(t, models.MessageSent, sent.State)
	assert.True(t, sent.FromMe)

	msgs := conv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, sent, msgs[0])
}

func TestConversation_SendFailureMarksFailed(t *testing.T) {
	svc, api, notifier := newTestChatSvc(t)
	conv := svc.Open("u1", "chat-1")

	api.EXPECT().SendMessage(gomock.Any(), "u1", "chat-1", "hello").
		Return(models.Message{}, fmt.Errorf("send: %w: %v", adapter.ErrTransport, errors.New("dial tcp")))
	notifier.EXPECT().AddNotification(gomock.Any()).
		DoAndReturn(func(n models.Notification) models.Notification {
			assert.Equal(t, models.NotificationError, n.Type)
			assert.Equal(t, "Failed to send message", n.Title)
			assert.Equal(t, "connection lost", n.Message)
			return n
		})

	failed, err := conv.Send(context.Background(), "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrTransport)
	assert.Equal(t, models.MessageFailed, failed.State)

	msgs := conv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, models.MessageFailed, msgs[0].State)
	assert.Equal(t, "hello", msgs[0].Text)
}

func TestConversation_RetryFailedMessage(t *testing.T) {
	svc, api, notifier := newTestChatSvc(t)
	ctx := context.Background()
	conv := svc.Open("u1", "chat-1")

	gomock.InOrder(
		api.EXPECT().SendMessage(ctx, "u1", "chat-1", "hi").Return(models.Message{}, adapter.ErrBadGateway),
		api.EXPECT().SendMessage(ctx, "u1", "chat-1", "hi").Return(models.Message{ID: "srv-9"}, nil),
	)
	notifier.EXPECT().AddNotification(gomock.Any()).Return(models.Notification{}).Times(2)

	failed, err := conv.Send(ctx, "hi")
	require.Error(t, err)

	sent, err := conv.Deliver(ctx, failed.ID)
	require.NoError(t, err)
	assert.Equal(t, "srv-9", sent.ID)
	assert.Equal(t, "hi", sent.Text, "text falls back to the staged text")

	msgs := conv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, models.MessageSent, msgs[0].State)
}

func TestConversation_StageRejectsEmpty(t *testing.T) {
	svc, _, _ := newTestChatSvc(t)
	conv := svc.Open("u1", "chat-1")

	_, err := conv.Stage("   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Empty(t, conv.Messages())
}

func TestConversation_RequiresAccountAndChat(t *testing.T) {
	svc, _, _ := newTestChatSvc(t)

	_, err := svc.Open("", "chat-1").Send(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNoAccount)

	_, err = svc.Open("u1", "").Send(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNoChat)

	assert.ErrorIs(t, svc.Open("u1", "").Refresh(context.Background()), ErrNoChat)
}

func TestConversation_DeliverUnknown(t *testing.T) {
	svc, _, _ := newTestChatSvc(t)

	_, err := svc.Open("u1", "chat-1").Deliver(context.Background(), "temp-missing")
	assert.ErrorIs(t, err, ErrUnknownMessage)
}

func TestConversation_RefreshKeepsLocalEntries(t *testing.T) {
	svc, api, _ := newTestChatSvc(t)
	ctx := context.Background()
	conv := svc.Open("u1", "chat-1")

	staged, err := conv.Stage("pending")
	require.NoError(t, err)

	api.EXPECT().ChatMessages(ctx, "u1", "chat-1", DefaultMessageLimit).Return([]models.Message{
		{ID: "m1", Text: "first"},
		{ID: "m2", Text: "second"},
	}, nil)

	require.NoError(t, conv.Refresh(ctx))

	msgs := conv.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "m1", msgs[0].ID)
	assert.Equal(t, "m2", msgs[1].ID)
	assert.Equal(t, staged.ID, msgs[2].ID)
}

func TestConversation_RefreshError(t *testing.T) {
	svc, api, _ := newTestChatSvc(t)
	conv := svc.Open("u1", "chat-1")

	api.EXPECT().ChatMessages(gomock.Any(), "u1", "chat-1", DefaultMessageLimit).Return(nil, adapter.ErrNotFound)

	err := conv.Refresh(context.Background())
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Empty(t, conv.Messages())
}

func TestConversation_NilNotifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockChatAPI(ctrl)
	conv := NewChatService(api, nil, logger.Nop()).Open("u1", "chat-1")

	api.EXPECT().SendMessage(gomock.Any(), "u1", "chat-1", "hi").Return(models.Message{ID: "srv"}, nil)

	_, err := conv.Send(context.Background(), "hi")
	assert.NoError(t, err)
	assert.Equal(t, "chat-1", conv.ChatID())
}
