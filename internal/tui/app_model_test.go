package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/koafy/setter-console/internal/adapter"
	"github.com/koafy/setter-console/internal/config"
	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/internal/mock"
	"github.com/koafy/setter-console/internal/service"
	"github.com/koafy/setter-console/internal/session"
	"github.com/koafy/setter-console/models"
)

type testEnv struct {
	model   appModel
	store   *session.Store
	api     *mock.MockAPI
	chats   *mock.MockChatAPI
	health  *mock.MockHealthChecker
	journal *mock.MockJournalRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := mock.NewMockAPI(ctrl)
	chats := mock.NewMockChatAPI(ctrl)
	health := mock.NewMockHealthChecker(ctrl)
	journal := mock.NewMockJournalRepository(ctrl)

	account := models.Account{ID: "acc-1", Name: "Setter", Email: "setter@example.com"}
	st := session.NewStore(account, api, nil, session.Options{Logger: logger.Nop()})
	t.Cleanup(st.Close)

	services := &service.Services{
		ChatService:    service.NewChatService(chats, st, logger.Nop()),
		AppInfoService: service.NewAppInfoService(models.NewBuildInfo("1.2.3", "2026-10-01", "abc123"), health, logger.Nop()),
	}

	deps := Deps{
		Store:    st,
		Services: services,
		Journal:  journal,
		Workers:  config.Workers{ChatsInterval: time.Hour, MessagesInterval: time.Hour},
		ToastTTL: 3 * time.Second,
	}

	p := newPump()
	m := newAppModel(context.Background(), deps, p, logger.Nop())
	t.Cleanup(func() {
		m.workers.StopAll()
		p.close()
	})

	return &testEnv{model: m, store: st, api: api, chats: chats, health: health, journal: journal}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(appModel)
	require.True(t, ok)
	return out, cmd
}

func stateWith(status models.Status, qr string) session.State {
	return session.State{
		Account: models.Account{ID: "acc-1", Name: "Setter"},
		Status:  models.ConnectionStatus{Status: status, QR: qr},
	}
}

func TestAppModel_StateMsgRendersStatus(t *testing.T) {
	env := newTestEnv(t)

	m, cmd := update(t, env.model, stateMsg{state: stateWith(models.StatusQR, "pairing-code")})
	assert.NotNil(t, cmd)

	view := m.View()
	assert.Contains(t, view, "Waiting for QR scan")
	assert.Contains(t, view, "Linked devices")
	assert.Contains(t, view, "c: connect")
}

func TestAppModel_ConnectKey(t *testing.T) {
	env := newTestEnv(t)
	env.api.EXPECT().Connect(gomock.Any(), "acc-1").Return(nil)

	_, cmd := update(t, env.model, runeKey("c"))
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
	assert.True(t, env.store.Loading())
}

func TestAppModel_ConnectFailureShowsReason(t *testing.T) {
	env := newTestEnv(t)
	env.api.EXPECT().Connect(gomock.Any(), "acc-1").Return(fmt.Errorf("connect: %w", adapter.ErrTransport))

	_, cmd := update(t, env.model, runeKey("c"))
	require.NotNil(t, cmd)
	cmd()

	m, _ := update(t, env.model, stateMsg{state: env.store.State()})
	assert.Contains(t, m.View(), "connection lost")
}

func TestAppModel_ConnectIgnoredWhileConnected(t *testing.T) {
	env := newTestEnv(t)

	m, _ := update(t, env.model, stateMsg{state: stateWith(models.StatusConnected, "")})
	_, cmd := update(t, m, runeKey("c"))
	assert.Nil(t, cmd)
}

func TestAppModel_DisconnectNeedsConfirmation(t *testing.T) {
	env := newTestEnv(t)

	m, _ := update(t, env.model, stateMsg{state: stateWith(models.StatusConnected, "")})

	m, cmd := update(t, m, runeKey("d"))
	assert.Nil(t, cmd)
	assert.True(t, m.showConfirm)
	assert.Contains(t, m.View(), "Disconnect WhatsApp")

	m, cmd = update(t, m, runeKey("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)

	m, _ = update(t, m, runeKey("d"))
	m, cmd = update(t, m, runeKey("y"))
	assert.False(t, m.showConfirm)
	assert.NotNil(t, cmd)
}

func TestAppModel_DisconnectIgnoredWhenDisconnected(t *testing.T) {
	env := newTestEnv(t)

	m, cmd := update(t, env.model, runeKey("d"))
	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
}

func TestAppModel_ToggleBot(t *testing.T) {
	env := newTestEnv(t)

	m, _ := update(t, env.model, stateMsg{state: stateWith(models.StatusDisconnected, "")})
	_, cmd := update(t, m, runeKey("p"))
	assert.Nil(t, cmd, "bot cannot be paused while disconnected")

	m, _ = update(t, m, stateMsg{state: stateWith(models.StatusConnected, "")})
	_, cmd = update(t, m, runeKey("p"))
	assert.NotNil(t, cmd)
}

func TestAppModel_CheckStatusKey(t *testing.T) {
	env := newTestEnv(t)
	env.api.EXPECT().GetStatus(gomock.Any(), "acc-1").Return(models.StatusDocument{}, nil)

	_, cmd := update(t, env.model, runeKey("r"))
	require.NotNil(t, cmd)
	cmd()
}

func TestAppModel_RedirectOpensChats(t *testing.T) {
	env := newTestEnv(t)
	listed := make(chan struct{}, 1)
	env.chats.EXPECT().ListChats(gomock.Any(), "acc-1").DoAndReturn(func(context.Context, string) ([]models.Chat, error) {
		select {
		case listed <- struct{}{}:
		default:
		}
		return []models.Chat{{ID: "c1", Name: "Alice"}}, nil
	}).AnyTimes()

	m, cmd := update(t, env.model, stateMsg{state: stateWith(models.StatusConnected, "")})
	assert.NotNil(t, cmd)
	m, _ = update(t, m, redirectMsg{})
	assert.Equal(t, screenChats, m.currentScreen)

	select {
	case <-listed:
	case <-time.After(time.Second):
		t.Fatal("chat list was not requested")
	}

	msg := m.pump.listen()()
	loaded, ok := msg.(chatsLoadedMsg)
	require.True(t, ok)

	m, _ = update(t, m, loaded)
	assert.Contains(t, m.View(), "Alice")
}

func TestAppModel_RedirectIgnoredOutsideConnection(t *testing.T) {
	env := newTestEnv(t)

	m := env.model
	m.currentScreen = screenHistory
	m, _ = update(t, m, redirectMsg{})
	assert.Equal(t, screenHistory, m.currentScreen)
}

func TestAppModel_LeavingConnectedReturnsToConnection(t *testing.T) {
	env := newTestEnv(t)
	env.chats.EXPECT().ListChats(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	m, _ := update(t, env.model, stateMsg{state: stateWith(models.StatusConnected, "")})
	m, _ = update(t, m, runeKey("m"))
	require.Equal(t, screenChats, m.currentScreen)

	m, _ = update(t, m, stateMsg{state: stateWith(models.StatusDisconnected, "")})
	assert.Equal(t, screenConnection, m.currentScreen)
	assert.Equal(t, 0, m.workers.Len())
}

func TestAppModel_ChatsFilterAndOpen(t *testing.T) {
	env := newTestEnv(t)
	env.chats.EXPECT().ListChats(gomock.Any(), "acc-1").Return(nil, nil).AnyTimes()
	env.chats.EXPECT().ChatMessages(gomock.Any(), "acc-1", "c2", service.DefaultMessageLimit).
		Return([]models.Message{{ID: "m1", Text: "hello there"}}, nil).AnyTimes()

	m, _ := update(t, env.model, stateMsg{state: stateWith(models.StatusConnected, "")})
	m, _ = update(t, m, runeKey("m"))
	m, _ = update(t, m, chatsLoadedMsg{chats: []models.Chat{
		{ID: "c1", Name: "Alice", Phone: "+100"},
		{ID: "c2", Name: "Bob", Phone: "+200"},
	}})

	m, _ = update(t, m, runeKey("/"))
	require.True(t, m.chats.filtering)
	m, _ = update(t, m, runeKey("b"))
	m, _ = update(t, m, runeKey("o"))

	visible := m.chats.visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "c2", visible[0].ID)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.chats.filtering)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenConversation, m.currentScreen)
	assert.Equal(t, "c2", m.conversation.conv.ChatID())

	assert.Eventually(t, func() bool {
		return len(m.conversation.conv.Messages()) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestAppModel_ConversationSend(t *testing.T) {
	env := newTestEnv(t)
	env.chats.EXPECT().ChatMessages(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	m, _ := update(t, env.model, stateMsg{state: stateWith(models.StatusConnected, "")})
	m.openConversation(models.Chat{ID: "c1", Name: "Alice"})

	for _, r := range "hi" {
		m, _ = update(t, m, runeKey(string(r)))
	}
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Empty(t, m.conversation.input.Value())
	assert.Contains(t, m.View(), "sending...")

	env.chats.EXPECT().SendMessage(gomock.Any(), "acc-1", "c1", "hi").Return(models.Message{}, errors.New("boom"))
	sent, ok := cmd().(messageSentMsg)
	require.True(t, ok)
	assert.Error(t, sent.err)
	assert.Contains(t, m.View(), "(failed)")
	assert.Len(t, env.store.Notifications(), 1)

	env.chats.EXPECT().SendMessage(gomock.Any(), "acc-1", "c1", "hi").Return(models.Message{ID: "srv-1"}, nil)
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NotNil(t, cmd)
	sent, ok = cmd().(messageSentMsg)
	require.True(t, ok)
	assert.NoError(t, sent.err)
	assert.NotContains(t, m.View(), "(failed)")
}

func TestAppModel_ConversationEmptyMessageIgnored(t *testing.T) {
	env := newTestEnv(t)
	env.chats.EXPECT().ChatMessages(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	m := env.model
	m.openConversation(models.Chat{ID: "c1"})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Empty(t, m.conversation.err)
}

func TestAppModel_NotificationsScreen(t *testing.T) {
	env := newTestEnv(t)

	env.store.AddNotification(models.Notification{Type: models.NotificationInfo, Title: "first"})
	env.store.AddNotification(models.Notification{Type: models.NotificationError, Title: "second"})

	m, _ := update(t, env.model, stateMsg{state: env.store.State()})
	m, _ = update(t, m, runeKey("n"))
	require.Equal(t, screenNotifications, m.currentScreen)
	assert.Contains(t, m.View(), "second")

	// The cursor starts on the newest entry.
	m, _ = update(t, m, runeKey("x"))
	left := env.store.Notifications()
	require.Len(t, left, 1)
	assert.Equal(t, "first", left[0].Title)

	m, _ = update(t, m, runeKey("X"))
	assert.Empty(t, env.store.Notifications())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenConnection, m.currentScreen)
}

func TestAppModel_ToastsExpire(t *testing.T) {
	env := newTestEnv(t)

	n := env.store.AddNotification(models.Notification{Type: models.NotificationSuccess, Title: "Message sent"})
	m, _ := update(t, env.model, stateMsg{state: env.store.State()})
	assert.Contains(t, m.View(), "Message sent")

	_, cmd := update(t, m, toastTickMsg{now: n.Timestamp.Add(time.Second)})
	assert.NotNil(t, cmd)
	assert.Len(t, env.store.Notifications(), 1)

	update(t, m, toastTickMsg{now: n.Timestamp.Add(4 * time.Second)})
	assert.Empty(t, env.store.Notifications())
}

func TestAppModel_History(t *testing.T) {
	env := newTestEnv(t)
	at := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	env.journal.EXPECT().StatusHistory(gomock.Any(), "acc-1", historyLimit).Return([]models.StatusEvent{
		{Status: models.StatusConnected, RecordedAt: at},
		{Status: models.StatusError, Error: "connection lost", RecordedAt: at.Add(-time.Minute)},
	}, nil)
	env.journal.EXPECT().NotificationHistory(gomock.Any(), "acc-1", historyLimit).Return([]models.NotificationRecord{
		{AccountID: "acc-1", Notification: models.Notification{Title: "Bot paused", Timestamp: at}},
	}, nil)

	m, cmd := update(t, env.model, runeKey("h"))
	require.Equal(t, screenHistory, m.currentScreen)
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Loading history")

	m, _ = update(t, m, cmd())
	view := m.View()
	assert.Contains(t, view, "Connected")
	assert.Contains(t, view, "connection lost")
	assert.Contains(t, view, "Bot paused")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenConnection, m.currentScreen)
}

func TestAppModel_HistoryError(t *testing.T) {
	env := newTestEnv(t)
	env.journal.EXPECT().StatusHistory(gomock.Any(), "acc-1", historyLimit).Return(nil, errors.New("disk full"))

	m, cmd := update(t, env.model, runeKey("h"))
	m, _ = update(t, m, cmd())
	assert.Contains(t, m.View(), "disk full")
}

func TestAppModel_BuildInfo(t *testing.T) {
	env := newTestEnv(t)
	env.health.EXPECT().Health(gomock.Any()).Return(nil)

	m, cmd := update(t, env.model, runeKey("v"))
	require.Equal(t, screenBuildInfo, m.currentScreen)
	assert.Contains(t, m.View(), "checking...")

	m, _ = update(t, m, cmd())
	view := m.View()
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "abc123")
	assert.Contains(t, view, "reachable")
}

func TestAppModel_ErrorOverlay(t *testing.T) {
	env := newTestEnv(t)

	m, _ := update(t, env.model, copiedMsg{err: errors.New("no clipboard utility")})
	require.True(t, m.showError)
	assert.Contains(t, m.View(), "no clipboard utility")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.showError)
}

func TestAppModel_CopiedStatusClears(t *testing.T) {
	env := newTestEnv(t)

	m, cmd := update(t, env.model, copiedMsg{})
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "copied")

	m, _ = update(t, m, clearStatusMsg{})
	assert.NotContains(t, m.View(), "copied")
}

func TestAppModel_Quit(t *testing.T) {
	env := newTestEnv(t)

	_, cmd := update(t, env.model, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNew(t *testing.T) {
	_, err := New(Deps{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoStore)

	st := session.NewStore(models.Account{}, nil, nil, session.Options{})
	_, err = New(Deps{Store: st}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)

	ui, err := New(Deps{Store: st, Services: &service.Services{}}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, ui)
}
