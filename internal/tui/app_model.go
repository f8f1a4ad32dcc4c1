package tui

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/koafy/setter-console/internal/config"
	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/internal/service"
	"github.com/koafy/setter-console/internal/session"
	"github.com/koafy/setter-console/internal/store"
	"github.com/koafy/setter-console/internal/workers"
	"github.com/koafy/setter-console/models"
)

type screen int

const (
	screenConnection screen = iota
	screenChats
	screenConversation
	screenNotifications
	screenHistory
	screenBuildInfo
)

const (
	chatsPoller    = "chats"
	messagesPoller = "messages"

	toastInterval  = time.Second
	statusLifetime = 3 * time.Second
)

type appModel struct {
	ctx       context.Context
	store     *session.Store
	services  *service.Services
	journal   store.JournalRepository
	pump      *pump
	workers   *workers.Workers
	intervals config.Workers
	toastTTL  time.Duration
	logger    *logger.Logger

	currentScreen screen
	backScreen    screen

	state   session.State
	spinner spinner.Model

	chats         chatsModel
	conversation  conversationModel
	notifications notificationsModel
	history       historyModel

	status        string
	healthErr     error
	healthChecked bool

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
	pending      tea.Cmd
}

func newAppModel(ctx context.Context, deps Deps, p *pump, log *logger.Logger) appModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return appModel{
		ctx:           ctx,
		store:         deps.Store,
		services:      deps.Services,
		journal:       deps.Journal,
		pump:          p,
		workers:       workers.NewWorkers(),
		intervals:     deps.Workers,
		toastTTL:      deps.ToastTTL,
		logger:        log,
		currentScreen: screenConnection,
		state:         deps.Store.State(),
		spinner:       sp,
		chats:         newChatsModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.pump.listen(), m.spinner.Tick, m.cmdStore(m.store.CheckStatus)}
	if m.toastTTL > 0 {
		cmds = append(cmds, cmdToastTick())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = msg.state
		if m.state.Status.Status != models.StatusConnected {
			if isChatScreen(m.currentScreen) {
				m.stopChatWorkers()
				m.currentScreen = screenConnection
			}
			if isChatScreen(m.backScreen) {
				m.stopChatWorkers()
				m.backScreen = screenConnection
			}
		}
		return m, m.pump.listen()

	case redirectMsg:
		if m.currentScreen == screenConnection {
			m.openChats()
		}
		return m, m.pump.listen()

	case chatsLoadedMsg:
		m.chats.loading = false
		if msg.err != nil {
			m.chats.err = humanizeError(msg.err)
		} else {
			m.chats.err = ""
			m.chats.setChats(msg.chats)
		}
		return m, m.pump.listen()

	case messagesLoadedMsg:
		if m.conversation.conv != nil && m.conversation.conv.ChatID() == msg.chatID {
			m.conversation.loading = false
			m.conversation.err = ""
			if msg.err != nil {
				m.conversation.err = humanizeError(msg.err)
			}
		}
		return m, m.pump.listen()

	case messageSentMsg:
		// The outcome is already on the message and in the notifications.
		return m, nil

	case historyLoadedMsg:
		m.history.loading = false
		m.history.err = ""
		if msg.err != nil {
			m.history.err = humanizeError(msg.err)
			return m, nil
		}
		m.history.events = msg.events
		m.history.notifications = msg.notifications
		return m, nil

	case healthMsg:
		m.healthChecked = true
		m.healthErr = msg.err
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.showError = true
			m.errorOverlay.message = "Could not copy the QR code: " + msg.err.Error()
			return m, nil
		}
		m.status = "QR code copied to the clipboard"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case toastTickMsg:
		m.store.ExpireNotifications(msg.now, m.toastTTL)
		return m, cmdToastTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}

	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			cmd := m.pending
			m.showConfirm = false
			m.pending = nil
			return m, cmd
		case key.Matches(msg, keys.no):
			m.showConfirm = false
			m.pending = nil
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenChats:
		return m.handleChatsKey(msg)
	case screenConversation:
		return m.handleConversationKey(msg)
	case screenNotifications:
		return m.handleNotificationsKey(msg)
	case screenHistory:
		switch {
		case key.Matches(msg, keys.esc):
			m.currentScreen = m.backScreen
		case key.Matches(msg, keys.refresh):
			m.history.loading = true
			return m, m.cmdLoadHistory()
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
		return m, nil
	case screenBuildInfo:
		switch {
		case key.Matches(msg, keys.esc):
			m.currentScreen = m.backScreen
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
		return m, nil
	default:
		return m.handleConnectionKey(msg)
	}
}

func (m appModel) handleConnectionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.state.Status

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.connect):
		if s.Status.BlocksConnect() {
			return m, nil
		}
		return m, m.cmdStore(m.store.Connect)
	case key.Matches(msg, keys.disconnect):
		if s.Status == models.StatusDisconnected {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = "Disconnect WhatsApp from this account?"
		m.pending = m.cmdStore(m.store.Disconnect)
		return m, nil
	case key.Matches(msg, keys.pauseBot):
		if s.Status != models.StatusConnected || m.state.Bot.IsLoading {
			return m, nil
		}
		return m, m.cmdStore(func(ctx context.Context) { m.store.ToggleBotPause(ctx, nil) })
	case key.Matches(msg, keys.refresh):
		return m, m.cmdStore(m.store.CheckStatus)
	case key.Matches(msg, keys.copyQR):
		if !s.HasQR() {
			return m, nil
		}
		return m, cmdCopyToClipboard(s.QR)
	case key.Matches(msg, keys.chats):
		if s.Status != models.StatusConnected {
			return m, nil
		}
		m.openChats()
		return m, nil
	}

	return m.handleCommonKey(msg)
}

func (m appModel) handleChatsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.chats.filtering {
		switch {
		case key.Matches(msg, keys.enter):
			m.chats.filtering = false
			m.chats.filter.Blur()
			m.startChatsPoller()
			return m, nil
		case key.Matches(msg, keys.esc):
			m.chats.filtering = false
			m.chats.filter.Blur()
			m.chats.filter.SetValue("")
			m.chats.move(0)
			m.startChatsPoller()
			return m, nil
		}
		var cmd tea.Cmd
		m.chats.filter, cmd = m.chats.filter.Update(msg)
		m.chats.idx = 0
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.stopChatWorkers()
		m.currentScreen = screenConnection
		return m, nil
	case key.Matches(msg, keys.up):
		m.chats.move(-1)
		return m, nil
	case key.Matches(msg, keys.down):
		m.chats.move(1)
		return m, nil
	case key.Matches(msg, keys.filter):
		m.chats.filtering = true
		return m, m.chats.filter.Focus()
	case key.Matches(msg, keys.refresh):
		m.chats.loading = true
		m.startChatsPoller()
		return m, nil
	case key.Matches(msg, keys.enter):
		chat, ok := m.chats.selected()
		if !ok {
			return m, nil
		}
		m.openConversation(chat)
		return m, textinput.Blink
	}

	return m.handleCommonKey(msg)
}

func (m appModel) handleConversationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.workers.Stop(messagesPoller)
		m.conversation = conversationModel{}
		m.openChats()
		return m, nil
	case key.Matches(msg, keys.retry):
		failed, ok := m.conversation.lastFailed()
		if !ok {
			return m, nil
		}
		return m, m.cmdDeliver(m.conversation.conv, failed.ID)
	case key.Matches(msg, keys.enter):
		if m.conversation.conv == nil {
			return m, nil
		}
		staged, err := m.conversation.conv.Stage(m.conversation.input.Value())
		if err != nil {
			if !errors.Is(err, service.ErrEmptyMessage) {
				m.conversation.err = humanizeError(err)
			}
			return m, nil
		}
		m.conversation.input.Reset()
		return m, m.cmdDeliver(m.conversation.conv, staged.ID)
	}

	var cmd tea.Cmd
	m.conversation.input, cmd = m.conversation.input.Update(msg)
	return m, cmd
}

func (m appModel) handleNotificationsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.state.Notifications

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.currentScreen = m.backScreen
	case key.Matches(msg, keys.up):
		m.notifications.move(-1, len(list))
	case key.Matches(msg, keys.down):
		m.notifications.move(1, len(list))
	case key.Matches(msg, keys.dismissAll):
		m.store.DismissAll()
		m.notifications.idx = 0
	case key.Matches(msg, keys.dismiss):
		if id, ok := m.notifications.selectedID(list); ok {
			m.store.DismissNotification(id)
			m.notifications.move(0, len(list)-1)
		}
	}

	return m, nil
}

// handleCommonKey opens the secondary screens reachable from the main ones.
func (m appModel) handleCommonKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.notifications):
		m.backScreen = m.currentScreen
		m.currentScreen = screenNotifications
		m.notifications.idx = 0
	case key.Matches(msg, keys.history):
		m.backScreen = m.currentScreen
		m.currentScreen = screenHistory
		m.history.loading = true
		return m, m.cmdLoadHistory()
	case key.Matches(msg, keys.buildInfo):
		m.backScreen = m.currentScreen
		m.currentScreen = screenBuildInfo
		m.healthChecked = false
		return m, m.cmdHealth()
	}

	return m, nil
}

func isChatScreen(s screen) bool {
	return s == screenChats || s == screenConversation
}

func (m *appModel) openChats() {
	m.currentScreen = screenChats
	m.chats.loading = true
	m.startChatsPoller()
}

func (m *appModel) openConversation(chat models.Chat) {
	m.workers.Stop(chatsPoller)

	conv := m.services.ChatService.Open(m.store.Account().ID, chat.ID)
	m.conversation = newConversationModel(chat, conv)
	m.currentScreen = screenConversation

	p := m.pump
	poller := workers.NewPoller(messagesPoller, m.intervals.MessagesInterval, func(ctx context.Context) {
		err := conv.Refresh(ctx)
		if ctx.Err() != nil {
			return
		}
		p.push(messagesLoadedMsg{chatID: conv.ChatID(), err: err})
	}, m.logger)
	m.workers.Start(m.ctx, messagesPoller, poller)
}

// startChatsPoller (re)starts the chat list refresh with the applied filter.
func (m *appModel) startChatsPoller() {
	var (
		p         = m.pump
		chats     = m.services.ChatService
		accountID = m.store.Account().ID
		term      = m.chats.filter.Value()
	)

	poller := workers.NewPoller(chatsPoller, m.intervals.ChatsInterval, func(ctx context.Context) {
		list, err := chats.List(ctx, accountID, term)
		if ctx.Err() != nil {
			return
		}
		p.push(chatsLoadedMsg{chats: list, err: err})
	}, m.logger)
	m.workers.Start(m.ctx, chatsPoller, poller)
}

func (m *appModel) stopChatWorkers() {
	m.workers.Stop(chatsPoller)
	m.workers.Stop(messagesPoller)
}

func (m appModel) cmdStore(action func(context.Context)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		action(ctx)
		return nil
	}
}

func (m appModel) cmdDeliver(conv *service.Conversation, id string) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		_, err := conv.Deliver(ctx, id)
		return messageSentMsg{chatID: conv.ChatID(), err: err}
	}
}

func (m appModel) cmdLoadHistory() tea.Cmd {
	ctx, journal, accountID := m.ctx, m.journal, m.store.Account().ID
	return func() tea.Msg {
		if journal == nil {
			return historyLoadedMsg{}
		}
		events, err := journal.StatusHistory(ctx, accountID, historyLimit)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		notifications, err := journal.NotificationHistory(ctx, accountID, historyLimit)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		return historyLoadedMsg{events: events, notifications: notifications}
	}
}

func (m appModel) cmdHealth() tea.Cmd {
	ctx, info := m.ctx, m.services.AppInfoService
	return func() tea.Msg {
		return healthMsg{err: info.Health(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cmdToastTick() tea.Cmd {
	return tea.Tick(toastInterval, func(t time.Time) tea.Msg {
		return toastTickMsg{now: t}
	})
}

func (m appModel) View() string {
	if m.showError {
		return appStyle.Render(m.errorOverlay.View())
	}
	if m.showConfirm {
		return appStyle.Render(m.confirm.View())
	}

	var body string
	switch m.currentScreen {
	case screenChats:
		body = m.chats.View()
	case screenConversation:
		body = m.conversation.View()
	case screenNotifications:
		return appStyle.Render(m.notifications.View(m.state.Notifications))
	case screenHistory:
		body = m.history.View()
	case screenBuildInfo:
		body = renderBuildInfoWindow(m.services.AppInfoService.BuildInfo(), m.healthErr, m.healthChecked)
	default:
		body = renderConnection(m.state, m.spinner.View(), m.status)
	}

	if toasts := renderToasts(m.state.Notifications); toasts != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", toasts)
	}
	return appStyle.Render(body)
}
