package ui

import (
	"context"
	"sync"

	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"astroai/api"
	"astroai/chatlist"
	"astroai/logger"
	"astroai/session"
)

// App is the main application
type App struct {
	app     *tview.Application
	pages   *tview.Pages
	api     *api.Client
	session *session.Store
	ctx     context.Context
	log     zerolog.Logger

	mu         sync.RWMutex
	chats      chatlist.List
	activeChat int64
	chatGen    int // bumped per chat-list fetch so late responses are discarded
	sending    bool
	creating   bool
	pending    string // route requested while the initial session load runs

	chatsList    *tview.List
	chatView     *tview.TextView
	messageInput *tview.InputField
	statusBar    *tview.TextView
}

// NewApp creates a new application instance
func NewApp(client *api.Client, store *session.Store) *App {
	return &App{
		api:     client,
		session: store,
		ctx:     context.Background(),
		log:     logger.Get().With().Str("component", "ui").Logger(),
	}
}

// Run starts the application
func (a *App) Run() error {
	a.app = tview.NewApplication()
	a.pages = tview.NewPages()

	background := tview.NewBox()
	background.SetBackgroundColor(ColorBg)
	a.pages.AddPage("background", background, true, true)

	a.showLoadingPage()

	// Rehydrate the session from durable storage, then land on home.
	go func() {
		a.session.LoadFromStorage(a.ctx)
		a.app.QueueUpdateDraw(func() {
			a.mu.RLock()
			target := a.pending
			a.mu.RUnlock()
			if target == "" {
				target = RouteHome
			}
			a.navigate(target)
		})
	}()

	return a.app.SetRoot(a.pages, true).EnableMouse(false).Run()
}

// quit exits the application
func (a *App) quit() {
	a.app.Stop()
}
