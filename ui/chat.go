package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"astroai/api"
	"astroai/chatlist"
	"astroai/models"
)

const defaultChatTitle = "New Chat"

// showChatPage builds the chat screen and fetches the chat list. A zero
// selectID means "no specific chat requested": the first chat is opened
// when any exist.
func (a *App) showChatPage(selectID int64) {
	a.chatsList = tview.NewList()
	a.chatsList.SetBorder(true)
	a.chatsList.SetBorderColor(ColorBorder)
	a.chatsList.SetBackgroundColor(ColorBg)
	a.chatsList.SetTitle(" Chats ")
	a.chatsList.SetTitleColor(ColorTitle)
	a.chatsList.SetMainTextColor(ColorFg)
	a.chatsList.SetMainTextStyle(tcell.StyleDefault.Foreground(ColorFg).Background(ColorBg))
	a.chatsList.SetSelectedTextColor(ColorTitle)
	a.chatsList.SetSelectedBackgroundColor(ColorButton)
	a.chatsList.SetHighlightFullLine(true)
	a.chatsList.ShowSecondaryText(false)

	a.chatsList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		a.mu.RLock()
		var id int64
		if index < len(a.chats) {
			id = a.chats[index].ID
		}
		a.mu.RUnlock()
		if id != 0 {
			a.openChat(id)
		}
	})

	a.chatView = tview.NewTextView()
	a.chatView.SetBorder(true)
	a.chatView.SetBorderColor(ColorBorder)
	a.chatView.SetBackgroundColor(ColorBg)
	a.chatView.SetTitle(" Start a New Chat ")
	a.chatView.SetTitleColor(ColorTitle)
	a.chatView.SetTextColor(ColorFg)
	a.chatView.SetDynamicColors(true)
	a.chatView.SetScrollable(true)
	a.chatView.ScrollToEnd()

	a.messageInput = tview.NewInputField()
	a.messageInput.SetLabel("> ")
	a.messageInput.SetFieldWidth(0)
	a.messageInput.SetBackgroundColor(ColorBg)
	a.messageInput.SetFieldBackgroundColor(ColorPanel)
	a.messageInput.SetFieldTextColor(ColorFg)
	a.messageInput.SetLabelColor(ColorHighlight)
	a.messageInput.SetBorder(true)
	a.messageInput.SetBorderColor(ColorBorder)
	a.messageInput.SetTitle(" Ask about your cosmic journey ")
	a.messageInput.SetTitleColor(ColorTitle)

	a.messageInput.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			text := strings.TrimSpace(a.messageInput.GetText())
			if text != "" {
				a.sendChatMessage(text)
			}
		}
	})

	a.statusBar = tview.NewTextView()
	a.statusBar.SetBackgroundColor(ColorButton)
	a.statusBar.SetTextColor(ColorTitle)
	a.statusBar.SetTextAlign(tview.AlignCenter)
	a.statusBar.SetText(" F1:Help | F2:New | F3:Rename | F4:Delete | F5:Refresh | F7:Plans | F8:Profile | Esc:Home ")

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.chatView, 0, 1, false).
		AddItem(a.messageInput, 3, 0, true)

	body := tview.NewFlex().
		AddItem(a.chatsList, 30, 0, false).
		AddItem(right, 0, 1, true)

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(body, 0, 1, true).
		AddItem(a.statusBar, 1, 0, false)
	mainFlex.SetBackgroundColor(ColorBg)

	mainFlex.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF1:
			a.showHelp()
			return nil
		case tcell.KeyF2:
			a.newChat()
			return nil
		case tcell.KeyF3:
			a.showRenameChatDialog()
			return nil
		case tcell.KeyF4:
			a.showDeleteChatDialog()
			return nil
		case tcell.KeyF5:
			a.mu.RLock()
			active := a.activeChat
			a.mu.RUnlock()
			a.loadChats(active)
			return nil
		case tcell.KeyF7:
			a.navigate(RouteSubscription)
			return nil
		case tcell.KeyF8:
			a.navigate(RouteProfile)
			return nil
		case tcell.KeyTab:
			if a.app.GetFocus() == a.messageInput {
				a.app.SetFocus(a.chatsList)
			} else {
				a.app.SetFocus(a.messageInput)
			}
			return nil
		case tcell.KeyEsc:
			a.navigate(RouteHome)
			return nil
		}
		return event
	})

	a.switchTo(RouteChat, mainFlex)
	a.app.SetFocus(a.messageInput)

	a.loadChats(selectID)
}

// afterChatFetch decides the list state once a chat fetch settles. A
// failed fetch keeps the previous list and selection untouched so the
// screen stays usable; a successful one resolves the requested chat,
// falling back to the first when it is absent.
func afterChatFetch(prev chatlist.List, prevActive int64, fetched chatlist.List, selectID int64, err error) (chatlist.List, int64) {
	if err != nil {
		return prev, prevActive
	}
	var active int64
	if id, ok := chatlist.Resolve(fetched, selectID); ok {
		active = id
	}
	return fetched, active
}

// loadChats fetches the chat list and resolves the active chat. Late
// responses from an earlier fetch are discarded via a generation counter.
func (a *App) loadChats(selectID int64) {
	a.mu.Lock()
	a.chatGen++
	gen := a.chatGen
	a.mu.Unlock()

	go func() {
		chats, err := a.api.Chats(a.ctx)
		a.app.QueueUpdateDraw(func() {
			a.mu.Lock()
			if gen != a.chatGen {
				a.mu.Unlock()
				return
			}
			a.chats, a.activeChat = afterChatFetch(a.chats, a.activeChat, chats, selectID, err)
			a.mu.Unlock()

			if err != nil {
				a.handleError(err, "Failed to load chats. Please try again.")
				return
			}
			a.renderChatList()
			a.renderChatView()
		})
	}()
}

// openChat switches the active chat. The list is already loaded; no
// network round trip is needed.
func (a *App) openChat(id int64) {
	a.mu.Lock()
	a.activeChat = id
	a.mu.Unlock()
	a.renderChatView()
	a.app.SetFocus(a.messageInput)
}

// afterCreateChat decides the list state and destination once a create
// attempt settles. On success the new chat is prepended and becomes the
// active one. On failure the list is untouched; a quota error redirects
// to the subscription screen, any other error stays put (empty route).
func afterCreateChat(prev chatlist.List, prevActive int64, created *models.Chat, err error) (chatlist.List, int64, string) {
	if err != nil {
		if api.IsQuotaExceeded(err) {
			return prev, prevActive, RouteSubscription
		}
		return prev, prevActive, ""
	}
	return chatlist.Prepend(prev, *created), created.ID, ""
}

// newChat creates a chat with the default title. A quota response sends
// the visitor to the subscription screen instead of a generic error.
// Re-entrant triggers while a creation is in flight are dropped.
func (a *App) newChat() {
	a.mu.Lock()
	if a.creating {
		a.mu.Unlock()
		return
	}
	a.creating = true
	a.mu.Unlock()

	go func() {
		chat, err := a.api.CreateChat(a.ctx, defaultChatTitle)
		a.app.QueueUpdateDraw(func() {
			a.mu.Lock()
			a.creating = false
			var redirect string
			a.chats, a.activeChat, redirect = afterCreateChat(a.chats, a.activeChat, chat, err)
			a.mu.Unlock()

			if err != nil {
				if redirect != "" {
					a.navigate(redirect)
					a.showErrorBanner(api.Message(err, "Free tier chat limit reached. Please upgrade to continue."), nil)
					return
				}
				a.handleError(err, "Failed to create new chat. Please try again.")
				return
			}
			a.renderChatList()
			a.renderChatView()
		})
	}()
}

func (a *App) showRenameChatDialog() {
	a.mu.RLock()
	chat, ok := chatlist.Find(a.chats, a.activeChat)
	a.mu.RUnlock()
	if !ok {
		return
	}

	form := newForm(fmt.Sprintf(" Rename %q ", chat.Title))

	statusLabel := tview.NewTextView()
	statusLabel.SetBackgroundColor(ColorBg)
	statusLabel.SetTextColor(tcell.ColorRed)

	titleField := tview.NewInputField()
	titleField.SetLabel("New title: ")
	titleField.SetFieldWidth(30)
	titleField.SetText(chat.Title)

	form.AddFormItem(titleField)

	form.AddButton("Rename", func() {
		title := strings.TrimSpace(titleField.GetText())
		if title == "" {
			statusLabel.SetText("Title is required")
			return
		}

		go func() {
			updated, err := a.api.RenameChat(a.ctx, chat.ID, title)
			a.app.QueueUpdateDraw(func() {
				if err != nil {
					statusLabel.SetText(api.Message(err, "Failed to update chat title."))
					return
				}
				a.mu.Lock()
				a.chats = chatlist.Replace(a.chats, *updated)
				a.mu.Unlock()
				a.pages.RemovePage("dialog")
				a.renderChatList()
				a.renderChatView()
			})
		}()
	})

	form.AddButton("Cancel", func() {
		a.pages.RemovePage("dialog")
		a.app.SetFocus(a.messageInput)
	})

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(statusLabel, 1, 0, false)

	a.pages.AddPage("dialog", center(flex, 50, 9), true, true)
	a.app.SetFocus(form)
}

func (a *App) showDeleteChatDialog() {
	a.mu.RLock()
	chat, ok := chatlist.Find(a.chats, a.activeChat)
	a.mu.RUnlock()
	if !ok {
		return
	}

	modal := tview.NewModal()
	modal.SetText(fmt.Sprintf("Delete chat %q and its history?", chat.Title))
	modal.SetBackgroundColor(ColorPanel)
	modal.SetTextColor(ColorFg)
	modal.SetButtonBackgroundColor(ColorButton)
	modal.SetButtonTextColor(ColorTitle)
	modal.AddButtons([]string{"Delete", "Cancel"})
	modal.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		a.pages.RemovePage("dialog")
		if buttonLabel != "Delete" {
			a.app.SetFocus(a.messageInput)
			return
		}

		go func() {
			err := a.api.DeleteChat(a.ctx, chat.ID)
			a.app.QueueUpdateDraw(func() {
				if err != nil {
					a.handleError(err, "Failed to delete chat. Please try again.")
					return
				}

				a.mu.Lock()
				a.chats = chatlist.Remove(a.chats, chat.ID)
				a.activeChat = 0
				if next, ok := chatlist.NextActive(a.chats, chat.ID, chat.ID); ok {
					a.activeChat = next
				}
				a.mu.Unlock()
				a.renderChatList()
				a.renderChatView()
			})
		}()
	})

	a.pages.AddPage("dialog", modal, true, true)
}

// sendChatMessage posts the input text and appends exactly the messages
// the backend returns (the stored user message and the AI reply) to both
// the list entry and the open view. One send at a time.
func (a *App) sendChatMessage(text string) {
	a.mu.Lock()
	if a.sending || a.activeChat == 0 {
		a.mu.Unlock()
		return
	}
	a.sending = true
	chatID := a.activeChat
	a.mu.Unlock()

	a.messageInput.SetText("")
	a.messageInput.SetLabel("… ")

	go func() {
		msgs, err := a.api.SendMessage(a.ctx, chatID, text)
		a.app.QueueUpdateDraw(func() {
			a.mu.Lock()
			a.sending = false
			a.mu.Unlock()
			a.messageInput.SetLabel("> ")

			if err != nil {
				a.handleError(err, "Failed to send message. Please try again.")
				return
			}

			a.mu.Lock()
			a.chats = chatlist.AppendMessages(a.chats, chatID, msgs)
			stillActive := a.activeChat == chatID
			a.mu.Unlock()

			// The view only refreshes when the chat is still open;
			// the list entry is updated either way.
			if stillActive {
				a.renderChatView()
			}
		})
	}()
}

func (a *App) renderChatList() {
	if a.chatsList == nil {
		return
	}
	a.mu.RLock()
	defer a.mu.RUnlock()

	a.chatsList.Clear()
	for _, chat := range a.chats {
		marker := "  "
		if chat.ID == a.activeChat {
			marker = "[gold]▸[-] "
		}
		a.chatsList.AddItem(fmt.Sprintf("%s%s", marker, chat.Title), "", 0, nil)
	}

	if user := a.session.User(); user != nil {
		a.chatsList.SetTitle(fmt.Sprintf(" Chats [%s] ", user.Username))
	}
}

func (a *App) renderChatView() {
	if a.chatView == nil {
		return
	}

	a.mu.RLock()
	chat, ok := chatlist.Find(a.chats, a.activeChat)
	a.mu.RUnlock()

	if !ok {
		a.chatView.SetTitle(" Start a New Chat ")
		a.chatView.SetText("\n[gray]No active chat. Press F2 to start one.[-]")
		return
	}

	a.chatView.SetTitle(fmt.Sprintf(" %s ", chat.Title))

	var sb strings.Builder
	var lastDate string
	for _, msg := range chat.Messages {
		if d := msg.CreatedAt.Format("2006-01-02"); d != lastDate {
			sb.WriteString(fmt.Sprintf("[gray]── %s ──[-]\n", formatDateSeparator(msg.CreatedAt)))
			lastDate = d
		}

		timeStr := msg.CreatedAt.Format("15:04")
		if msg.IsUser {
			sb.WriteString(fmt.Sprintf("[gray]%s[-] [white]You:[-] %s\n", timeStr, msg.Content))
		} else {
			sb.WriteString(fmt.Sprintf("[gray]%s[-] [#bd93f9]AstroAI:[-] %s\n", timeStr, msg.Content))
		}
	}
	if len(chat.Messages) == 0 {
		sb.WriteString("\n[gray]This is the beginning of your cosmic journey. Ask away.[-]")
	}

	a.chatView.SetText(sb.String())
	a.chatView.ScrollToEnd()
}
