package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpText = `[gold]Chat screen[-]

  Enter   Send message
  Tab     Switch between input and chat list
  F1      This help
  F2      New chat
  F3      Rename current chat
  F4      Delete current chat
  F5      Refresh chats
  F7      Subscription plans
  F8      Profile
  Esc     Back to home

[gold]Everywhere[-]

  Dialogs close with their Cancel button.
  Errors are dismissible and never end the session.

Press Esc to close.`

func (a *App) showHelp() {
	text := tview.NewTextView()
	text.SetBorder(true)
	text.SetBorderColor(ColorBorder)
	text.SetBackgroundColor(ColorBg)
	text.SetTitle(" Help ")
	text.SetTitleColor(ColorTitle)
	text.SetTextColor(ColorFg)
	text.SetDynamicColors(true)
	text.SetText(helpText)

	text.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || event.Key() == tcell.KeyF1 {
			a.pages.RemovePage("help")
			if a.messageInput != nil {
				a.app.SetFocus(a.messageInput)
			}
			return nil
		}
		return event
	})

	a.pages.AddPage("help", center(text, 56, 24), true, true)
	a.app.SetFocus(text)
}
