package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const homeBanner = `
    *  .  ✦      .      *
  ✦   AstroAI   .   ✦
    .      *  .     .
 Your personal astrologer`

func (a *App) showHomePage() {
	banner := tview.NewTextView()
	banner.SetBackgroundColor(ColorBg)
	banner.SetTextColor(ColorHighlight)
	banner.SetTextAlign(tview.AlignCenter)
	banner.SetText(homeBanner)

	intro := tview.NewTextView()
	intro.SetBackgroundColor(ColorBg)
	intro.SetTextColor(ColorFg)
	intro.SetTextAlign(tview.AlignCenter)
	intro.SetText("Ask about your zodiac sign, career path, love life,\nanything written in the stars.")

	form := newForm("")
	form.SetBorder(false)
	form.SetButtonsAlign(tview.AlignCenter)

	if a.session.IsAuthenticated() {
		form.AddButton("Start Chatting", func() { a.navigate(RouteChat) })
		form.AddButton("Profile", func() { a.navigate(RouteProfile) })
	} else {
		form.AddButton("Login", func() { a.navigate(RouteLogin) })
		form.AddButton("Register", func() { a.navigate(RouteRegister) })
		form.AddButton("Verify Email", func() { a.navigate(RouteVerifyEmail) })
	}
	form.AddButton("Quit", func() { a.quit() })

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(banner, 5, 0, false).
		AddItem(intro, 3, 0, false).
		AddItem(form, 3, 0, true).
		AddItem(nil, 0, 1, false)
	layout.SetBackgroundColor(ColorBg)

	layout.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyF10 {
			a.quit()
			return nil
		}
		return event
	})

	a.switchTo(RouteHome, layout)
	a.app.SetFocus(form)
}

func (a *App) showNotFoundPage() {
	text := tview.NewTextView()
	text.SetBackgroundColor(ColorBg)
	text.SetTextColor(ColorFg)
	text.SetTextAlign(tview.AlignCenter)
	text.SetText("\n\nLost in space: this page does not exist.\n\nPress Enter to return home.")

	text.SetDoneFunc(func(key tcell.Key) {
		a.navigate(RouteHome)
	})

	a.switchTo(RouteNotFound, text)
	a.app.SetFocus(text)
}
