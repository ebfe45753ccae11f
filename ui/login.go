package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (a *App) showLoginPage(notice string) {
	form := newForm(" Sign in to AstroAI ")

	statusText := tview.NewTextView()
	statusText.SetBackgroundColor(ColorBg)
	statusText.SetTextColor(tcell.ColorRed)
	statusText.SetTextAlign(tview.AlignCenter)
	statusText.SetDynamicColors(true)
	if notice != "" {
		statusText.SetText(notice)
	}

	emailField := tview.NewInputField()
	emailField.SetLabel("Email: ")
	emailField.SetFieldWidth(34)

	passwordField := tview.NewInputField()
	passwordField.SetLabel("Password: ")
	passwordField.SetFieldWidth(34)
	passwordField.SetMaskCharacter('*')

	form.AddFormItem(emailField)
	form.AddFormItem(passwordField)

	form.AddButton("Login", func() {
		email := emailField.GetText()
		password := passwordField.GetText()
		if email == "" || password == "" {
			statusText.SetText("Please enter email and password")
			return
		}
		if a.session.Loading() {
			return
		}

		statusText.SetText("Signing in...")
		go func() {
			err := a.session.Login(a.ctx, email, password)
			a.app.QueueUpdateDraw(func() {
				if err != nil {
					statusText.SetText(a.session.LastError())
					return
				}
				a.navigate(RouteChat)
			})
		}()
	})

	form.AddButton("Social", func() {
		a.showSocialLoginDialog()
	})

	form.AddButton("Register", func() {
		a.navigate(RouteRegister)
	})

	form.AddButton("Back", func() {
		a.navigate(RouteHome)
	})

	formFlex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(statusText, 2, 0, false)

	a.switchTo(RouteLogin, center(formFlex, 58, 13))
	a.app.SetFocus(form)
}
