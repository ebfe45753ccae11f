package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"astroai/session"
)

func (a *App) showRegisterPage() {
	form := newForm(" Create your AstroAI account ")

	statusText := tview.NewTextView()
	statusText.SetBackgroundColor(ColorBg)
	statusText.SetTextColor(tcell.ColorRed)
	statusText.SetTextAlign(tview.AlignCenter)

	emailField := tview.NewInputField().SetLabel("Email: ").SetFieldWidth(34)
	usernameField := tview.NewInputField().SetLabel("Username: ").SetFieldWidth(34)
	passwordField := tview.NewInputField().SetLabel("Password: ").SetFieldWidth(34)
	passwordField.SetMaskCharacter('*')
	confirmField := tview.NewInputField().SetLabel("Confirm password: ").SetFieldWidth(34)
	confirmField.SetMaskCharacter('*')

	// Birth data is optional and feeds chart readings.
	birthDateField := tview.NewInputField().SetLabel("Birth date (YYYY-MM-DD): ").SetFieldWidth(12)
	birthTimeField := tview.NewInputField().SetLabel("Birth time (HH:MM): ").SetFieldWidth(12)
	birthLocationField := tview.NewInputField().SetLabel("Birth location: ").SetFieldWidth(34)

	form.AddFormItem(emailField)
	form.AddFormItem(usernameField)
	form.AddFormItem(passwordField)
	form.AddFormItem(confirmField)
	form.AddFormItem(birthDateField)
	form.AddFormItem(birthTimeField)
	form.AddFormItem(birthLocationField)

	form.AddButton("Register", func() {
		if passwordField.GetText() != confirmField.GetText() {
			statusText.SetText("Passwords do not match")
			return
		}
		if a.session.Loading() {
			return
		}

		params := session.RegisterParams{
			Email:         emailField.GetText(),
			Username:      usernameField.GetText(),
			Password:      passwordField.GetText(),
			BirthDate:     birthDateField.GetText(),
			BirthTime:     birthTimeField.GetText(),
			BirthLocation: birthLocationField.GetText(),
		}

		statusText.SetText("Creating account...")
		go func() {
			_, err := a.session.Register(a.ctx, params)
			a.app.QueueUpdateDraw(func() {
				if err != nil {
					statusText.SetText(a.session.LastError())
					return
				}
				a.showLoginPage("Registration successful! Please check your email to verify your account.")
			})
		}()
	})

	form.AddButton("Social", func() {
		a.showSocialLoginDialog()
	})

	form.AddButton("Back", func() {
		a.navigate(RouteLogin)
	})

	formFlex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(statusText, 2, 0, false)

	a.switchTo(RouteRegister, center(formFlex, 66, 21))
	a.app.SetFocus(form)
}
