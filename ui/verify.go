package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"astroai/api"
)

// showVerifyEmailPage takes the token from the verification email and
// submits it. The emailed link carries the token as a query parameter; in
// the terminal the token is pasted directly.
func (a *App) showVerifyEmailPage() {
	form := newForm(" Verify your email ")

	statusText := tview.NewTextView()
	statusText.SetBackgroundColor(ColorBg)
	statusText.SetTextColor(tcell.ColorRed)
	statusText.SetTextAlign(tview.AlignCenter)
	statusText.SetDynamicColors(true)

	tokenField := tview.NewInputField()
	tokenField.SetLabel("Verification token: ")
	tokenField.SetFieldWidth(40)

	form.AddFormItem(tokenField)

	form.AddButton("Verify", func() {
		token := tokenField.GetText()
		if token == "" {
			statusText.SetText("Verification token is missing. Please check your email link.")
			return
		}

		statusText.SetText("Verifying...")
		go func() {
			msg, err := a.api.VerifyEmail(a.ctx, token)
			a.app.QueueUpdateDraw(func() {
				if err != nil {
					statusText.SetText(api.Message(err, "Verification failed. Please try again."))
					return
				}
				if msg == "" {
					msg = "Email verified! You can now log in."
				}
				a.showInfoModal(msg, func() {
					a.navigate(RouteLogin)
				})
			})
		}()
	})

	form.AddButton("Back", func() {
		a.navigate(RouteHome)
	})

	formFlex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(statusText, 2, 0, false)

	a.switchTo(RouteVerifyEmail, center(formFlex, 66, 11))
	a.app.SetFocus(form)
}
