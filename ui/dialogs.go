package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"astroai/api"
	"astroai/models"
)

// newForm creates a form with the application styling applied.
func newForm(title string) *tview.Form {
	form := tview.NewForm()
	form.SetBackgroundColor(ColorBg)
	form.SetFieldBackgroundColor(ColorPanel)
	form.SetFieldTextColor(ColorFg)
	form.SetLabelColor(ColorHighlight)
	form.SetButtonBackgroundColor(ColorButton)
	form.SetButtonTextColor(ColorTitle)
	form.SetBorder(true)
	form.SetBorderColor(ColorBorder)
	form.SetTitle(title)
	form.SetTitleColor(ColorTitle)
	return form
}

// center wraps prim in a fixed-size centered box.
func center(prim tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().
			AddItem(nil, 0, 1, false).
			AddItem(prim, width, 0, true).
			AddItem(nil, 0, 1, false), height, 0, true).
		AddItem(nil, 0, 1, false)
}

// showErrorBanner pops a dismissible modal with the message. Every failure
// path ends here or in a form status line; nothing is fatal.
func (a *App) showErrorBanner(msg string, onDismiss func()) {
	modal := tview.NewModal()
	modal.SetText(msg)
	modal.SetBackgroundColor(ColorPanel)
	modal.SetTextColor(ColorFg)
	modal.SetButtonBackgroundColor(ColorButton)
	modal.SetButtonTextColor(ColorTitle)
	modal.AddButtons([]string{"Dismiss"})
	modal.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		a.pages.RemovePage("banner")
		if onDismiss != nil {
			onDismiss()
		}
	})

	a.pages.AddPage("banner", modal, true, true)
}

// showInfoModal is showErrorBanner with friendlier button text.
func (a *App) showInfoModal(msg string, onDismiss func()) {
	modal := tview.NewModal()
	modal.SetText(msg)
	modal.SetBackgroundColor(ColorPanel)
	modal.SetTextColor(ColorFg)
	modal.SetButtonBackgroundColor(ColorButton)
	modal.SetButtonTextColor(ColorTitle)
	modal.AddButtons([]string{"OK"})
	modal.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		a.pages.RemovePage("banner")
		if onDismiss != nil {
			onDismiss()
		}
	})

	a.pages.AddPage("banner", modal, true, true)
}

// handleError routes a failed call to the right reaction: a 401 tears the
// session down and lands on the login screen, everything else becomes a
// dismissible banner with a best-effort message.
func (a *App) handleError(err error, fallback string) {
	if api.IsUnauthorized(err) {
		a.session.Logout(a.ctx)
		a.showLoginPage("Your session has expired. Please log in again.")
		return
	}
	a.showErrorBanner(api.Message(err, fallback), nil)
}

// showSocialLoginDialog asks for a provider and its access token, then
// exchanges them for a backend session.
func (a *App) showSocialLoginDialog() {
	providers := []string{"google", "facebook", "instagram"}
	selected := providers[0]

	form := newForm(" Social Login ")

	statusText := tview.NewTextView()
	statusText.SetBackgroundColor(ColorBg)
	statusText.SetTextColor(tcell.ColorRed)
	statusText.SetTextAlign(tview.AlignCenter)

	tokenField := tview.NewInputField()
	tokenField.SetLabel("Provider token: ")
	tokenField.SetFieldWidth(40)

	form.AddDropDown("Provider: ", providers, 0, func(option string, index int) {
		selected = option
	})
	form.AddFormItem(tokenField)

	form.AddButton("Sign in", func() {
		token := tokenField.GetText()
		if token == "" {
			statusText.SetText("Please paste the provider token")
			return
		}
		provider := models.AuthProvider(selected)

		statusText.SetText("Signing in...")
		go func() {
			err := a.session.SocialLogin(a.ctx, provider, token)
			a.app.QueueUpdateDraw(func() {
				if err != nil {
					statusText.SetText(a.session.LastError())
					return
				}
				a.pages.RemovePage("dialog")
				a.navigate(RouteChat)
			})
		}()
	})

	form.AddButton("Cancel", func() {
		a.pages.RemovePage("dialog")
	})

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(statusText, 1, 0, false)

	a.pages.AddPage("dialog", center(flex, 62, 11), true, true)
	a.app.SetFocus(form)
}
