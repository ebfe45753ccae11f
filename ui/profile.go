package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (a *App) showProfilePage() {
	user := a.session.User()
	if user == nil {
		// Guard normally prevents this; a race with logout lands on login.
		a.showLoginPage("")
		return
	}

	info := tview.NewTextView()
	info.SetBorder(true)
	info.SetBorderColor(ColorBorder)
	info.SetBackgroundColor(ColorBg)
	info.SetTitle(" Your Profile ")
	info.SetTitleColor(ColorTitle)
	info.SetTextColor(ColorFg)
	info.SetDynamicColors(true)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  [gold]Email:[-]         %s\n", user.Email))
	if user.Username != "" {
		sb.WriteString(fmt.Sprintf("  [gold]Username:[-]      %s\n", user.Username))
	}
	verified := "no (check your inbox)"
	if user.IsVerified {
		verified = "yes"
	}
	sb.WriteString(fmt.Sprintf("  [gold]Verified:[-]      %s\n", verified))
	sb.WriteString(fmt.Sprintf("  [gold]Sign-in via:[-]   %s\n\n", user.AuthProvider))

	sb.WriteString(fmt.Sprintf("  [gold]Plan:[-]          %s\n", strings.ToUpper(string(user.SubscriptionTier))))
	sb.WriteString(fmt.Sprintf("  [gold]Renews:[-]        %s\n\n", formatExpiry(user.SubscriptionExpiry)))

	if user.BirthDate != "" {
		sb.WriteString(fmt.Sprintf("  [gold]Birth date:[-]    %s\n", user.BirthDate))
	}
	if user.BirthTime != "" {
		sb.WriteString(fmt.Sprintf("  [gold]Birth time:[-]    %s\n", user.BirthTime))
	}
	if user.BirthLocation != "" {
		sb.WriteString(fmt.Sprintf("  [gold]Birth place:[-]   %s\n", user.BirthLocation))
	}
	info.SetText(sb.String())

	form := newForm("")
	form.SetBorder(false)
	form.SetButtonsAlign(tview.AlignCenter)

	form.AddButton("Upgrade", func() { a.navigate(RouteSubscription) })
	form.AddButton("Back to Chat", func() { a.navigate(RouteChat) })
	form.AddButton("Logout", func() {
		a.session.Logout(a.ctx)
		a.showLoginPage("You have been signed out.")
	})

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(info, 0, 1, false).
		AddItem(form, 3, 0, true)
	layout.SetBackgroundColor(ColorBg)

	layout.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc {
			a.navigate(RouteChat)
			return nil
		}
		return event
	})

	a.switchTo(RouteProfile, center(layout, 60, 20))
	a.app.SetFocus(form)
}
