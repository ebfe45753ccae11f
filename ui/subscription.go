package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"astroai/api"
	"astroai/models"
)

var paymentMethods = []string{"paypal", "stripe", "crypto"}

func (a *App) showSubscriptionPage() {
	plansList := tview.NewList()
	plansList.SetBorder(true)
	plansList.SetBorderColor(ColorBorder)
	plansList.SetBackgroundColor(ColorBg)
	plansList.SetTitle(" Subscription Plans ")
	plansList.SetTitleColor(ColorTitle)
	plansList.SetMainTextColor(ColorFg)
	plansList.SetSecondaryTextColor(tcell.NewRGBColor(140, 140, 170))
	plansList.SetSelectedTextColor(ColorTitle)
	plansList.SetSelectedBackgroundColor(ColorButton)
	plansList.SetHighlightFullLine(true)

	detail := tview.NewTextView()
	detail.SetBorder(true)
	detail.SetBorderColor(ColorBorder)
	detail.SetBackgroundColor(ColorBg)
	detail.SetTitle(" Features ")
	detail.SetTitleColor(ColorTitle)
	detail.SetTextColor(ColorFg)
	detail.SetDynamicColors(true)

	statusBar := tview.NewTextView()
	statusBar.SetBackgroundColor(ColorButton)
	statusBar.SetTextColor(ColorTitle)
	statusBar.SetTextAlign(tview.AlignCenter)
	statusBar.SetText(" Enter:Subscribe | F5:Refresh | Esc:Back ")

	var plans []models.SubscriptionPlan

	showDetail := func(index int) {
		if index < 0 || index >= len(plans) {
			detail.SetText("")
			return
		}
		p := plans[index]
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("[gold]%s[-] — %s\n\n", p.Name, formatPrice(p.Price)))
		for _, f := range p.Features {
			sb.WriteString(fmt.Sprintf("  ✦ %s\n", f))
		}
		detail.SetText(sb.String())
	}

	plansList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		showDetail(index)
	})
	plansList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index >= 0 && index < len(plans) {
			a.showPaymentDialog(plans[index])
		}
	})

	load := func() {
		go func() {
			fetched, err := a.api.Plans(a.ctx)
			a.app.QueueUpdateDraw(func() {
				if err != nil {
					a.handleError(err, "Failed to load subscription plans.")
					return
				}
				plans = fetched
				plansList.Clear()
				current := models.TierFree
				if user := a.session.User(); user != nil {
					current = user.SubscriptionTier
				}
				for _, p := range plans {
					label := fmt.Sprintf("%s — %s", p.Name, formatPrice(p.Price))
					if p.Tier == current {
						label += "  [gold](current)[-]"
					}
					plansList.AddItem(label, "", 0, nil)
				}
				showDetail(plansList.GetCurrentItem())
			})
		}()
	}

	body := tview.NewFlex().
		AddItem(plansList, 0, 1, true).
		AddItem(detail, 0, 1, false)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(body, 0, 1, true).
		AddItem(statusBar, 1, 0, false)
	layout.SetBackgroundColor(ColorBg)

	layout.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF5:
			load()
			return nil
		case tcell.KeyEsc:
			a.navigate(RouteChat)
			return nil
		}
		return event
	})

	a.switchTo(RouteSubscription, layout)
	a.app.SetFocus(plansList)
	load()
}

// showPaymentDialog collects payment method and duration, submits the
// subscription and refreshes the cached profile on success.
func (a *App) showPaymentDialog(plan models.SubscriptionPlan) {
	if plan.Tier == models.TierFree {
		a.showInfoModal("You are already on the free plan.", nil)
		return
	}

	form := newForm(fmt.Sprintf(" Subscribe to %s ", plan.Name))

	statusLabel := tview.NewTextView()
	statusLabel.SetBackgroundColor(ColorBg)
	statusLabel.SetTextColor(tcell.ColorRed)

	method := paymentMethods[0]
	form.AddDropDown("Payment method: ", paymentMethods, 0, func(option string, index int) {
		method = option
	})

	durationField := tview.NewInputField()
	durationField.SetLabel("Months: ")
	durationField.SetFieldWidth(4)
	durationField.SetText("1")
	durationField.SetAcceptanceFunc(tview.InputFieldInteger)
	form.AddFormItem(durationField)

	form.AddButton("Pay", func() {
		months, err := strconv.Atoi(durationField.GetText())
		if err != nil || months < 1 {
			statusLabel.SetText("Duration must be at least 1 month")
			return
		}

		statusLabel.SetText("Processing payment...")
		go func() {
			msg, err := a.api.Subscribe(a.ctx, plan.Tier, method, months)
			if err == nil {
				// Pick up the new tier and expiry.
				_ = a.session.Refresh(a.ctx)
			}
			a.app.QueueUpdateDraw(func() {
				if err != nil {
					statusLabel.SetText(api.Message(err, "Payment failed. Please try again."))
					return
				}
				a.pages.RemovePage("dialog")
				if msg == "" {
					msg = "Subscription updated!"
				}
				a.showInfoModal(msg, func() {
					a.navigate(RouteProfile)
				})
			})
		}()
	})

	form.AddButton("Cancel", func() {
		a.pages.RemovePage("dialog")
	})

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(statusLabel, 1, 0, false)

	a.pages.AddPage("dialog", center(flex, 52, 11), true, true)
	a.app.SetFocus(form)
}
