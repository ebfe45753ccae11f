package ui

import "github.com/rivo/tview"

// Routes mirror the screens of the application. Page names double as
// navigation targets.
const (
	RouteHome         = "home"
	RouteLogin        = "login"
	RouteRegister     = "register"
	RouteVerifyEmail  = "verify-email"
	RouteChat         = "chat"
	RouteSubscription = "subscription"
	RouteProfile      = "profile"
	RouteNotFound     = "not-found"

	routeLoading = "loading"
)

var knownRoutes = map[string]bool{
	RouteHome:         true,
	RouteLogin:        true,
	RouteRegister:     true,
	RouteVerifyEmail:  true,
	RouteChat:         true,
	RouteSubscription: true,
	RouteProfile:      true,
	RouteNotFound:     true,
}

var protectedRoutes = map[string]bool{
	RouteChat:         true,
	RouteSubscription: true,
	RouteProfile:      true,
}

// Guard decides which screen a navigation attempt actually lands on. It is
// a pure function of session state and the requested route: unknown routes
// go to not-found; protected routes block on the loading screen until the
// initial session load finishes, then redirect to login when the visitor
// is not authenticated.
func Guard(authenticated, loading bool, route string) string {
	if !knownRoutes[route] {
		return RouteNotFound
	}
	if protectedRoutes[route] {
		if loading {
			return routeLoading
		}
		if !authenticated {
			return RouteLogin
		}
	}
	return route
}

// navigate switches to the given route, honoring the guard. Screens are
// rebuilt on entry so they always render current state.
func (a *App) navigate(route string) {
	target := Guard(a.session.IsAuthenticated(), a.session.Loading(), route)

	if target == routeLoading {
		a.mu.Lock()
		a.pending = route
		a.mu.Unlock()
		a.showLoadingPage()
		return
	}

	a.mu.Lock()
	a.pending = ""
	a.mu.Unlock()

	a.log.Debug().Str("route", route).Str("target", target).Msg("navigate")

	switch target {
	case RouteHome:
		a.showHomePage()
	case RouteLogin:
		a.showLoginPage("")
	case RouteRegister:
		a.showRegisterPage()
	case RouteVerifyEmail:
		a.showVerifyEmailPage()
	case RouteChat:
		a.showChatPage(0)
	case RouteSubscription:
		a.showSubscriptionPage()
	case RouteProfile:
		a.showProfilePage()
	default:
		a.showNotFoundPage()
	}
}

func (a *App) showLoadingPage() {
	text := tview.NewTextView()
	text.SetBackgroundColor(ColorBg)
	text.SetTextColor(ColorFg)
	text.SetTextAlign(tview.AlignCenter)
	text.SetText("\n\n\n✦  Consulting the stars...  ✦")

	a.switchTo(routeLoading, text)
}

// switchTo replaces the current screen page with prim under name.
func (a *App) switchTo(name string, prim tview.Primitive) {
	for _, page := range []string{
		RouteHome, RouteLogin, RouteRegister, RouteVerifyEmail,
		RouteChat, RouteSubscription, RouteProfile, RouteNotFound, routeLoading,
	} {
		if page != name {
			a.pages.RemovePage(page)
		}
	}
	a.pages.AddPage(name, prim, true, true)
	a.pages.SwitchToPage(name)
}
