package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/zafahi/tralashop/config"
	"github.com/zafahi/tralashop/internal/adapter/storage"
	"github.com/zafahi/tralashop/internal/adapter/termio"
	"github.com/zafahi/tralashop/internal/adapter/view"
	"github.com/zafahi/tralashop/internal/core/domain"
	"github.com/zafahi/tralashop/internal/core/port"
	"github.com/zafahi/tralashop/internal/core/service"
	"github.com/zafahi/tralashop/pkg/debounce"
	"github.com/zafahi/tralashop/pkg/webfmt"
)

type services struct {
	catalog  *service.Catalog
	cart     *service.Cart
	auth     *service.Auth
	notifier *service.Notifier
	checkout *service.Checkout
	prefs    *service.Preferences
}

type views struct {
	grid        *view.ProductGrid
	sidebar     *view.CartSidebar
	login       *view.LoginForm
	quick       *view.QuickView
	checkout    *view.CheckoutOverlay
	suggestions *view.Suggestions
}

// App owns the whole composition. Construction is leaf-first and explicit:
// store, then services, then views wired to service-backed handlers. Nothing
// is looked up ambiently and nothing polls for its dependencies.
type App struct {
	cfg        config.Config
	surface    *termio.Surface
	store      port.KeyValueStore
	closeStore func()

	services services
	views    views

	searchDebounce *debounce.Debouncer

	mu          sync.Mutex
	loadingMore bool
}

func New(cfg config.Config, out io.Writer) *App {
	app := &App{cfg: cfg, surface: termio.New(out)}

	app.initLogger()
	app.initStore()
	app.initServices()
	app.initViews()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStore() {
	const op = "App.initStore"
	log := slog.With("op", op, "backend", app.cfg.Store.Backend)

	switch app.cfg.Store.Backend {
	case "sqlite":
		s, err := storage.NewSQLiteStore(app.cfg.Store.Path)
		if err != nil {
			log.Error("falling back to in-memory store", "err", err)
			app.store = storage.NewMemoryStore()
			return
		}
		app.store = s
		app.closeStore = s.Close
	case "memory":
		app.store = storage.NewMemoryStore()
	default:
		app.store = storage.NewFileStore(app.cfg.Store.Path)
	}
}

func (app *App) initServices() {
	keys := app.cfg.Keys

	app.services.catalog = service.NewCatalog()
	app.services.cart = service.NewCart(app.store, keys.Cart)
	app.services.auth = service.NewAuth(app.store, keys.Users, keys.Session)
	app.services.notifier = service.NewNotifier(
		view.NewToast(app.surface), app.cfg.UI.ToastDuration,
	)
	app.services.checkout = service.NewCheckout(app.services.cart, app.store, keys.Orders)
	app.services.prefs = service.NewPreferences(app.store, keys.Theme)

	app.searchDebounce = debounce.New(app.cfg.UI.DebounceDelay)
}

func (app *App) initViews() {
	s := app.surface

	app.views.grid = view.NewProductGrid(s)
	app.views.sidebar = view.NewCartSidebar(s, app.services.cart, app.services.notifier)
	app.views.login = view.NewLoginForm(s, app.services.auth, app.services.notifier)
	app.views.quick = view.NewQuickView(s)
	app.views.checkout = view.NewCheckoutOverlay(s)
	app.views.suggestions = view.NewSuggestions(s)

	app.views.grid.AddToCart = app.AddToCart
	app.views.grid.QuickView = app.ShowQuickView
	app.views.quick.AddToCart = app.AddToCart
	app.views.suggestions.Picked = app.pickSuggestion
	app.views.sidebar.Checkout = app.views.checkout.Show
	app.views.checkout.Complete = app.completeOrder
	app.views.login.LoggedIn = func(u domain.SessionUser) {
		app.updateUserMenu()
	}
}

// Start seeds the catalog and paints the initial state. The loading screen
// goes up immediately and is dismissed after the configured delay.
func (app *App) Start() {
	app.surface.AddClass("loading-screen", "active")
	time.AfterFunc(app.cfg.UI.LoadingDelay, func() {
		app.surface.RemoveClass("loading-screen", "active")
	})

	app.services.catalog.Initialize()
	app.applyTheme(app.services.prefs.Theme())
	app.updateUserMenu()
	app.renderProducts(nil)

	slog.Info("application is running")
}

func (app *App) Close() {
	slog.Info("application is closing...")

	app.searchDebounce.Stop()
	if app.closeStore != nil {
		app.closeStore()
	}

	slog.Info("application is closed")
}

// renderProducts paints the given products, or the catalog's remembered
// filtered list when nil.
func (app *App) renderProducts(products []domain.Product) {
	if products == nil {
		products = app.services.catalog.Filtered()
	}
	app.views.grid.Render(products)
}

// Search debounces keystrokes: only the last query inside the window fires.
// An empty query clears suggestions and repaints the filtered list;
// a single character changes nothing at all.
func (app *App) Search(query string) {
	app.searchDebounce.Do(func() {
		if len(query) == 0 {
			app.views.suggestions.Clear()
			app.renderProducts(nil)
			return
		}
		if len(query) < 2 {
			return
		}

		found := app.services.catalog.Search(query)
		app.views.suggestions.Render(found)
		app.renderProducts(found)
	})
}

func (app *App) Filter(criterion string) {
	if !app.cfg.Features.Filters {
		app.services.notifier.Info("Filters are disabled")
		return
	}
	app.services.catalog.Filter(criterion)
	app.renderProducts(nil)
}

// LoadMore simulates the original's network delay before appending cloned
// products. Re-entry while a load is pending is ignored.
func (app *App) LoadMore() {
	app.mu.Lock()
	if app.loadingMore {
		app.mu.Unlock()
		return
	}
	app.loadingMore = true
	app.mu.Unlock()

	time.AfterFunc(app.cfg.UI.LoadMoreDelay, func() {
		app.services.catalog.LoadMore(app.cfg.Pagination.LoadMoreCount)
		app.renderProducts(nil)

		app.mu.Lock()
		app.loadingMore = false
		app.mu.Unlock()
	})
}

func (app *App) AddToCart(productID int) {
	p, ok := app.services.catalog.ByID(productID)
	if !ok {
		return
	}

	if app.services.cart.Add(p, 1) {
		app.views.sidebar.Update()
		app.services.notifier.Success(p.Name + " added to cart!")
	}
}

func (app *App) ShowQuickView(productID int) {
	if p, ok := app.services.catalog.ByID(productID); ok {
		app.views.quick.Show(p)
	}
}

// CloseOverlays is the escape key: quick view first, then the sidebar.
func (app *App) CloseOverlays() {
	if app.views.quick.IsOpen() {
		app.views.quick.Close()
		return
	}
	if app.views.sidebar.IsOpen() {
		app.views.sidebar.Close()
	}
}

func (app *App) completeOrder() {
	order, err := app.services.checkout.Place()
	if err != nil {
		app.services.notifier.Error("Your cart is empty")
		return
	}

	app.views.sidebar.Update()
	app.views.sidebar.Close()
	app.services.notifier.Success(
		fmt.Sprintf("Order %s completed successfully! (Demo)", order.Reference))
}

func (app *App) pickSuggestion(productID int) {
	if p, ok := app.services.catalog.ByID(productID); ok {
		app.renderProducts([]domain.Product{p})
		app.views.suggestions.Clear()
	}
}

// ToggleTheme flips the persisted theme and mirrors it on the surface.
func (app *App) ToggleTheme() {
	app.applyTheme(app.services.prefs.Toggle())
}

func (app *App) applyTheme(theme string) {
	if theme == domain.ThemeDark {
		app.surface.AddClass("body", "dark-theme")
	} else {
		app.surface.RemoveClass("body", "dark-theme")
	}
}

// NewsletterSignup mirrors the original form: a syntactic email check and
// a toast either way. Nothing is stored, there is no backend to send to.
func (app *App) NewsletterSignup(email string) {
	if webfmt.IsValidEmail(email) {
		app.services.notifier.Success("Thank you for subscribing to our newsletter!")
		return
	}
	app.services.notifier.Error("Please enter a valid email address")
}

func (app *App) Logout() {
	res := app.services.auth.Logout()
	app.updateUserMenu()
	app.services.notifier.Success(res.Message)
}

func (app *App) updateUserMenu() {
	if u, ok := app.services.auth.CurrentUser(); ok {
		app.surface.SetText("user-menu", "Logged in as "+u.Name)
		return
	}
	app.surface.SetText("user-menu", "Login")
}
