package app_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/zafahi/tralashop/config"
	"github.com/zafahi/tralashop/internal/app"
)

// syncBuffer guards the output buffer: LoadMore and Search repaint from
// timer goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testConfig() config.Config {
	var cfg config.Config
	cfg.Store.Backend = "memory"
	cfg.Keys.Cart = "cart"
	cfg.Keys.Users = "users"
	cfg.Keys.Session = "session"
	cfg.Keys.Theme = "theme"
	cfg.Keys.Orders = "orders"
	cfg.UI.LoadingDelay = 5 * time.Millisecond
	cfg.UI.ToastDuration = time.Minute
	cfg.UI.DebounceDelay = 5 * time.Millisecond
	cfg.UI.LoadMoreDelay = 5 * time.Millisecond
	cfg.Pagination.LoadMoreCount = 4
	cfg.Features.Filters = true
	return cfg
}

func newApp(t *testing.T) (*app.App, *syncBuffer) {
	t.Helper()

	out := &syncBuffer{}
	a := app.New(testConfig(), out)
	a.Start()
	t.Cleanup(a.Close)
	return a, out
}

func TestApp_StartPaintsCatalog(t *testing.T) {
	_, out := newApp(t)

	assert.Contains(t, out.String(), "[products-grid]")
	assert.Contains(t, out.String(), "AMD Ryzen 9 7950X")
	assert.Contains(t, out.String(), "[user-menu] Login")
}

func TestApp_AddToCart(t *testing.T) {
	a, out := newApp(t)

	a.AddToCart(1)

	assert.Contains(t, out.String(), "[cart-count] 1")
	assert.Contains(t, out.String(), "added to cart!")

	a.AddToCart(99999)
	assert.NotContains(t, out.String(), "[cart-count] 2",
		"unknown product id leaves the cart alone")
}

func TestApp_SearchDebounced(t *testing.T) {
	a, out := newApp(t)

	a.Search("rtx")

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "[search-suggestions]")
	}, time.Second, 5*time.Millisecond)
	assert.Contains(t, out.String(), "NVIDIA RTX 4090")
}

func TestApp_LoadMoreAppendsClones(t *testing.T) {
	a, out := newApp(t)

	a.LoadMore()

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "(Extended)")
	}, time.Second, 5*time.Millisecond)
}

// The load-more timer completes on its own goroutine while the command loop
// keeps dispatching; run with the race detector.
func TestApp_LoadMoreInterleavedWithDispatch(t *testing.T) {
	a, out := newApp(t)

	for i := 0; i < 10; i++ {
		a.LoadMore()
		a.Filter("all")
		a.AddToCart(1)
		a.Search("rtx")
	}

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "(Extended)")
	}, time.Second, 5*time.Millisecond)
}

func TestApp_StartDismissesLoadingScreen(t *testing.T) {
	_, out := newApp(t)

	assert.Contains(t, out.String(), "[loading-screen] +active")
	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "[loading-screen] -active")
	}, time.Second, 5*time.Millisecond)
}

func TestApp_ToggleTheme(t *testing.T) {
	a, out := newApp(t)

	a.ToggleTheme()
	assert.Contains(t, out.String(), "[body] +dark-theme")

	a.ToggleTheme()
	assert.Contains(t, out.String(), "[body] -dark-theme")
}

func TestApp_NewsletterSignup(t *testing.T) {
	a, out := newApp(t)

	a.NewsletterSignup("not-an-email")
	assert.Contains(t, out.String(), "Please enter a valid email address")

	a.NewsletterSignup("neo@example.com")
	assert.Contains(t, out.String(), "Thank you for subscribing to our newsletter!")
}

func TestApp_RunCommandLoop(t *testing.T) {
	a, surface := newApp(t)

	in := strings.NewReader("add 1\nwhoami\nregister neo@example.com secret1 Neo\nwhoami\ncheckout\nconfirm\norders\nbogus\nquit\n")
	out := &syncBuffer{}

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Run(context.Background(), in, out)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("command loop did not terminate on quit")
	}

	text := out.String()
	assert.Contains(t, text, "commands:")
	assert.Contains(t, text, "not logged in")
	assert.Contains(t, text, "Neo <neo@example.com>")
	assert.Contains(t, text, "1 line(s)")
	assert.Contains(t, text, `unknown command "bogus"`)

	require.Contains(t, surface.String(), "Order ")
	assert.Contains(t, surface.String(), "completed successfully! (Demo)")
}

// The reader goroutine must not stay parked on the lines channel after the
// loop returns; it drains on the next input line.
func TestApp_RunReaderUnblocksAfterCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	a, _ := newApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	r, w := io.Pipe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Run(ctx, r, &syncBuffer{})
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("command loop did not stop on cancellation")
	}

	// the reader is still inside Scan; the next line lets it observe shutdown
	_, err := io.WriteString(w, "products\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())
}

func TestApp_RunStopsOnContextCancel(t *testing.T) {
	a, _ := newApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	r, w := io.Pipe()
	defer w.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Run(ctx, r, &syncBuffer{})
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("command loop did not stop on cancellation")
	}
}
