package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

const helpText = `commands:
  products                 show the current product list
  filter <criterion>       all | new | sale | trending | <category>
  search <query>           debounced substring search
  more                     load more products
  view <id>                quick view overlay
  add <id>                 add product to cart
  cart                     toggle the cart sidebar
  plus <id> | minus <id>   change quantity
  qty <id> <n>             set quantity (0 removes)
  remove <id>              remove cart entry
  checkout                 open the checkout overlay
  confirm                  complete the demo order
  register <email> <password> <name...>
  login <email> <password>
  logout | whoami
  orders                   show order history
  theme                    toggle light/dark
  subscribe <email>        newsletter signup
  quit`

// Run drives the app from a line-oriented reader until EOF or context
// cancellation. Each line is one user interaction. After cancellation the
// reader goroutine exits on its next line or EOF; until then it stays
// blocked in the read, which is fine on the process-exit path.
func (app *App) Run(ctx context.Context, in io.Reader, out io.Writer) {
	const op = "App.Run"

	done := make(chan struct{})
	defer close(done)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			slog.Error("failed to read input", "op", op, "err", err)
		}
	}()

	fmt.Fprintln(out, helpText)
	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if !app.dispatch(strings.TrimSpace(line), out) {
				return
			}
		}
	}
}

// dispatch handles one command line; false ends the loop.
func (app *App) dispatch(line string, out io.Writer) bool {
	if line == "" {
		return true
	}

	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "help":
		fmt.Fprintln(out, helpText)
	case "products":
		app.renderProducts(nil)
	case "filter":
		app.Filter(rest)
	case "search":
		app.Search(rest)
	case "more":
		app.LoadMore()
	case "view":
		withID(rest, app.ShowQuickView)
	case "add":
		withID(rest, app.AddToCart)
	case "cart":
		app.views.sidebar.Toggle()
	case "plus":
		withID(rest, app.views.sidebar.IncreaseQuantity)
	case "minus":
		withID(rest, app.views.sidebar.DecreaseQuantity)
	case "qty":
		app.setQuantity(rest)
	case "remove":
		withID(rest, app.views.sidebar.RemoveItem)
	case "checkout":
		app.views.sidebar.HandleCheckout()
	case "confirm":
		app.views.checkout.ConfirmOrder()
	case "register":
		app.register(rest)
	case "login":
		app.login(rest)
	case "logout":
		app.Logout()
	case "whoami":
		app.printUser(out)
	case "orders":
		app.printOrders(out)
	case "theme":
		app.ToggleTheme()
	case "subscribe":
		app.NewsletterSignup(rest)
	case "esc":
		app.CloseOverlays()
	case "quit", "exit":
		return false
	default:
		fmt.Fprintf(out, "unknown command %q, try help\n", cmd)
	}
	return true
}

func (app *App) setQuantity(rest string) {
	fields := strings.Fields(rest)
	if len(fields) != 2 {
		return
	}
	id, err1 := strconv.Atoi(fields[0])
	qty, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return
	}
	if app.services.cart.SetQuantity(id, qty) {
		app.views.sidebar.Update()
	}
}

func (app *App) register(rest string) {
	fields := strings.SplitN(rest, " ", 3)
	var email, password, name string
	if len(fields) > 0 {
		email = fields[0]
	}
	if len(fields) > 1 {
		password = fields[1]
	}
	if len(fields) > 2 {
		name = fields[2]
	}
	app.views.login.SwitchMode(true)
	app.views.login.Submit(email, password, name)
}

func (app *App) login(rest string) {
	fields := strings.Fields(rest)
	var email, password string
	if len(fields) > 0 {
		email = fields[0]
	}
	if len(fields) > 1 {
		password = fields[1]
	}
	app.views.login.SwitchMode(false)
	app.views.login.Submit(email, password, "")
}

func (app *App) printUser(out io.Writer) {
	if u, ok := app.services.auth.CurrentUser(); ok {
		fmt.Fprintf(out, "%s <%s>\n", u.Name, u.Email)
		return
	}
	fmt.Fprintln(out, "not logged in")
}

func (app *App) printOrders(out io.Writer) {
	orders := app.services.checkout.Orders()
	if len(orders) == 0 {
		fmt.Fprintln(out, "no orders yet")
		return
	}
	for _, o := range orders {
		fmt.Fprintf(out, "%s  %s  %d line(s)  total %.2f\n",
			o.PlacedAt.Format("2006-01-02 15:04:05"), o.Reference, len(o.Lines), o.Total)
	}
}

func withID(arg string, fn func(int)) {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		return
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return
	}
	fn(id)
}
