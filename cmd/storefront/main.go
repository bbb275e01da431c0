// The storefront app: menu browsing, cart, checkout and order history
// against the Srinu Foods API, driven from the terminal.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"srinu_foods_client/internal/api"
	"srinu_foods_client/internal/cart"
	"srinu_foods_client/internal/catalog"
	"srinu_foods_client/internal/config"
	"srinu_foods_client/internal/orders"
	"srinu_foods_client/internal/render"
	"srinu_foods_client/internal/session"
)

type app struct {
	cfg      config.Client
	session  *session.Manager
	catalog  *catalog.Browser
	cart     *cart.Synchronizer
	orders   *orders.Workflow
	scanner  *bufio.Scanner
	vegOnly  bool
	category string
}

func main() {
	config.Load()
	cfg := config.ClientFromEnv()

	client := api.New(cfg.BaseURL)
	sess := session.NewManager(client, session.NewTokenStore(cfg.StateDir))
	basket := cart.NewSynchronizer(client, sess)

	a := &app{
		cfg:     cfg,
		session: sess,
		catalog: catalog.NewBrowser(client),
		cart:    basket,
		orders:  orders.NewWorkflow(client, sess, basket),
		scanner: bufio.NewScanner(os.Stdin),
	}

	ctx := context.Background()

	if restored, err := sess.Restore(ctx); err != nil {
		log.Println("⚠️  Stored session rejected — please login again")
	} else if restored.LoggedIn() {
		log.Println("✅ Welcome back,", restored.User.DisplayName())
	}

	// Categories and menu load concurrently at startup; neither waits
	// for the other.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := a.catalog.LoadCategories(ctx); err != nil {
			log.Printf("❌ Error loading categories: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := a.catalog.LoadItems(ctx, catalog.Filter{}); err != nil {
			log.Printf("❌ Error loading menu items: %v", err)
		}
	}()
	wg.Wait()

	// Background cart refresh on a fixed cadence while logged in.
	go func() {
		ticker := time.NewTicker(cfg.PollInterval)
		defer ticker.Stop()
		for range ticker.C {
			if a.session.LoggedIn() {
				if err := a.cart.Reload(ctx); err != nil {
					log.Printf("❌ Error loading cart: %v", err)
				}
			}
		}
	}()

	render.WriteAuth(os.Stdout, render.Auth(sess.Current()))
	fmt.Println("Type 'help' for commands.")
	a.loop(ctx)
}

func (a *app) loop(ctx context.Context) {
	for {
		fmt.Print("> ")
		if !a.scanner.Scan() {
			return
		}
		fields := strings.Fields(a.scanner.Text())
		if len(fields) == 0 {
			continue
		}

		cmd, args := fields[0], fields[1:]
		switch cmd {
		case "help":
			a.help()
		case "menu":
			a.showMenu(ctx)
		case "search":
			a.search(ctx, strings.Join(args, " "))
		case "category":
			a.category = strings.Join(args, " ")
			a.refetch(ctx)
		case "veg":
			a.vegOnly = len(args) > 0 && args[0] == "on"
			a.refetch(ctx)
		case "login":
			a.login(ctx, args)
		case "register":
			a.register(ctx)
		case "profile":
			a.updateProfile(ctx)
		case "logout":
			a.session.Terminate()
			a.cart.Reset()
			toast("Logged out successfully")
		case "cart":
			a.showCart(ctx)
		case "add":
			a.add(ctx, args)
		case "qty":
			a.setQuantity(ctx, args)
		case "remove":
			a.remove(ctx, args)
		case "checkout":
			a.checkout(ctx)
		case "orders":
			a.myOrders(ctx)
		case "quit", "exit":
			return
		default:
			toast("Unknown command: " + cmd)
		}
	}
}

func (a *app) help() {
	fmt.Println(`menu                 show the menu (current filters apply)
search <text>        search by name or description
category <name>      filter by category ('' clears)
veg on|off           veg-only filter
login <user> <pass>  sign in
register             create an account
profile              update contact details
logout               sign out
cart                 show the cart
add <item> [qty]     add an item
qty <item> <n>       change quantity (0 removes)
remove <item>        remove an item
checkout             place the order
orders               order history
quit                 leave`)
}

func (a *app) refetch(ctx context.Context) {
	filter := catalog.Filter{Category: a.category, VegOnly: a.vegOnly}
	if err := a.catalog.LoadItems(ctx, filter); err != nil {
		toast(err.Error())
		return
	}
	render.WriteMenu(os.Stdout, render.Menu(a.catalog.Items()))
}

func (a *app) showMenu(ctx context.Context) {
	a.refetch(ctx)
}

func (a *app) search(ctx context.Context, query string) {
	filter := catalog.Filter{Search: query, Category: a.category, VegOnly: a.vegOnly}
	if err := a.catalog.LoadItems(ctx, filter); err != nil {
		toast(err.Error())
		return
	}
	render.WriteMenu(os.Stdout, render.Menu(a.catalog.Items()))
}

func (a *app) login(ctx context.Context, args []string) {
	if len(args) != 2 {
		toast("Usage: login <username> <password>")
		return
	}
	sess, err := a.session.Login(ctx, args[0], args[1])
	if err != nil {
		toast(err.Error())
		return
	}
	toast("Login successful!")
	render.WriteAuth(os.Stdout, render.Auth(sess))
	if err := a.cart.Reload(ctx); err != nil {
		log.Printf("❌ Error loading cart: %v", err)
	}
}

func (a *app) register(ctx context.Context) {
	input := session.RegisterInput{
		FirstName:       a.prompt("First name: "),
		LastName:        a.prompt("Last name: "),
		Username:        a.prompt("Username: "),
		Email:           a.prompt("Email: "),
		Phone:           a.prompt("Phone: "),
		Address:         a.prompt("Address: "),
		Password:        a.prompt("Password: "),
		ConfirmPassword: a.prompt("Confirm password: "),
	}
	sess, err := a.session.Register(ctx, input)
	if err != nil {
		toast(err.Error())
		return
	}
	toast("Registration successful! Welcome to Srinu Foods!")
	render.WriteAuth(os.Stdout, render.Auth(sess))
}

// updateProfile prompts for the editable fields; an empty answer keeps
// the current value.
func (a *app) updateProfile(ctx context.Context) {
	var update session.ProfileUpdate
	if v := a.prompt("Phone (blank keeps current): "); v != "" {
		update.Phone = &v
	}
	if v := a.prompt("Address (blank keeps current): "); v != "" {
		update.Address = &v
	}
	if v := a.prompt("Email (blank keeps current): "); v != "" {
		update.Email = &v
	}

	if _, err := a.session.UpdateProfile(ctx, update); err != nil {
		toast(err.Error())
		return
	}
	toast("Profile updated successfully")
}

func (a *app) showCart(ctx context.Context) {
	if err := a.cart.Reload(ctx); err != nil {
		toast(err.Error())
		return
	}
	render.WriteCart(os.Stdout, render.Cart(a.cart.State()))
}

func (a *app) add(ctx context.Context, args []string) {
	if len(args) == 0 {
		toast("Usage: add <item> [qty]")
		return
	}
	qty := 1
	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			toast("Quantity must be a number")
			return
		}
		qty = parsed
	}
	if err := a.cart.Add(ctx, args[0], qty); err != nil {
		toast(err.Error())
		return
	}
	toast("Item added to cart!")
}

func (a *app) setQuantity(ctx context.Context, args []string) {
	if len(args) != 2 {
		toast("Usage: qty <item> <n>")
		return
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		toast("Quantity must be a number")
		return
	}
	if err := a.cart.SetQuantity(ctx, args[0], qty); err != nil {
		toast(err.Error())
		return
	}
	render.WriteCart(os.Stdout, render.Cart(a.cart.State()))
}

func (a *app) remove(ctx context.Context, args []string) {
	if len(args) != 1 {
		toast("Usage: remove <item>")
		return
	}
	if err := a.cart.Remove(ctx, args[0]); err != nil {
		toast(err.Error())
		return
	}
	toast("Item removed from cart")
}

func (a *app) checkout(ctx context.Context) {
	info := orders.DeliveryInfo{
		Address:             a.prompt("Delivery address: "),
		Phone:               a.prompt("Phone: "),
		PaymentMethod:       a.prompt("Payment method (cod/card/upi): "),
		SpecialInstructions: a.prompt("Special instructions: "),
	}

	confirmation, err := a.orders.Checkout(ctx, info)
	if err != nil {
		toast(err.Error())
		return
	}

	toast("Order placed successfully!")
	fmt.Printf("Order #%s is being prepared! Total %s\n",
		confirmation.OrderNumber, fmt.Sprintf("₹%.2f", confirmation.TotalAmount))

	if info.PaymentMethod == "upi" {
		a.writePaymentQR(confirmation.OrderNumber, confirmation.TotalAmount)
	}
}

// writePaymentQR drops a scannable UPI payment code for the order next
// to the token file.
func (a *app) writePaymentQR(orderNumber string, amount float64) {
	payload := fmt.Sprintf("upi://pay?pa=pay@srinufoods&pn=Srinu%%20Foods&tn=%s&am=%.2f&cu=INR",
		orderNumber, amount)
	path := filepath.Join(a.cfg.StateDir, orderNumber+"-upi.png")
	if err := qrcode.WriteFile(payload, qrcode.Medium, 256, path); err != nil {
		log.Printf("❌ Could not write payment QR: %v", err)
		return
	}
	fmt.Println("Scan to pay:", path)
}

func (a *app) myOrders(ctx context.Context) {
	list, err := a.orders.ListMine(ctx)
	if err != nil {
		toast(err.Error())
		return
	}
	render.WriteOrders(os.Stdout, render.Orders(list))
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	if !a.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(a.scanner.Text())
}

func toast(message string) {
	fmt.Println("»", message)
}
