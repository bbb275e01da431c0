// The admin dashboard app: order queue, status transitions and live
// stats, polling on a fixed interval.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"srinu_foods_client/internal/adminpanel"
	"srinu_foods_client/internal/api"
	"srinu_foods_client/internal/config"
	"srinu_foods_client/internal/render"
	"srinu_foods_client/internal/session"
)

func main() {
	config.Load()
	cfg := config.ClientFromEnv()

	client := api.New(cfg.BaseURL)
	sess := session.NewManager(client, session.NewTokenStore(cfg.StateDir))
	scanner := bufio.NewScanner(os.Stdin)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err := sess.Restore(ctx); err != nil {
		log.Println("⚠️  No valid session — please login")
	}

	// The staff check always runs against a fresh profile. Anything
	// less than a staff account sends the user back to login.
	for {
		if _, err := sess.RequireAdmin(ctx); err == nil {
			break
		}
		fmt.Print("Username: ")
		if !scanner.Scan() {
			return
		}
		username := strings.TrimSpace(scanner.Text())
		fmt.Print("Password: ")
		if !scanner.Scan() {
			return
		}
		password := strings.TrimSpace(scanner.Text())

		if _, err := sess.Login(ctx, username, password); err != nil {
			fmt.Println("»", err)
			continue
		}
		if _, err := sess.RequireAdmin(ctx); err != nil {
			fmt.Println("» Admin access required")
			continue
		}
		break
	}

	log.Println("✅ Admin session established")

	queue := adminpanel.NewQueue(client)
	poller := adminpanel.NewPoller(queue, cfg.PollInterval)
	go poller.Run(ctx)

	if err := queue.LoadStats(ctx); err != nil {
		log.Printf("❌ Error loading dashboard stats: %v", err)
	}
	if err := queue.LoadOrders(ctx, ""); err != nil {
		log.Printf("❌ Error loading orders: %v", err)
	}
	render.WriteStats(os.Stdout, render.Stats(queue.Stats()))
	fmt.Println("Commands: stats | orders [status] | status <id> <new> | logout | quit")

	for {
		fmt.Print("admin> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "stats":
			poller.SetOrdersActive(false)
			if err := queue.LoadStats(ctx); err != nil {
				fmt.Println("»", err)
				continue
			}
			render.WriteStats(os.Stdout, render.Stats(queue.Stats()))
		case "orders":
			poller.SetOrdersActive(true)
			filter := ""
			if len(fields) > 1 {
				filter = fields[1]
			}
			if err := queue.LoadOrders(ctx, filter); err != nil {
				fmt.Println("»", err)
				continue
			}
			render.WriteOrders(os.Stdout, render.Orders(queue.Orders()))
		case "status":
			if len(fields) != 3 {
				fmt.Println("» Usage: status <order-id> <new-status>")
				continue
			}
			if err := queue.SetOrderStatus(ctx, fields[1], fields[2]); err != nil {
				fmt.Println("»", err)
				continue
			}
			fmt.Println("» Order status updated to", strings.ReplaceAll(fields[2], "_", " "))
			render.WriteOrders(os.Stdout, render.Orders(queue.Orders()))
		case "logout":
			sess.Terminate()
			fmt.Println("» Logged out")
			return
		case "quit", "exit":
			return
		default:
			fmt.Println("» Unknown command:", fields[0])
		}
	}
}
