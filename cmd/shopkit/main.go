package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/parentsfood/shopkit/internal"
	"github.com/parentsfood/shopkit/internal/api"
	"github.com/parentsfood/shopkit/internal/cart"
	"github.com/parentsfood/shopkit/internal/checkout"
	"github.com/parentsfood/shopkit/internal/domain"
	"github.com/parentsfood/shopkit/internal/orderedit"
	"github.com/parentsfood/shopkit/internal/storage"
	"github.com/parentsfood/shopkit/internal/telemetry"
)

// authTokenKey is the durable-storage key the bearer token lives under.
const authTokenKey = "auth-token"

const usage = `shopkit - storefront and back-office client

Usage:
  shopkit products                      list products
  shopkit product <id>                  show one product
  shopkit cart show                     show the cart
  shopkit cart add <product-id> [qty]   add a product to the cart
  shopkit cart rm <product-id>          remove a cart line
  shopkit cart clear                    empty the cart
  shopkit checkout -name N -phone P -address A
                                        place a cash-on-delivery order
  shopkit track <invoice-id>            track an order by invoice id
  shopkit login -email E -password P    authenticate for back-office commands
  shopkit orders                        list orders (back office)
  shopkit order <id>                    show an order (back office)
  shopkit order <id> -status <status>   quick status update
  shopkit order <id> -courier <name>    hand the order to pathao/steadfast
  shopkit settings                      show store settings
`

type app struct {
	client  *api.Client
	cart    *cart.Store
	storage storage.Storage
	logger  zerolog.Logger
	metrics *telemetry.Metrics
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", domain.ErrorMessage(err))
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logger := internal.NewLogger(os.Stderr, cfg.Env, cfg.LogLevel)

	metrics := telemetry.NewMetrics(prometheus.DefaultRegisterer, cfg.Telemetry.Namespace)
	telemetry.Serve(cfg.Telemetry.Addr, logger)

	store, err := storage.NewLocalStorage(cfg.StateDir)
	if err != nil {
		return fmt.Errorf("state storage initialization failed: %w", err)
	}

	client := api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, logger, metrics)

	if data, err := store.Get(authTokenKey); err == nil {
		client.SetToken(strings.TrimSpace(string(data)))
	}

	a := &app{
		client:  client,
		cart:    cart.NewStore(store, logger, metrics),
		storage: store,
		logger:  logger,
		metrics: metrics,
	}

	if len(args) == 0 {
		fmt.Print(usage)
		return nil
	}

	ctx := context.Background()

	switch args[0] {
	case "products":
		return a.listProducts(ctx)
	case "product":
		if len(args) < 2 {
			return domain.Invalid("cli", "product requires an id")
		}
		return a.showProduct(ctx, args[1])
	case "cart":
		return a.cartCommand(ctx, args[1:])
	case "checkout":
		return a.checkoutCommand(ctx, args[1:])
	case "track":
		if len(args) < 2 {
			return domain.Invalid("cli", "track requires an invoice id")
		}
		return a.trackOrder(ctx, args[1])
	case "login":
		return a.loginCommand(ctx, args[1:])
	case "orders":
		return a.listOrders(ctx)
	case "order":
		return a.orderCommand(ctx, args[1:])
	case "settings":
		return a.showSettings(ctx)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		return domain.Errorf(domain.EINVALID, "cli", "unknown command: %s", args[0])
	}
}

func (a *app) listProducts(ctx context.Context) error {
	products, err := a.client.ListProducts(ctx)
	if err != nil {
		return err
	}

	for _, p := range products {
		price := fmt.Sprintf("৳%g", p.UnitPrice())
		if p.DiscountPrice > 0 {
			price = fmt.Sprintf("৳%g (was ৳%g)", p.DiscountPrice, p.Price)
		}
		fmt.Printf("%-26s %-30s %-22s stock %d\n", p.ID, p.Name, price, p.Stock)
	}
	return nil
}

func (a *app) showProduct(ctx context.Context, id string) error {
	p, err := a.client.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", p.Name)
	fmt.Printf("  price:    ৳%g\n", p.UnitPrice())
	if p.DiscountPrice > 0 {
		fmt.Printf("  regular:  ৳%g\n", p.Price)
	}
	fmt.Printf("  stock:    %d\n", p.Stock)
	if p.Description != "" {
		fmt.Printf("  about:    %s\n", p.Description)
	}
	return nil
}

func (a *app) cartCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"show"}
	}

	switch args[0] {
	case "show":
		lines := a.cart.Lines()
		if len(lines) == 0 {
			fmt.Println("Cart is empty.")
			return nil
		}
		for _, line := range lines {
			fmt.Printf("%-26s %-30s x%-4d ৳%g\n", line.ProductID, line.Name, line.Quantity, line.LineTotal())
		}
		fmt.Printf("Total: ৳%g\n", a.cart.Total())
		return nil

	case "add":
		if len(args) < 2 {
			return domain.Invalid("cli", "cart add requires a product id")
		}
		qty := 1
		if len(args) > 2 {
			n, err := strconv.Atoi(args[2])
			if err != nil || n < 1 {
				return domain.Invalid("cli", "quantity must be a positive integer")
			}
			qty = n
		}
		p, err := a.client.GetProduct(ctx, args[1])
		if err != nil {
			return err
		}
		a.cart.Add(*p, qty)
		fmt.Printf("Added %s x%d. Cart total: ৳%g\n", p.Name, qty, a.cart.Total())
		return nil

	case "rm":
		if len(args) < 2 {
			return domain.Invalid("cli", "cart rm requires a product id")
		}
		a.cart.Remove(args[1])
		fmt.Printf("Removed. Cart total: ৳%g\n", a.cart.Total())
		return nil

	case "clear":
		a.cart.Clear()
		fmt.Println("Cart cleared.")
		return nil

	default:
		return domain.Errorf(domain.EINVALID, "cli", "unknown cart command: %s", args[0])
	}
}

func (a *app) checkoutCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	name := fs.String("name", "", "full name")
	phone := fs.String("phone", "", "11-digit phone number")
	address := fs.String("address", "", "full delivery address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc := checkout.NewService(a.client, a.cart, a.logger, a.metrics)
	order, err := svc.PlaceOrder(ctx, checkout.CustomerInput{
		Name:    *name,
		Phone:   *phone,
		Address: *address,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Order placed! Invoice: %s\nTotal: ৳%g\n", order.InvoiceID, order.TotalAmount)
	return nil
}

func (a *app) trackOrder(ctx context.Context, invoiceID string) error {
	order, err := a.client.GetOrderByInvoice(ctx, invoiceID)
	if err != nil {
		return err
	}
	printOrder(*order)
	return nil
}

func (a *app) loginCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.client.Login(ctx, *email, *password)
	if err != nil {
		return err
	}

	if err := a.storage.Put(authTokenKey, []byte(result.Token)); err != nil {
		a.logger.Warn().Err(err).Msg("could not persist auth token")
	}

	fmt.Printf("Logged in as %s\n", result.User.Email)
	return nil
}

func (a *app) listOrders(ctx context.Context) error {
	orders, err := a.client.ListOrders(ctx)
	if err != nil {
		return err
	}

	for _, o := range orders {
		fmt.Printf("%-26s %-14s %-20s %-12s ৳%g\n", o.ID, o.InvoiceID, o.Customer.Name, o.Status, o.TotalAmount)
	}
	return nil
}

func (a *app) orderCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return domain.Invalid("cli", "order requires an id")
	}
	id := args[0]

	fs := flag.NewFlagSet("order", flag.ContinueOnError)
	status := fs.String("status", "", "set order status")
	courier := fs.String("courier", "", "send order to courier (pathao or steadfast)")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	order, err := a.client.GetOrder(ctx, id)
	if err != nil {
		return err
	}

	if *status != "" {
		session := orderedit.New(a.client, *order, a.logger, a.metrics)
		if err := session.UpdateStatus(ctx, *status); err != nil {
			return err
		}
		fmt.Printf("Status updated to %s\n", *status)
		return nil
	}

	if *courier != "" {
		trackingCode, err := a.client.SendToCourier(ctx, *courier, id)
		if err != nil {
			return err
		}
		fmt.Printf("Sent to %s. Tracking code: %s\n", *courier, trackingCode)
		return nil
	}

	printOrder(*order)
	return nil
}

func (a *app) showSettings(ctx context.Context) error {
	settings, err := a.client.GetSettings(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Site:          %s\n", settings.SiteName)
	fmt.Printf("Support phone: %s\n", settings.SupportPhone)
	fmt.Printf("Flat shipping: ৳%g\n", settings.ShippingCost())
	return nil
}

func printOrder(o domain.Order) {
	fmt.Printf("Invoice %s  [%s]\n", o.InvoiceID, o.Status)
	fmt.Printf("  %s, %s\n  %s\n", o.Customer.Name, o.Customer.Phone, o.Customer.Address)
	for _, item := range o.Items {
		fmt.Printf("  %-30s x%-4d ৳%g\n", item.Name, item.Quantity, item.LineTotal())
	}
	fmt.Printf("  Subtotal: ৳%g  Shipping: ৳%g  Total: ৳%g\n", o.SubTotal, o.ShippingCost, o.TotalAmount)
	if o.TrackingCode != "" {
		fmt.Printf("  Shipped via %s, tracking %s\n", o.Courier, o.TrackingCode)
	}
}
