// Команда storefront прогоняет сценарий покупателя против работающего
// API магазина: каталог, избранное, корзина, оформление, имитация
// доставки и диалог с клиентским ботом.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/dongbei-mall/internal/api"
	"github.com/vladislavdragonenkov/dongbei-mall/internal/chat"
	"github.com/vladislavdragonenkov/dongbei-mall/internal/prefs"
	"github.com/vladislavdragonenkov/dongbei-mall/internal/storefront"
)

const sessionTimeout = 30 * time.Second

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.WarnLevel)

	var (
		baseURL   string
		prefsPath string
	)
	flag.StringVar(&baseURL, "api-base-url", "", "mall API base URL (fallback: MALL_API_BASE_URL, default http://localhost:8000)")
	flag.StringVar(&prefsPath, "prefs", "", "path to the local prefs file (fallback: MALL_PREFS_PATH)")
	flag.Parse()

	if baseURL == "" {
		baseURL = strings.TrimSpace(os.Getenv("MALL_API_BASE_URL"))
	}
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	if prefsPath == "" {
		prefsPath = strings.TrimSpace(os.Getenv("MALL_PREFS_PATH"))
	}
	if prefsPath == "" {
		prefsPath = filepath.Join(os.TempDir(), "dongbei-mall-prefs.json")
	}

	ctx, cancel := context.WithTimeout(context.Background(), sessionTimeout)
	defer cancel()

	if err := run(ctx, baseURL, prefsPath); err != nil {
		fmt.Fprintf(os.Stderr, "storefront session failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, baseURL, prefsPath string) error {
	store, err := prefs.Open(prefsPath)
	if err != nil {
		return fmt.Errorf("open prefs: %w", err)
	}

	client := api.New(baseURL)
	shell := storefront.NewShell(store)
	defer shell.Close()

	fmt.Printf("== 东北味道 storefront == api=%s prefs=%s\n\n", baseURL, prefsPath)

	// Каталог.
	catalogView := storefront.NewCatalogView(shell, client)
	if err := catalogView.Load(ctx); err != nil {
		return err
	}
	for _, group := range catalogView.Groups() {
		fmt.Printf("[%s]\n", group.Category)
		for _, product := range group.Products {
			fmt.Printf("  #%d %s — ¥%s\n", product.ID, product.Name, product.Price)
		}
	}

	// Избранное.
	if err := shell.ToggleFavorite(3); err != nil {
		return err
	}
	fmt.Printf("\nfavorites: %v\n", shell.Favorites())

	// Карточка товара и корзина.
	detail := storefront.NewProductDetailView(shell, client)
	if err := detail.Load(ctx, 1); err != nil {
		return err
	}
	detail.IncrementQuantity()
	if alert, err := detail.AddToCart(ctx); err != nil {
		fmt.Println("alert:", alert)
		return err
	}

	cart := storefront.NewCartView(shell, client)
	if err := cart.Load(ctx); err != nil {
		return err
	}
	fmt.Printf("\ncart: %d line(s), total ¥%s\n", len(cart.Items()), cart.Total())

	// Вход и оформление.
	login := storefront.NewLoginView(shell)
	if message, err := login.SimulateLogin(storefront.ProviderSystem); err != nil {
		return err
	} else {
		fmt.Println(message)
	}

	alert, err := cart.Checkout(ctx)
	if err != nil {
		fmt.Println("alert:", alert)
		return err
	}
	fmt.Println(alert)

	// Имитация покупки с автоотгрузкой.
	if product, ok := detail.Product(); ok {
		order := shell.Purchase(product, 1)
		fmt.Printf("\nsimulated order %s: %s @ %s\n", order.ID, order.Status, order.Location)

		deadline := time.Now().Add(6 * time.Second)
		for time.Now().Before(deadline) {
			orders := shell.Orders()
			if len(orders) > 0 && orders[0].Status != order.Status {
				fmt.Printf("simulated order %s: %s @ %s\n", orders[0].ID, orders[0].Status, orders[0].Location)
				break
			}
			time.Sleep(200 * time.Millisecond)
		}
		for _, notification := range shell.Notifications() {
			fmt.Printf("notification [%s] %s: %s\n", notification.Kind, notification.Title, notification.Body)
		}
	}

	// Диалог с ботом.
	session := chat.NewSession()
	defer session.Close()

	session.ToggleMenu("物流进度查询")
	session.Send("查询最新订单")
	session.Send("发票怎么开")
	time.Sleep(time.Second)

	fmt.Println()
	for _, message := range session.Messages() {
		fmt.Printf("%s> %s\n", message.Role, message.Text)
	}

	return nil
}
