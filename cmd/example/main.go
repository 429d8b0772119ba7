package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	backoffice "github.com/aldawaly/go-backoffice"
	"github.com/aldawaly/go-backoffice/internal/api"
	"github.com/aldawaly/go-backoffice/internal/content"
	"github.com/aldawaly/go-backoffice/internal/di"
	"github.com/aldawaly/go-backoffice/internal/fetch"
	"github.com/aldawaly/go-backoffice/internal/locale"
	"github.com/aldawaly/go-backoffice/pkg/interfaces"
)

func main() {
	ctx := context.Background()

	baseURL := os.Getenv("BACKOFFICE_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:4000"
	}

	cfg := backoffice.DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "pretty"
	if dsn := os.Getenv("BACKOFFICE_SESSION_DSN"); dsn != "" {
		cfg.Session.Provider = "bun"
		cfg.Session.DSN = dsn
	}

	toasts := interfaces.NotifierFunc{
		OnSuccess: func(_ context.Context, message string) {
			fmt.Printf("toast/success: %s\n", message)
		},
		OnError: func(_ context.Context, message string) {
			fmt.Printf("toast/error: %s\n", message)
		},
	}

	module, err := backoffice.New(ctx, cfg, di.WithNotifier(toasts))
	if err != nil {
		log.Fatalf("initialise backoffice: %v", err)
	}
	defer module.Close()

	// Public reads work without a session and follow the active locale.
	newsFetcher := fetch.NewFetcher(module.Locale(), func(ctx context.Context, loc string, opts content.ListOptions) ([]content.News, error) {
		return module.API().News().List(ctx, opts)
	})
	defer newsFetcher.Close()

	newsFetcher.Refresh(ctx)
	printState("news (ar)", newsFetcher.State())

	module.Locale().Set(locale.English)
	newsFetcher.Refresh(ctx)
	printState("news (en)", newsFetcher.State())

	email := os.Getenv("BACKOFFICE_EMAIL")
	password := os.Getenv("BACKOFFICE_PASSWORD")
	if email == "" || password == "" {
		fmt.Println("set BACKOFFICE_EMAIL and BACKOFFICE_PASSWORD to exercise the admin flows")
		return
	}

	result, err := module.API().Auth().Login(ctx, email, password)
	if err != nil {
		log.Fatalf("login: %v", err)
	}
	if err := module.Session().Login(ctx, result.Token, result.User); err != nil {
		log.Fatalf("persist session: %v", err)
	}
	fmt.Printf("signed in as %s (%s)\n", result.User.Name, result.User.Role)

	for _, item := range module.Sidebar() {
		fmt.Printf("nav: %s -> %s\n", item.Label.EN, item.Path)
		for _, child := range item.Children {
			fmt.Printf("nav:   %s -> %s\n", child.Label.EN, child.Path)
		}
	}

	created, err := module.Mutations().News.Create(ctx, api.NewsInput{
		Title:       content.Bilingual{AR: "إطلاق تجريبي", EN: "Demo launch"},
		Description: content.Bilingual{AR: "عنصر تمت إضافته من المثال", EN: "Item added by the example"},
		Slug:        "demo-launch",
	})
	if err != nil {
		log.Fatalf("create news: %v", err)
	}
	fmt.Printf("created news item %s\n", created.ID)

	items, err := module.API().News().AdminList(ctx)
	if err != nil {
		log.Fatalf("admin list: %v", err)
	}
	prettyPrint("admin news", items)

	if err := module.Mutations().News.Delete(ctx, created.ID); err != nil {
		log.Fatalf("delete news: %v", err)
	}
}

func printState[T any](label string, state fetch.State[T]) {
	if state.Err != nil {
		fmt.Printf("%s: error: %v\n", label, state.Err)
		return
	}
	prettyPrint(label, state.Data)
}

func prettyPrint(label string, payload any) {
	fmt.Printf("\n%s:\n", label)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		log.Printf("pretty print %s: %v", label, err)
	}
}
