package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	clientapi "github.com/iudanet/campusctl/internal/client/api"
	"github.com/iudanet/campusctl/internal/client/auth"
	"github.com/iudanet/campusctl/internal/client/cli"
	"github.com/iudanet/campusctl/internal/client/config"
	"github.com/iudanet/campusctl/internal/client/iocli"
	"github.com/iudanet/campusctl/internal/client/session"
	"github.com/iudanet/campusctl/internal/client/storage"
	"github.com/iudanet/campusctl/internal/client/storage/boltdb"
	"github.com/iudanet/campusctl/internal/client/storage/memory"
	"github.com/iudanet/campusctl/internal/client/student"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// clientStorage объединяет хранилище сессии и настроек
type clientStorage interface {
	storage.AuthStorage
	storage.ConfigStorage
}

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "Server URL (overrides saved value)")
	dbPath := flag.String("db", "campusctl.db", "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, cli.Usage())
		os.Exit(1)
	}

	command := args[0]

	ctx := context.Background()

	// Открываем BoltDB storage; при сбое работаем без персистентности,
	// сессия проживёт только до выхода из процесса
	var store clientStorage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		slog.Warn("failed to open local database, session will not persist",
			"path", *dbPath, "error", err)
		store = memory.New()
	} else {
		defer func() {
			if err := boltStorage.Close(); err != nil {
				slog.Error("failed to close database", "error", err)
			}
		}()
		store = boltStorage
	}

	// Определяем адрес сервера: флаг > окружение > сохранённый > дефолт
	cfg := config.NewResolver(store)
	baseURL, err := cfg.BaseURL(ctx, *serverURL, os.Getenv(config.EnvBaseURL))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Собираем клиентский стек
	apiClient := clientapi.NewClient(baseURL, store)
	authSvc := auth.NewService(apiClient, store)
	sess := session.NewManager(authSvc, store)
	apiClient.SetSessionExpiredHook(sess.HandleSessionExpired)

	// Восстанавливаем сессию из хранилища без сетевых вызовов
	sess.Restore(ctx)

	studentSvc := student.NewService(apiClient)
	c := cli.New(iocli.NewStdio(), sess, studentSvc, cfg, store)

	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("CampusCtl Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
