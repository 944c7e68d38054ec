package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cli "github.com/urfave/cli/v2"

	"github.com/badapples/registry/authenticator"
	"github.com/badapples/registry/config"
	"github.com/badapples/registry/database"
	"github.com/badapples/registry/models"
	"github.com/badapples/registry/notifier"
	"github.com/badapples/registry/repositories"
	"github.com/badapples/registry/services"
	"github.com/badapples/registry/userctx"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:  "badapples",
		Usage: "moderation, dispute and audit service for the Bad Apples database",
		Commands: []*cli.Command{
			serveCmd,
			migrateCmd,
			createUserCmd,
		},
		DefaultCommand: "serve",
	}
	return app.Run(args)
}

// loadConfig reads configuration and installs the JSON logger
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))
	return cfg, nil
}

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "run the HTTP service and notification worker",
	Action: func(cctx *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cctx.Context, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		db, err := database.InitializeDatabase(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		store := repositories.NewStore(db)
		srvs := services.NewServices(store, cfg.AdminURL())

		var mailer notifier.Mailer = notifier.NoopMailer{}
		if cfg.Mail.Enabled() {
			mailer = notifier.NewSMTPMailer(notifier.SMTPConfig{
				Host:     cfg.Mail.Server,
				Port:     cfg.Mail.Port,
				Username: cfg.Mail.Username,
				Password: cfg.Mail.Password,
				From:     cfg.Mail.Sender,
			})
		} else {
			slog.Warn("MAIL_USERNAME not set, notifications will be skipped")
		}

		var sso authenticator.Provider
		if cfg.OIDC.Enabled() {
			sso, err = authenticator.NewOpenIDProvider(ctx, authenticator.OpenIDConfig{
				Domain:       cfg.OIDC.Domain,
				ClientID:     cfg.OIDC.ClientID,
				ClientSecret: cfg.OIDC.ClientSecret,
				CallbackURL:  cfg.OIDC.CallbackURL,
			})
			if err != nil {
				return fmt.Errorf("failed to initialize SSO provider: %w", err)
			}
		}

		r, err := setupRouter(cfg, srvs, store, sso)
		if err != nil {
			return fmt.Errorf("failed to setup router: %w", err)
		}

		worker := notifier.NewWorker(store.Outbox, mailer, cfg.Notify.Interval, cfg.Notify.MaxAttempts)
		workerDone := make(chan struct{})
		go func() {
			defer close(workerDone)
			worker.Run(ctx)
		}()

		server := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		serverErr := make(chan error, 1)
		go func() {
			slog.Info("starting server", "port", cfg.Port, "database", cfg.DatabasePath, "sso", sso != nil)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
			close(serverErr)
		}()

		select {
		case <-ctx.Done():
		case err := <-serverErr:
			stop()
			<-workerDone
			return fmt.Errorf("server failed: %w", err)
		}

		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shut down cleanly", "err", err)
		}
		<-workerDone
		return nil
	},
}

var migrateCmd = &cli.Command{
	Name:  "migrate",
	Usage: "apply pending database migrations",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "status", Usage: "list migrations without applying them"},
	},
	Action: func(cctx *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if cctx.Bool("status") {
			db, err := database.OpenDB(cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer db.Close()

			states, err := database.Status(cctx.Context, db)
			if err != nil {
				return err
			}
			for _, s := range states {
				mark := "pending"
				if s.Applied {
					mark = "applied"
				}
				fmt.Printf("%-8s %s\n", mark, s.Version)
			}
			return nil
		}

		db, err := database.InitializeDatabase(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer db.Close()

		slog.Info("migrations applied", "database", cfg.DatabasePath)
		return nil
	},
}

var createUserCmd = &cli.Command{
	Name:  "create-user",
	Usage: "create a staff account, e.g. the first admin",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "username", Required: true},
		&cli.StringFlag{Name: "email", Required: true},
		&cli.StringFlag{
			Name:    "password",
			Usage:   "at least 8 characters",
			EnvVars: []string{"BADAPPLES_ADMIN_PASSWORD"},
		},
		&cli.StringFlag{Name: "role", Value: string(models.RoleAdmin), Usage: "admin or moderator"},
	},
	Action: func(cctx *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := database.InitializeDatabase(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer db.Close()

		srvs := services.NewServices(repositories.NewStore(db), cfg.AdminURL())
		ctx := userctx.SetRequestInfo(cctx.Context, userctx.RequestInfo{IPAddress: "cli", UserAgent: "badapples create-user"})

		password := cctx.String("password")
		user, err := srvs.Users.BootstrapUser(ctx, models.RegisterUserForm{
			Username:        cctx.String("username"),
			Email:           cctx.String("email"),
			Password:        password,
			ConfirmPassword: password,
			Role:            cctx.String("role"),
		})
		if err != nil {
			return err
		}

		fmt.Printf("created %s user %s (id %d)\n", user.Role, user.Username, user.ID)
		return nil
	},
}
