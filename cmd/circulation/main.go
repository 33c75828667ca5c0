package main

import (
	"context"
	"encoding/json"
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/app"
	"github.com/Astemirdum/library-circulation/circulation/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, using environment")
	}
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() config.Config {
	return config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "circulation",
		Short:        "Library circulation service",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), remindCmd(), notifyWorkerCmd(), createStaffCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Run: func(cmd *cobra.Command, args []string) {
			app.Run(loadConfig())
		},
	}
}

func remindCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Send overdue reminders once",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			report, err := app.RunReminders(ctx, loadConfig())
			if err != nil {
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(report)
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "sweep deadline")
	return cmd
}

func notifyWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notify-worker",
		Short: "Deliver published notifications by mail",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunNotifyWorker(loadConfig())
		},
	}
}

func createStaffCmd() *cobra.Command {
	var req app.RegisterRequest
	cmd := &cobra.Command{
		Use:   "create-staff",
		Short: "Create a staff account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Password == "" {
				req.Password = os.Getenv("STAFF_PASSWORD")
			}
			reader, err := app.CreateStaff(cmd.Context(), loadConfig(), req)
			if err != nil {
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(reader)
		},
	}
	cmd.Flags().StringVar(&req.Username, "username", "", "staff username")
	cmd.Flags().StringVar(&req.Email, "email", "", "staff email")
	cmd.Flags().StringVar(&req.Password, "password", "", "staff password (or STAFF_PASSWORD)")
	cmd.Flags().StringVar(&req.FullName, "full-name", "", "staff full name")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}
