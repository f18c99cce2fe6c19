package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nguyenvanduocit/envitrans/pkg/api"
	"github.com/nguyenvanduocit/envitrans/pkg/translator"
)

var Serve = &cobra.Command{
	Use:     "serve",
	Short:   "serve the translation API over HTTP",
	Example: "envitrans serve --addr :8000 --runner-url http://localhost:9000",
	RunE:    runServe,
}

func init() {
	Serve.Flags().StringP("addr", "a", ":8000", "address to listen on")
	Serve.Flags().String("runner-url", "http://localhost:9000", "base URL of the model runner")
	Serve.Flags().Duration("timeout", 120*time.Second, "per-call model runner timeout")
	Serve.Flags().Int("beam-width", translator.DefaultNumBeams, "beam width used for generation")
	Serve.Flags().Int("default-max-length", translator.DefaultMaxLength, "token cap applied when a request omits max_length")

	viper.SetEnvPrefix("envitrans")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(Serve.Flags())
}

func runServe(cmd *cobra.Command, args []string) error {
	runner := translator.NewRunner(viper.GetString("runner-url"), viper.GetDuration("timeout"))

	// device and model identity are fixed for the process lifetime, so
	// resolve them once before accepting traffic
	info, err := runner.Info(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to reach model runner: %w", err)
	}
	slog.Info("model runner ready", "device", info.Device, "model", info.ModelName)

	pipeline := translator.NewEnViT5(runner, translator.Config{
		NumBeams: viper.GetInt("beam-width"),
	})
	app := api.NewServer(pipeline, info, viper.GetInt("default-max-length"), slog.Default()).App()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("interrupt received, shutting down")
		if err := app.Shutdown(); err != nil {
			slog.Error("shutdown failed", "err", err)
		}
	}()

	addr := viper.GetString("addr")
	slog.Info("listening", "addr", addr)

	return app.Listen(addr)
}
