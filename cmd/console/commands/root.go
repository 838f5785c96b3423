// Package commands is the HBnB operator console: one cobra command per
// store operation, each running in its own store session.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vibe-gaming/hbnb/internal/config"
	"github.com/vibe-gaming/hbnb/internal/service"
	"github.com/vibe-gaming/hbnb/internal/storage"
	"github.com/vibe-gaming/hbnb/internal/storage/engine"
	"github.com/vibe-gaming/hbnb/pkg/hash"
	"github.com/vibe-gaming/hbnb/pkg/logger"
	"github.com/vibe-gaming/hbnb/pkg/validator"
)

// app is what every command runs against. It is filled in by the root
// command's pre-run hook.
type app struct {
	output   string
	provider *storage.Provider
	services *service.Services
}

func Execute(ctx context.Context) error {
	a := &app{}
	return a.execute(ctx, newRootCommand(a))
}

// execute runs cmd and closes the store whether or not the command
// succeeded.
func (a *app) execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if closeErr := a.close(); err == nil {
		err = closeErr
	}
	return err
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hbnb",
		Short:         "HBnB console",
		Long:          "Inspect and edit the HBnB store configured through the HBNB_* environment.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if a.provider != nil {
				return nil
			}
			return a.open()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", outputJSON, "output format: json or yaml")

	rootCmd.AddCommand(newCreateCommand(a))
	rootCmd.AddCommand(newShowCommand(a))
	rootCmd.AddCommand(newDestroyCommand(a))
	rootCmd.AddCommand(newAllCommand(a))
	rootCmd.AddCommand(newCountCommand(a))
	rootCmd.AddCommand(newUpdateCommand(a))

	return rootCmd
}

func (a *app) open() error {
	if a.output != outputJSON && a.output != outputYAML {
		return fmt.Errorf("unsupported output %q", a.output)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if _, err := logger.SetupLogger(cfg.Env, cfg.LogLevel); err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}

	provider, err := engine.Open(cfg)
	if err != nil {
		return err
	}
	logger.Debug("storage ready", zap.String("engine", provider.Engine()))

	a.provider = provider
	a.services = service.NewServices(service.Deps{
		Hasher:    hash.NewSHA256Hasher(cfg.Auth.PasswordSalt),
		Validator: validator.New(),
	})
	return nil
}

func (a *app) close() error {
	defer logger.Sync()
	if a.provider == nil {
		return nil
	}
	err := a.provider.Close()
	a.provider = nil
	return err
}

// session runs fn inside a fresh store session.
func (a *app) session(fn func(st storage.Store) error) error {
	st := a.provider.Session()
	defer func() {
		if err := st.Close(); err != nil {
			logger.Warn("close store session failed", zap.Error(err))
		}
	}()
	return fn(st)
}
