package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/reeflective/readline"
	"github.com/spf13/cobra"

	"github.com/terrastrap/terrastrap/internal/config"
	"github.com/terrastrap/terrastrap/internal/scaffold"
	"github.com/terrastrap/terrastrap/internal/secrets"
	"github.com/terrastrap/terrastrap/internal/terminal"
	"github.com/terrastrap/terrastrap/menu"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage stored credential profiles",
	Long:  "Store the credential profile name each provider block should reference. Profiles live in the OS keychain when one is available.",
}

var authSetCmd = &cobra.Command{
	Use:   "set <provider>",
	Short: "Store the credential profile for a provider",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider := args[0]
		if !knownProvider(provider) {
			return fmt.Errorf("unknown provider %q", provider)
		}

		profile, err := promptProfile()
		if err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		store := secrets.New(cfg.Root)
		if err := store.Set(secrets.Key(provider, "profile"), profile); err != nil {
			return fmt.Errorf("store profile: %w", err)
		}
		terminal.Success("stored profile for " + provider)
		return nil
	},
}

var authShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show stored credential profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		store := secrets.New(cfg.Root)

		terminal.Header("Credential profiles")
		for _, prov := range scaffold.Providers() {
			profile, err := store.Get(secrets.Key(prov.Value, "profile"))
			switch {
			case errors.Is(err, secrets.ErrNotFound):
				terminal.Detail(prov.Value, "(none)")
			case err != nil:
				return fmt.Errorf("read profile for %s: %w", prov.Value, err)
			default:
				terminal.Detail(prov.Value, profile)
			}
		}
		return nil
	},
}

var authClearCmd = &cobra.Command{
	Use:   "clear <provider>",
	Short: "Remove the stored profile for a provider",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider := args[0]
		if !knownProvider(provider) {
			return fmt.Errorf("unknown provider %q", provider)
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		store := secrets.New(cfg.Root)
		if err := store.Delete(secrets.Key(provider, "profile")); err != nil {
			return fmt.Errorf("clear profile: %w", err)
		}
		terminal.Success("cleared profile for " + provider)
		return nil
	},
}

func init() {
	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authShowCmd)
	authCmd.AddCommand(authClearCmd)
}

func knownProvider(provider string) bool {
	for _, p := range scaffold.Providers() {
		if p.Value == provider {
			return true
		}
	}
	return false
}

// promptProfile reads the profile name, interactively when possible.
func promptProfile() (string, error) {
	caps := menu.Detect()

	var line string
	var err error
	if caps.Interactive {
		shell := readline.NewShell()
		shell.Prompt.Primary(func() string {
			return terminal.Bold + "Profile name: " + terminal.Reset
		})
		line, err = shell.Readline()
	} else {
		fmt.Print("Profile name: ")
		line, err = bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && strings.TrimSpace(line) != "" {
			err = nil
		}
	}
	if err != nil {
		return "", fmt.Errorf("read profile name: %w", err)
	}

	profile := strings.TrimSpace(line)
	if profile == "" {
		return "", fmt.Errorf("profile name is empty")
	}
	return profile, nil
}
