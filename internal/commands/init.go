package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reeflective/readline"
	"github.com/spf13/cobra"

	"github.com/terrastrap/terrastrap/internal/config"
	"github.com/terrastrap/terrastrap/internal/scaffold"
	"github.com/terrastrap/terrastrap/internal/secrets"
	"github.com/terrastrap/terrastrap/internal/storage"
	"github.com/terrastrap/terrastrap/internal/terminal"
	"github.com/terrastrap/terrastrap/menu"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a Terraform configuration",
	Long:  "Walk through the deployment decisions and write main.tf and variables.tf.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd)
	},
}

// runInit drives the scaffold wizard: one menu per decision point, then
// templated emission and a catalog entry.
func runInit(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	caps := menu.Detect()
	terminal.Banner(Version)

	plan := scaffold.Plan{}

	plan.Project, err = promptProjectName(caps)
	if err != nil {
		return err
	}

	plan.Provider, err = pick(caps, "Cloud provider", scaffold.Providers(), cfg.Defaults.Provider)
	if err != nil {
		return err
	}
	plan.Environment, err = pick(caps, "Environment", scaffold.Environments(), "")
	if err != nil {
		return err
	}
	plan.Region, err = pick(caps, "Region", scaffold.Regions(plan.Provider), cfg.DefaultRegion(plan.Provider))
	if err != nil {
		return err
	}
	plan.InstanceType, err = pick(caps, "Compute size", scaffold.InstanceSizes(plan.Provider), "")
	if err != nil {
		return err
	}
	plan.Backend, err = pick(caps, "State backend", scaffold.Backends(plan.Provider), "")
	if err != nil {
		return err
	}

	// A stored credential profile flows into the provider block.
	store := secrets.New(cfg.Root)
	if profile, err := store.Get(secrets.Key(plan.Provider, "profile")); err == nil {
		plan.Profile = profile
	}

	dir := outputDir(cfg, plan.Project)

	terminal.Header("Plan")
	terminal.Detail("Project", plan.Project)
	terminal.Detail("Provider", plan.Provider)
	terminal.Detail("Environment", plan.Environment)
	terminal.Detail("Region", plan.Region)
	terminal.Detail("Compute", plan.InstanceType)
	terminal.Detail("Backend", plan.Backend)
	if plan.Profile != "" {
		terminal.Detail("Profile", plan.Profile)
	}
	terminal.Detail("Output", dir)
	terminal.Divider()

	confirm, err := menu.Select("Write these files?", []menu.Option{
		{Label: "Yes, write the configuration", Value: "yes"},
		{Label: "No, discard", Value: "no"},
	})
	if err != nil {
		return err
	}
	if confirm != "yes" {
		return menu.ErrCancelled
	}

	written, err := scaffold.Write(dir, plan)
	if err != nil {
		return err
	}
	for _, path := range written {
		terminal.Success("wrote " + path)
	}

	stacks := storage.NewStackStore(cfg.Root)
	if err := stacks.Append(storage.Stack{
		Project:     plan.Project,
		Provider:    plan.Provider,
		Environment: plan.Environment,
		Region:      plan.Region,
		Path:        dir,
	}); err != nil {
		terminal.Warning("could not record stack: " + err.Error())
	}

	terminal.Info("Next: cd " + dir + " && terraform init")
	return nil
}

// pick runs one decision point through the menu. A preferred value (saved
// default) is annotated and moved to the top so Enter accepts it.
func pick(caps menu.Capabilities, prompt string, choices []scaffold.Choice, preferred string) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("no choices for %q", prompt)
	}

	opts := make([]menu.Option, 0, len(choices))
	for _, c := range choices {
		opt := menu.Option{Label: c.Label, Value: c.Value}
		if c.Value == preferred {
			opt.Label += " (default)"
			opts = append([]menu.Option{opt}, opts...)
			continue
		}
		opts = append(opts, opt)
	}
	return menu.SelectWith(os.Stdin, os.Stdout, caps, prompt, opts)
}

// promptProjectName reads a free-text project name, via readline on a real
// terminal and a plain buffered read otherwise.
func promptProjectName(caps menu.Capabilities) (string, error) {
	for {
		var line string
		var err error
		if caps.Interactive {
			shell := readline.NewShell()
			shell.Prompt.Primary(func() string {
				return terminal.Bold + "Project name: " + terminal.Reset
			})
			line, err = shell.Readline()
		} else {
			fmt.Print("Project name: ")
			r := bufio.NewReader(os.Stdin)
			line, err = r.ReadString('\n')
			if err != nil && strings.TrimSpace(line) == "" {
				return "", fmt.Errorf("read project name: %w", err)
			}
			err = nil
		}
		if err != nil {
			return "", fmt.Errorf("read project name: %w", err)
		}

		name := strings.TrimSpace(line)
		if validProjectName(name) {
			return name, nil
		}
		terminal.Warning("Project names use letters, digits, '-' and '_' (max 64 chars).")
		if !caps.Interactive {
			return "", fmt.Errorf("invalid project name %q", name)
		}
	}
}

// validProjectName reports whether a name is usable in resource names and
// file paths.
func validProjectName(name string) bool {
	if name == "" || len(name) > 64 {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

// outputDir resolves the output directory: --out flag, then the saved
// default, then ./<project>.
func outputDir(cfg *config.Config, project string) string {
	if outFlag != "" {
		return outFlag
	}
	if cfg.Defaults.OutputDir != "" {
		return filepath.Join(cfg.Defaults.OutputDir, project)
	}
	return filepath.Join(".", project)
}
