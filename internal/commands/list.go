package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/terrastrap/terrastrap/internal/config"
	"github.com/terrastrap/terrastrap/internal/storage"
	"github.com/terrastrap/terrastrap/internal/terminal"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated stacks",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		stacks, err := storage.NewStackStore(cfg.Root).List()
		if err != nil {
			return err
		}
		if len(stacks) == 0 {
			terminal.Info("No stacks generated yet. Run `terrastrap` to create one.")
			return nil
		}

		terminal.Header("Generated stacks")
		for _, st := range stacks {
			label := fmt.Sprintf("%s/%s", st.Project, st.Environment)
			detail := fmt.Sprintf("%s %s — %s (%s)", st.Provider, st.Region, st.Path, st.CreatedAt.Format("2006-01-02"))
			terminal.Detail(label, detail)
		}
		return nil
	},
}
