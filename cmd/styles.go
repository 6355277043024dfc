package cmd

import (
	"fmt"

	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/spf13/cobra"
)

// stylesCmd は、選べる画風とその説明を表示するのだ。
var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "選べる画風の一覧を表示するのだ。",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, s := range domain.Styles() {
			if _, err := fmt.Fprintf(w, "%-10s %s\n", s, s.Description()); err != nil {
				return err
			}
		}
		return nil
	},
}
