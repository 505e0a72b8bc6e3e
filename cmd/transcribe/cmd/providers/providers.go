package providers

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"audio-transcriber/internal/app/api/provider"
	"audio-transcriber/internal/config"
)

// Cmd represents the providers command
var Cmd = &cobra.Command{
	Use:   "providers",
	Short: "List registered speech recognition providers",
	RunE: func(cmd *cobra.Command, args []string) error {
		registered := provider.ListRegisteredProviders()
		sort.Strings(registered)

		selected := config.ProviderName()
		for _, name := range registered {
			marker := " "
			if name == selected {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, name)
		}
		return nil
	},
}
