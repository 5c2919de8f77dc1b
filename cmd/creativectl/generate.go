package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"creativestudio/internal/ai"
	"creativestudio/internal/models"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate creatives for a calendar item",
	Long: `Generate dispatches a calendar item to a creative provider and writes the
results to the output directory. The template provider writes one SVG and one
PNG preview per variant; the prompt provider writes the prompt and guide.

The requested format is constrained to the formats the item's channel accepts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		itemPath, _ := cmd.Flags().GetString("item")
		item, err := loadItem(itemPath)
		if err != nil {
			return err
		}
		vaults, err := loadVaults(viper.GetString("vaults"))
		if err != nil {
			return err
		}

		providerID, _ := cmd.Flags().GetString("provider")
		formatID, _ := cmd.Flags().GetString("format")
		variants, _ := cmd.Flags().GetInt("variants")
		var o models.TextOverrides
		o.Headline, _ = cmd.Flags().GetString("headline")
		o.Subheadline, _ = cmd.Flags().GetString("subheadline")
		o.CTA, _ = cmd.Flags().GetString("cta")

		assets, err := newRegistry().GenerateCreativeAssets(cmd.Context(), ai.Request{
			ProviderID: providerID,
			Item:       item,
			Vaults:     vaults,
			FormatID:   formatID,
			Variants:   variants,
			Overrides:  o,
		})
		if err != nil {
			return err
		}

		paths, err := writeAssets(viper.GetString("output_dir"), &item, assets)
		if err != nil {
			return err
		}
		return printPaths(cmd, paths)
	},
}

func init() {
	generateCmd.Flags().String("item", "", "calendar item YAML file")
	generateCmd.Flags().String("provider", ai.ProviderTemplate, "provider id (see: creativectl providers)")
	generateCmd.Flags().String("format", "", "requested format id (see: creativectl formats)")
	generateCmd.Flags().Int("variants", 3, "number of template variants")
	generateCmd.Flags().String("headline", "", "override the headline")
	generateCmd.Flags().String("subheadline", "", "override the subheadline")
	generateCmd.Flags().String("cta", "", "override the call to action")
	generateCmd.MarkFlagRequired("item")

	rootCmd.AddCommand(generateCmd)
}

// printPaths lists written files, one per line or as a JSON array.
func printPaths(cmd *cobra.Command, paths []string) error {
	if viper.GetBool("json") {
		return printJSON(cmd.OutOrStdout(), paths)
	}
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}
