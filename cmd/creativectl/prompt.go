package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"creativestudio/internal/ai"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Compile the production prompt and guide for a calendar item",
	Long: `Prompt compiles the nine-block instructional prompt for image and video
models, plus the human production guide built from the same inputs. Both are
written to the output directory; --print also writes the prompt to stdout.`,
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
		formatID, _ := cmd.Flags().GetString("format")

		assets, err := newRegistry().GenerateCreativeAssets(cmd.Context(), ai.Request{
			ProviderID: ai.ProviderIDFPrompt,
			Item:       item,
			Vaults:     vaults,
			FormatID:   formatID,
		})
		if err != nil {
			return err
		}
		if len(assets) == 0 || assets[0].Prompt == nil {
			return errors.New("prompt: provider returned no prompt")
		}

		if show, _ := cmd.Flags().GetBool("print"); show {
			fmt.Fprintln(cmd.OutOrStdout(), assets[0].Prompt.AIPrompt)
			fmt.Fprintln(cmd.OutOrStdout())
		}

		paths, err := writeAssets(viper.GetString("output_dir"), &item, assets)
		if err != nil {
			return err
		}
		return printPaths(cmd, paths)
	},
}

func init() {
	promptCmd.Flags().String("item", "", "calendar item YAML file")
	promptCmd.Flags().String("format", "", "requested format id")
	promptCmd.Flags().Bool("print", false, "also print the prompt to stdout")
	promptCmd.MarkFlagRequired("item")

	rootCmd.AddCommand(promptCmd)
}
