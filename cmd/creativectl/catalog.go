package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"creativestudio/internal/catalog"
	"creativestudio/internal/taxonomy"
)

var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "List publishing channels and their subchannels",
	RunE: func(cmd *cobra.Command, args []string) error {
		channels := taxonomy.ListChannels()
		if viper.GetBool("json") {
			return printJSON(cmd.OutOrStdout(), channels)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "CHANNEL\tSUBCHANNEL\tLEGACY LABEL\tTYPE\tFORMATS")
		for _, c := range channels {
			for _, s := range c.Subchannels {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					c.ID, s.ID, s.LegacyLabel, s.DefaultContentType, strings.Join(s.Formats, ","))
			}
		}
		return tw.Flush()
	},
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List output formats",
	Long: `Formats lists the creative output formats. With --channel (and optionally
--subchannel) only the formats that placement accepts are listed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		channelID, _ := cmd.Flags().GetString("channel")
		subchannelID, _ := cmd.Flags().GetString("subchannel")
		formats := formatsFor(channelID, subchannelID)

		if viper.GetBool("json") {
			return printJSON(cmd.OutOrStdout(), formats)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tLABEL\tSIZE\tRATIO")
		for _, f := range formats {
			fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%s\n", f.ID, f.Label, f.Width, f.Height, f.AspectRatio)
		}
		return tw.Flush()
	},
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List creative providers and whether they can be used",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := newRegistry()
		activeOnly, _ := cmd.Flags().GetBool("active")

		providers := registry.ListProviders()
		if activeOnly {
			providers = registry.ListActiveProviders()
		}

		type row struct {
			ID        string `json:"id"`
			Label     string `json:"label"`
			Status    string `json:"status"`
			Available bool   `json:"available"`
		}
		rows := make([]row, len(providers))
		for i, p := range providers {
			rows[i] = row{ID: p.ID, Label: p.Label, Status: string(p.Status), Available: registry.IsProviderAvailable(p.ID)}
		}

		if viper.GetBool("json") {
			return printJSON(cmd.OutOrStdout(), rows)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tLABEL\tSTATUS\tAVAILABLE")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", r.ID, r.Label, r.Status, r.Available)
		}
		return tw.Flush()
	},
}

func init() {
	formatsCmd.Flags().String("channel", "", "limit to a channel id")
	formatsCmd.Flags().String("subchannel", "", "limit to a subchannel id (requires --channel)")
	providersCmd.Flags().Bool("active", false, "only list providers whose status is active")

	rootCmd.AddCommand(channelsCmd, formatsCmd, providersCmd)
}

// formatsFor returns the full catalog, or the formats a placement accepts
// when a channel is given.
func formatsFor(channelID, subchannelID string) []catalog.CreativeFormat {
	if channelID == "" {
		return catalog.ListCreativeFormats()
	}
	_, sub := taxonomy.Resolve(channelID, subchannelID)
	out := make([]catalog.CreativeFormat, 0, len(sub.Formats))
	for _, id := range sub.Formats {
		out = append(out, catalog.GetCreativeFormat(id))
	}
	return out
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
