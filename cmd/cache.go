package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/curator/resolver"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the ROR name cache",
	Long: `Inspect or clear the on-disk cache of resolved ROR organisation names.

The cache location is set by ror.cache_path in the configuration.`,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := openConfiguredCache(cmd)
		if err != nil {
			return err
		}
		defer cache.Close()

		stats, err := cache.Stats(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Path:    %s\n", stats.Path)
		if info, err := os.Stat(stats.Path); err == nil {
			fmt.Fprintf(out, "Size:    %s\n", humanize.IBytes(uint64(info.Size())))
		}
		fmt.Fprintf(out, "Entries: %s\n", humanize.Comma(stats.Entries))
		fmt.Fprintf(out, "Stale:   %s\n", humanize.Comma(stats.Stale))
		if stats.TTL > 0 {
			fmt.Fprintf(out, "TTL:     %s\n", stats.TTL)
		} else {
			fmt.Fprintln(out, "TTL:     never expires")
		}
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached name",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := openConfiguredCache(cmd)
		if err != nil {
			return err
		}
		defer cache.Close()

		n, err := cache.Clear(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s cached %s\n", humanize.Comma(n), plural(n, "name", "names"))
		return nil
	},
}

func openConfiguredCache(cmd *cobra.Command) (*resolver.Cache, error) {
	if cfg.ROR.CachePath == "" {
		return nil, fmt.Errorf("no ROR cache configured (set ror.cache_path)")
	}
	return resolver.OpenCache(cmd.Context(), cfg.ROR.CachePath, cfg.ROR.CacheTTL)
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
