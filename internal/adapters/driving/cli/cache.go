package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emwalker/lenrmc/internal/core/domain"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the reaction cache",
	Long: `The reaction cache stores enumerated reaction sets keyed by a hash of
the enumeration inputs, so repeated runs skip the partition search.`,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache entry and traffic counters",
	RunE:  runCacheStats,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached reaction set",
	RunE:  runCacheClear,
}

var cachePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show where the cache lives",
	RunE:  runCachePath,
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cachePathCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheStats(cmd *cobra.Command, _ []string) error {
	if reactionCache == nil {
		return errors.New("reaction cache not configured")
	}

	stats, err := reactionCache.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading cache stats: %w", err)
	}

	cmd.Printf("Engine:  %s\n", domain.EngineForDSN(appSettings.CacheDSN))
	cmd.Printf("Path:    %s\n", reactionCache.Path())
	cmd.Printf("Entries: %d\n", stats.Entries)
	cmd.Printf("Hits:    %d\n", stats.Hits)
	cmd.Printf("Misses:  %d\n", stats.Misses)
	cmd.Printf("Puts:    %d\n", stats.Puts)
	return nil
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	if reactionCache == nil {
		return errors.New("reaction cache not configured")
	}

	if err := reactionCache.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	cmd.Println("Reaction cache cleared.")
	return nil
}

func runCachePath(cmd *cobra.Command, _ []string) error {
	if reactionCache == nil {
		return errors.New("reaction cache not configured")
	}

	cmd.Println(reactionCache.Path())
	return nil
}
