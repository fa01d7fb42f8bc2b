package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newCacheCommand(configFlag *string) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage cached episodes and summaries",
	}

	cacheCmd.AddCommand(newCacheListCommand(configFlag))
	cacheCmd.AddCommand(newCacheClearCommand(configFlag))
	return cacheCmd
}

func newCacheListCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cached episodes and summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, *configFlag)
			if err != nil {
				return err
			}
			defer a.close()

			episodes, err := a.store.ListEpisodes(ctx)
			if err != nil {
				return err
			}
			summaries, err := a.store.ListSummaries(ctx)
			if err != nil {
				return err
			}

			summarized := make(map[string]bool, len(summaries))
			words := make(map[string]int, len(summaries))
			for _, s := range summaries {
				summarized[s.CacheKey] = true
				words[s.CacheKey] = s.SummaryWords
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Key", "Source", "Size", "Downloaded", "Summary"})
			for _, ep := range episodes {
				status := "-"
				if summarized[ep.CacheKey] {
					status = fmt.Sprintf("%d words", words[ep.CacheKey])
				}
				t.AppendRow(table.Row{
					ep.CacheKey,
					truncate(ep.SourceURL, 60),
					fmt.Sprintf("%.1f MiB", float64(ep.SizeBytes)/(1<<20)),
					ep.DownloadedAt.Format("2006-01-02 15:04"),
					status,
				})
			}
			t.Render()

			fmt.Printf("\n%d episode(s), %d summarized\n", len(episodes), len(summaries))
			return nil
		},
	}
}

func newCacheClearCommand(configFlag *string) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "clear [cache-key]",
		Short: "Remove cached artifacts by key, or everything with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !all && len(args) == 0 {
				return fmt.Errorf("provide a cache key or --all")
			}

			a, err := newApp(ctx, *configFlag)
			if err != nil {
				return err
			}
			defer a.close()

			if !all {
				if err := a.store.DeleteByKey(ctx, args[0]); err != nil {
					return err
				}
				fmt.Printf("Cleared %s\n", args[0])
				return nil
			}

			episodes, err := a.store.ListEpisodes(ctx)
			if err != nil {
				return err
			}
			summaries, err := a.store.ListSummaries(ctx)
			if err != nil {
				return err
			}

			keys := make(map[string]struct{})
			for _, ep := range episodes {
				keys[ep.CacheKey] = struct{}{}
			}
			for _, s := range summaries {
				keys[s.CacheKey] = struct{}{}
			}

			for key := range keys {
				if err := a.store.DeleteByKey(ctx, key); err != nil {
					return err
				}
			}
			fmt.Printf("Cleared %d cache entr(ies)\n", len(keys))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Clear every cached episode and summary")
	return cmd
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
