package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	mdSvc "mdworkspace/internal/domain/services/markdown"
	serviceMarkdown "mdworkspace/internal/service/markdown"
	"mdworkspace/internal/service/markdown/converter"
)

func init() {
	rootCmd.AddCommand(newOutlineCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newConvertCmd())
}

func newOutlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outline <file>",
		Short: "List the headings of a markdown file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			outline, err := serviceMarkdown.NewOutlineService().Outline(cmd.Context(), string(content), 0)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd.OutOrStdout(), outline)
			}
			for _, item := range outline.Items {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s%s\n", item.Line, strings.Repeat("  ", item.Level-1), item.Text)
			}
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Count lines, characters and words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			stats := serviceMarkdown.NewContentAnalyzer().Stats(string(content))
			if jsonOut {
				return printJSON(cmd.OutOrStdout(), stats)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "lines: %d\ncharacters: %d\nwords: %d\n", stats.Lines, stats.Characters, stats.Words)
			if stats.Title != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "title: %s\n", stats.Title)
			}
			return nil
		},
	}
}

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <file>",
		Short: "Render a markdown file to preview HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			baseDir, err := filepath.Abs(filepath.Dir(args[0]))
			if err != nil {
				return err
			}

			renderer, err := serviceMarkdown.NewRenderer(1, serviceMarkdown.DefaultAssetPrefix, newLogger(cmd))
			if err != nil {
				return err
			}
			rendered, err := renderer.Render(cmd.Context(), &mdSvc.RenderRequest{
				Content: string(content),
				BaseDir: baseDir,
			})
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd.OutOrStdout(), rendered)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered.HTML)
			return err
		},
	}
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert an HTML or text file to markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			markdown, err := converter.NewConverterRegistry().Convert(cmd.Context(), args[0], content)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(markdown, "\n"))
			return err
		},
	}
}
