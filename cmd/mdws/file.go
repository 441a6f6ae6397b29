package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	wsSvc "mdworkspace/internal/domain/services/workspace"
	serviceWorkspace "mdworkspace/internal/service/workspace"
)

func init() {
	rootCmd.AddCommand(newReadCmd())
	rootCmd.AddCommand(newWriteCmd())
}

func newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <path>",
		Short: "Print a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files := serviceWorkspace.NewFileService(newLogger(cmd))

			file, err := files.ReadTextFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd.OutOrStdout(), file)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), file.Content)
			return err
		},
	}
}

func newWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write <path>",
		Short: "Write stdin to a file, creating parent directories",
		Long: `The write command replaces a file's content with standard input.

Example:
  echo "# Notes" | mdws write ~/notes/new/today.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}

			files := serviceWorkspace.NewFileService(newLogger(cmd))
			return files.WriteTextFile(cmd.Context(), &wsSvc.WriteTextFileRequest{
				Path:    args[0],
				Content: string(content),
			})
		},
	}
}
