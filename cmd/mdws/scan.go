package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"mdworkspace/internal/domain/models/workspace"
	serviceWorkspace "mdworkspace/internal/service/workspace"
)

func init() {
	rootCmd.AddCommand(newScanCmd())
}

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <root>",
		Short: "Print the markdown tree of a directory",
		Long: `The scan command walks a directory and prints every folder that
contains markdown, folders first, names compared case-insensitively.

Example:
  mdws scan ~/notes
  mdws scan ~/notes --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args[0])
		},
	}
}

func runScan(cmd *cobra.Command, root string) error {
	scanner := serviceWorkspace.NewScannerService(nil, newLogger(cmd))

	tree, err := scanner.ScanWorkspace(cmd.Context(), root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		return printJSON(out, tree)
	}

	printTree(out, tree, 0)
	stats := workspace.CountNodes(tree)
	fmt.Fprintf(out, "\nfolders: %d, files: %d\n", stats.Folders, stats.Files)
	return nil
}

func printTree(w io.Writer, node workspace.TreeNode, depth int) {
	indent := strings.Repeat("  ", depth)
	folder, ok := node.(*workspace.Folder)
	if !ok {
		fmt.Fprintf(w, "%s%s\n", indent, node.NodeName())
		return
	}

	fmt.Fprintf(w, "%s%s/\n", indent, folder.Name)
	for _, child := range folder.Children {
		printTree(w, child, depth+1)
	}
}
