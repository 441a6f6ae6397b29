package workspace

import (
	"encoding/json"
)

// NodeKind tags a tree node as a folder or a markdown file
type NodeKind string

const (
	KindFolder NodeKind = "folder"
	KindFile   NodeKind = "file"
)

// TreeNode is one entry of a scanned workspace. Implemented only by
// *Folder and *File; files carry no children.
type TreeNode interface {
	NodeName() string
	NodePath() string
	Kind() NodeKind
	treeNode()
}

// Folder is a directory that holds markdown somewhere beneath it.
// The workspace root is always a Folder, even when Children is empty.
type Folder struct {
	Name     string
	Path     string
	Children []TreeNode
}

// File is a markdown file
type File struct {
	Name string
	Path string
}

func (f *Folder) NodeName() string { return f.Name }
func (f *Folder) NodePath() string { return f.Path }
func (f *Folder) Kind() NodeKind   { return KindFolder }
func (*Folder) treeNode()          {}

func (f *File) NodeName() string { return f.Name }
func (f *File) NodePath() string { return f.Path }
func (f *File) Kind() NodeKind   { return KindFile }
func (*File) treeNode()          {}

type folderJSON struct {
	Name     string     `json:"name"`
	Path     string     `json:"path"`
	Kind     NodeKind   `json:"kind"`
	Children []TreeNode `json:"children"`
}

type fileJSON struct {
	Name string   `json:"name"`
	Path string   `json:"path"`
	Kind NodeKind `json:"kind"`
}

// MarshalJSON emits children as an array (never null)
func (f *Folder) MarshalJSON() ([]byte, error) {
	children := f.Children
	if children == nil {
		children = []TreeNode{}
	}
	return json.Marshal(folderJSON{
		Name:     f.Name,
		Path:     f.Path,
		Kind:     KindFolder,
		Children: children,
	})
}

// MarshalJSON omits the children field entirely
func (f *File) MarshalJSON() ([]byte, error) {
	return json.Marshal(fileJSON{
		Name: f.Name,
		Path: f.Path,
		Kind: KindFile,
	})
}

// TreeStats summarizes a scanned tree, excluding the root itself
type TreeStats struct {
	Folders int `json:"folders"`
	Files   int `json:"files"`
}

// CountNodes walks the tree below root and counts folders and files
func CountNodes(root *Folder) TreeStats {
	var stats TreeStats
	var walk func(nodes []TreeNode)
	walk = func(nodes []TreeNode) {
		for _, node := range nodes {
			switch n := node.(type) {
			case *Folder:
				stats.Folders++
				walk(n.Children)
			case *File:
				stats.Files++
			}
		}
	}
	if root != nil {
		walk(root.Children)
	}
	return stats
}
