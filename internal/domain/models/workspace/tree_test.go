package workspace

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeJSON(t *testing.T) {
	root := &Folder{
		Name: "ws",
		Path: "/ws",
		Children: []TreeNode{
			&Folder{Name: "docs", Path: "/ws/docs", Children: []TreeNode{
				&File{Name: "a.md", Path: "/ws/docs/a.md"},
			}},
			&File{Name: "README.md", Path: "/ws/README.md"},
		},
	}

	data, err := json.Marshal(root)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "ws", "path": "/ws", "kind": "folder",
		"children": [
			{"name": "docs", "path": "/ws/docs", "kind": "folder", "children": [
				{"name": "a.md", "path": "/ws/docs/a.md", "kind": "file"}
			]},
			{"name": "README.md", "path": "/ws/README.md", "kind": "file"}
		]
	}`, string(data))
}

func TestEmptyFolderJSON(t *testing.T) {
	data, err := json.Marshal(&Folder{Name: "ws", Path: "/ws"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"ws","path":"/ws","kind":"folder","children":[]}`, string(data))
}

func TestCountNodes(t *testing.T) {
	root := &Folder{Children: []TreeNode{
		&Folder{Children: []TreeNode{
			&Folder{Children: []TreeNode{&File{}}},
			&File{},
		}},
		&File{},
	}}

	assert.Equal(t, TreeStats{Folders: 2, Files: 3}, CountNodes(root))
	assert.Equal(t, TreeStats{}, CountNodes(nil))
}

func TestNodeAccessors(t *testing.T) {
	var node TreeNode = &File{Name: "a.md", Path: "/a.md"}
	assert.Equal(t, KindFile, node.Kind())
	assert.Equal(t, "a.md", node.NodeName())
	assert.Equal(t, "/a.md", node.NodePath())

	node = &Folder{Name: "d", Path: "/d"}
	assert.Equal(t, KindFolder, node.Kind())
}
