package output

import (
	"path"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is the column descriptions are aligned to.
	descriptionColumn = 44
)

// fileDescriptions maps generated file suffixes to a short description.
var fileDescriptions = []struct {
	suffix string
	desc   string
}{
	{"-api.service.ts", "Application service"},
	{".module.ts", "Module definition"},
	{".entity.ts", "Domain entity"},
	{".repository.ts", "Repository contract"},
	{".service.ts", "Domain service"},
	{".controller.ts", "HTTP controller"},
}

// treeNode is one entry of a rendered file tree.
type treeNode struct {
	name     string
	isDir    bool
	children []*treeNode
}

// RenderFileTree renders slash-separated relative paths under root as a tree.
// Paths ending in "/" are directories; parent directories are implied.
func RenderFileTree(root string, paths []string) string {
	if len(paths) == 0 {
		return ""
	}

	top := &treeNode{name: root, isDir: true}
	for _, p := range paths {
		isDir := strings.HasSuffix(p, "/")
		parts := strings.Split(strings.Trim(path.Clean(p), "/"), "/")
		cur := top
		for i, part := range parts {
			if part == "" || part == "." {
				continue
			}
			leaf := i == len(parts)-1
			cur = cur.child(part, !leaf || isDir)
		}
	}

	top.sort()

	var sb strings.Builder
	sb.WriteString(StyleBold.Render(root + "/"))
	sb.WriteString("\n")
	for i, c := range top.children {
		c.render(&sb, "", i == len(top.children)-1)
	}
	return sb.String()
}

func (n *treeNode) child(name string, isDir bool) *treeNode {
	for _, c := range n.children {
		if c.name == name {
			c.isDir = c.isDir || isDir
			return c
		}
	}
	c := &treeNode{name: name, isDir: isDir}
	n.children = append(n.children, c)
	return c
}

// sort orders directories first, then names alphabetically.
func (n *treeNode) sort() {
	sort.Slice(n.children, func(i, j int) bool {
		a, b := n.children[i], n.children[j]
		if a.isDir != b.isDir {
			return a.isDir
		}
		return a.name < b.name
	})
	for _, c := range n.children {
		c.sort()
	}
}

func (n *treeNode) render(sb *strings.Builder, prefix string, last bool) {
	connector := treeEdge
	if last {
		connector = treeLast
	}

	name := n.name
	if n.isDir {
		name += "/"
	}
	line := prefix + connector + name

	if desc := describeFile(n.name); desc != "" && !n.isDir {
		// Box-drawing characters are multi-byte; pad on rune count.
		padding := descriptionColumn - len([]rune(line))
		if padding < 2 {
			padding = 2
		}
		line += strings.Repeat(" ", padding) + StyleDim.Render(desc)
	}
	sb.WriteString(line)
	sb.WriteString("\n")

	childPrefix := prefix + treeVert
	if last {
		childPrefix = prefix + treeSpace
	}
	for i, c := range n.children {
		c.render(sb, childPrefix, i == len(n.children)-1)
	}
}

// describeFile returns the description of a generated file name.
func describeFile(name string) string {
	for _, d := range fileDescriptions {
		if strings.HasSuffix(name, d.suffix) {
			return d.desc
		}
	}
	return ""
}
