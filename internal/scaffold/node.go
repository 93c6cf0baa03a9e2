// Package scaffold materializes the NestJS module layout on disk.
package scaffold

// RootEntry is the entry name that materializes into the parent directory
// instead of a child directory.
const RootEntry = "root"

// Kind discriminates the variants of Node.
type Kind int

const (
	// DirNode ensures a directory exists without writing files.
	DirNode Kind = iota

	// FilesNode renders a list of files into its directory.
	FilesNode

	// TreeNode holds named child nodes.
	TreeNode
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case DirNode:
		return "dir"
	case FilesNode:
		return "files"
	case TreeNode:
		return "tree"
	default:
		return "unknown"
	}
}

// FileSpec names one file to render and the template it comes from.
type FileSpec struct {
	Filename   string
	TemplateID string
}

// Entry is a named child of a TreeNode.
type Entry struct {
	Name string
	Node Node
}

// Node is a declarative description of a directory's contents.
// Only the field matching Kind is meaningful.
type Node struct {
	Kind    Kind
	Files   []FileSpec
	Entries []Entry
}

// Dir returns a node that only ensures its directory exists.
func Dir() Node {
	return Node{Kind: DirNode}
}

// Files returns a node rendering files into its directory.
func Files(files ...FileSpec) Node {
	return Node{Kind: FilesNode, Files: files}
}

// Tree returns a node with ordered child entries.
func Tree(entries ...Entry) Node {
	return Node{Kind: TreeNode, Entries: entries}
}

// At pairs a name with a node for use in Tree.
func At(name string, node Node) Entry {
	return Entry{Name: name, Node: node}
}

// Lookup returns the entry named name, if n is a TreeNode holding it.
func (n Node) Lookup(name string) (Node, bool) {
	if n.Kind != TreeNode {
		return Node{}, false
	}
	for _, e := range n.Entries {
		if e.Name == name {
			return e.Node, true
		}
	}
	return Node{}, false
}
