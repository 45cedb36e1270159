// Package keymap holds the chord table: multi-key sequences resolving to
// command intents, plus the grouped help listings rendered while a chord
// is in progress.
package keymap

import (
	"sort"
	"strings"

	"github.com/anthrofract/jjdag/internal/ui/intents"
)

// Entry is one help row: a key label and what pressing the key does.
type Entry struct {
	Key         string
	Description string
}

// Group is a titled list of help entries.
type Group struct {
	Title   string
	Entries []Entry
}

// Node is one vertex of the chord trie. An interior node opens a menu of
// its children, an action node carries the intent to dispatch. A node can
// be both: its intent runs while its children stay reachable, which is how
// saving the selection keeps the destination picker on the chord.
type Node struct {
	Intent intents.Intent

	children map[string]*Node
	groups   []*Group
}

// Child returns the node bound to key, or nil.
func (n *Node) Child(key string) *Node {
	return n.children[key]
}

// Lookup follows the chord from n, returning nil as soon as a key is
// unbound.
func (n *Node) Lookup(chord []string) *Node {
	current := n
	for _, key := range chord {
		current = current.Child(key)
		if current == nil {
			return nil
		}
	}
	return current
}

func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

// Groups lists the help for n's children, entries sorted case-insensitively
// by description.
func (n *Node) Groups() []Group {
	groups := make([]Group, 0, len(n.groups))
	for _, g := range n.groups {
		entries := make([]Entry, len(g.Entries))
		copy(entries, g.Entries)
		sort.SliceStable(entries, func(i, j int) bool {
			return strings.ToLower(entries[i].Description) < strings.ToLower(entries[j].Description)
		})
		groups = append(groups, Group{Title: g.Title, Entries: entries})
	}
	return groups
}

func (n *Node) add(group, key, description string, child *Node) *Node {
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	n.children[key] = child
	g := n.group(group)
	g.Entries = append(g.Entries, Entry{Key: keyLabel(key), Description: description})
	return child
}

func (n *Node) group(title string) *Group {
	for _, g := range n.groups {
		if g.Title == title {
			return g
		}
	}
	g := &Group{Title: title}
	n.groups = append(n.groups, g)
	return g
}

// menu adds an interior child that only opens a submenu.
func (n *Node) menu(group, key, description string) *Node {
	return n.add(group, key, description, &Node{})
}

// action adds a leaf child dispatching intent.
func (n *Node) action(group, key, description string, intent intents.Intent) {
	n.add(group, key, description, &Node{Intent: intent})
}

// destination adds a two-step pick: the child saves the selection and keeps
// the chord alive, and its enter leaf dispatches intent against the saved
// revision and whatever is selected by then.
func (n *Node) destination(group, key, description, menu string, intent intents.Intent) {
	save := n.add(group, key, description, &Node{Intent: intents.SaveSelection{}})
	save.action(menu, "enter", "Select destination", intent)
}

// keyLabel is the help display form of an input key name.
func keyLabel(key string) string {
	if key == "enter" {
		return "Enter"
	}
	return key
}
