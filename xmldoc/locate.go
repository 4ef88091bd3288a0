package xmldoc

import (
	"strings"

	"github.com/beevik/etree"
)

// Find returns el and every descendant of el whose local name is name, in
// depth-first document order.
func Find(el *etree.Element, name string) []*etree.Element {
	return FindSkipping(el, name)
}

// FindSkipping works like Find but does not descend into elements whose
// local name is listed in skip. A skipped element is never returned itself.
func FindSkipping(el *etree.Element, name string, skip ...string) []*etree.Element {
	if el == nil {
		return nil
	}
	var out []*etree.Element
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		if contains(skip, e.Tag) {
			return
		}
		if e.Tag == name {
			out = append(out, e)
		}
		for _, child := range e.ChildElements() {
			walk(child)
		}
	}
	walk(el)
	return out
}

// FindFirst returns the first match of Find, or nil.
func FindFirst(el *etree.Element, name string) *etree.Element {
	if els := Find(el, name); len(els) > 0 {
		return els[0]
	}
	return nil
}

// FindPath follows a chain of local names, each step searching all
// descendants of the previous match, and returns the final matches.
func FindPath(el *etree.Element, names ...string) []*etree.Element {
	current := []*etree.Element{el}
	for _, name := range names {
		var next []*etree.Element
		for _, c := range current {
			for _, child := range c.ChildElements() {
				next = append(next, Find(child, name)...)
			}
		}
		current = next
	}
	return current
}

// Children returns the direct children of el with the given local name.
func Children(el *etree.Element, name string) []*etree.Element {
	if el == nil {
		return nil
	}
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		if child.Tag == name {
			out = append(out, child)
		}
	}
	return out
}

// Child returns the first direct child with the given local name, or nil.
func Child(el *etree.Element, name string) *etree.Element {
	if els := Children(el, name); len(els) > 0 {
		return els[0]
	}
	return nil
}

// HasAncestor reports whether any ancestor of el has one of the given
// local names.
func HasAncestor(el *etree.Element, names ...string) bool {
	if len(names) == 0 {
		return false
	}
	for p := el.Parent(); p != nil; p = p.Parent() {
		if contains(names, p.Tag) {
			return true
		}
	}
	return false
}

// Attr returns the value of the first attribute whose local name is name,
// ignoring any prefix. Namespace declarations are never matched.
func Attr(el *etree.Element, name string) string {
	v, _ := LookupAttr(el, name)
	return v
}

// LookupAttr is Attr with an explicit presence result.
func LookupAttr(el *etree.Element, name string) (string, bool) {
	if el == nil {
		return "", false
	}
	for _, a := range el.Attr {
		if a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") {
			continue
		}
		if a.Key == name {
			return a.Value, true
		}
	}
	return "", false
}

// RawText returns the concatenated character data of el and all its
// descendants, untrimmed.
func RawText(el *etree.Element) string {
	if el == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		for _, tok := range e.Child {
			switch t := tok.(type) {
			case *etree.CharData:
				b.WriteString(t.Data)
			case *etree.Element:
				walk(t)
			}
		}
	}
	walk(el)
	return b.String()
}

// Text returns RawText trimmed of surrounding whitespace.
func Text(el *etree.Element) string {
	return strings.TrimSpace(RawText(el))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
