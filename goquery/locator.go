package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/kcparse"
	"golang.org/x/net/html"
)

// DefaultContainerSelector is used when a profile names no container scope.
const DefaultContainerSelector = "div"

// FindRoot returns the carousel root for profile. The profile-specific root
// is preferred; the first generic carousel marker is used otherwise. The
// returned selection is empty if the document has no carousel.
func FindRoot(doc *goquery.Document, profile kcparse.Profile) *goquery.Selection {
	if profile.RootSelector != "" {
		if root := doc.Find(profile.RootSelector).First(); root.Length() > 0 {
			return root
		}
	}
	return doc.Find(kcparse.MarkerSelector).First()
}

// FindContainers returns the innermost nodes under root that contain both a
// link and an image. Nodes are walked from a work queue seeded with every
// qualifying descendant; a node with qualifying unvisited children defers to
// them, a node without is recorded and fans out to its qualifying siblings.
// Containers are returned in the order they were recorded.
func FindContainers(root *goquery.Selection, selector string) []*goquery.Selection {
	if root == nil || root.Length() == 0 {
		return nil
	}
	if selector == "" {
		selector = DefaultContainerSelector
	}

	visited := make(map[*html.Node]struct{})
	recorded := make(map[*html.Node]struct{})

	var queue []*goquery.Selection
	root.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if hasLinkAndImage(s) {
			queue = append(queue, s)
		}
	})

	var containers []*goquery.Selection
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		node := current.Get(0)
		if _, ok := visited[node]; ok {
			continue
		}
		visited[node] = struct{}{}
		if !hasLinkAndImage(current) {
			continue
		}

		children := unvisited(current.ChildrenFiltered(selector), visited)
		if len(children) > 0 {
			queue = append(queue, children...)
			continue
		}

		if _, ok := recorded[node]; !ok {
			recorded[node] = struct{}{}
			containers = append(containers, current)
		}
		queue = append(queue, unvisited(current.SiblingsFiltered(selector), visited)...)
	}

	return containers
}

// unvisited splits sel into single-node selections that qualify as
// containers and have not been visited yet.
func unvisited(sel *goquery.Selection, visited map[*html.Node]struct{}) []*goquery.Selection {
	var out []*goquery.Selection
	sel.Each(func(_ int, s *goquery.Selection) {
		if _, ok := visited[s.Get(0)]; ok {
			return
		}
		if hasLinkAndImage(s) {
			out = append(out, s)
		}
	})
	return out
}

// hasLinkAndImage reports whether s has at least one anchor and one image
// among its descendants.
func hasLinkAndImage(s *goquery.Selection) bool {
	return s.Find("a").Length() > 0 && s.Find("img").Length() > 0
}
