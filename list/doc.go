// Package list provides a generic singly-linked list.
//
// A list is nothing more than a pointer to its head *Node[T]; nil is the
// empty list. Every operation works by rewiring next links and never copies
// payloads, except Copy, which allocates fresh nodes that carry the same
// values.
//
// # Ownership
//
// A node belongs to at most one list at a time. Operations that detach nodes
// (Split, Release) clear the detached tail's next link so two live lists never
// share a suffix. Payloads are never owned by the list: Release only unlinks
// nodes, and whatever Value points to remains the caller's business.
//
// Operations that take a list and return one, such as Merge or the reversals,
// consume their inputs: keep using the returned head, not the old ones.
//
// # Matching
//
// Key-based operations (Find, Split, InsertBefore, InsertAfter) take a
// Predicate, so the same machinery serves integer, string, or struct
// payloads:
//
//	head, err := list.InsertBefore(head, list.Equal[int]{Value: 3}, list.NewNode(7))
//	front, back, err := list.Split(head, list.Match(func(s string) bool {
//	    return strings.HasPrefix(s, "N")
//	}))
//
// A search that finds nothing returns ErrNotFound and leaves the list exactly
// as it was.
//
// # Example Usage
//
//	var head *list.Node[string]
//	head = list.PushFront(head, list.NewNode("Naomi"))
//	head = list.PushFront(head, list.NewNode("Lizzie"))
//	head = list.ReverseIterative(head)
//	list.Apply(head, func(n *list.Node[string], w io.Writer) {
//	    fmt.Fprintf(w, "(%s)\n", n.Value)
//	}, io.Writer(os.Stdout))
package list
