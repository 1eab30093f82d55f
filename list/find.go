// Copyright 2025 go-tpop Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package list

import "errors"

// ErrNotFound is returned by key-based operations when no node matches.
// The list is left unmodified whenever it is returned.
var ErrNotFound = errors.New("list: no node matches key")

// Find returns the first node of head whose value satisfies match, or nil.
func Find[T any](head *Node[T], match Predicate[T]) *Node[T] {
	for p := head; p != nil; p = p.next {
		if match.Test(p.Value) {
			return p
		}
	}
	return nil
}

// findWithPrev returns the first matching node and its predecessor. prev is
// nil when the match is head.
func findWithPrev[T any](head *Node[T], match Predicate[T]) (prev, found *Node[T]) {
	for p := head; p != nil; prev, p = p, p.next {
		if match.Test(p.Value) {
			return prev, p
		}
	}
	return nil, nil
}

// Split cuts head in front of the first node matching match.
//
// front is the part before the match, with its last next link cleared, and
// back starts at the matching node. When the match is head itself front is
// nil. If nothing matches, Split returns (head, nil, ErrNotFound) and the list
// is untouched.
func Split[T any](head *Node[T], match Predicate[T]) (front, back *Node[T], err error) {
	prev, found := findWithPrev(head, match)
	if found == nil {
		return head, nil, ErrNotFound
	}
	if prev == nil {
		return nil, found, nil
	}
	prev.next = nil
	return head, found, nil
}

// InsertBefore links node in front of the first node matching match and
// returns the head of the list, which is node itself when the match was the
// old head. If nothing matches it returns (head, ErrNotFound) and the list is
// untouched.
func InsertBefore[T any](head *Node[T], match Predicate[T], node *Node[T]) (*Node[T], error) {
	prev, found := findWithPrev(head, match)
	if found == nil {
		return head, ErrNotFound
	}
	node.next = found
	if prev == nil {
		return node, nil
	}
	prev.next = node
	return head, nil
}

// InsertAfter links node directly after the first node matching match.
// If nothing matches it returns ErrNotFound and the list is untouched.
func InsertAfter[T any](head *Node[T], match Predicate[T], node *Node[T]) error {
	found := Find(head, match)
	if found == nil {
		return ErrNotFound
	}
	// Order matters: take over the remainder before relinking found.
	node.next = found.next
	found.next = node
	return nil
}
