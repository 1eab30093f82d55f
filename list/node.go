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

// Node is a single element of a list. Value is the caller-owned payload.
type Node[T any] struct {
	Value T
	next  *Node[T]
}

// NewNode returns a detached node carrying v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// Next returns the node following n, or nil at the end of the list.
func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		return nil
	}
	return n.next
}

// PushFront links node in front of head and returns node as the new head.
func PushFront[T any](head, node *Node[T]) *Node[T] {
	node.next = head
	return node
}

// Append links node after the last node of head and returns the head of the
// resulting list, which is node itself when head is empty.
func Append[T any](head, node *Node[T]) *Node[T] {
	if head == nil {
		return node
	}
	tail(head).next = node
	return head
}

// Copy returns a new list of freshly allocated nodes holding the same values,
// in the same order, as head. Relinking the copy never affects head.
func Copy[T any](head *Node[T]) *Node[T] {
	var first, last *Node[T]
	for p := head; p != nil; p = p.next {
		n := NewNode(p.Value)
		if last == nil {
			first = n
		} else {
			last.next = n
		}
		last = n
	}
	return first
}

// Merge links b after the last node of a and returns the combined list.
// If a is empty the result is b unchanged. Both arguments are consumed.
func Merge[T any](a, b *Node[T]) *Node[T] {
	if a == nil {
		return b
	}
	tail(a).next = b
	return a
}

// Release unlinks every node of head. The payloads are left alone: freeing
// whatever they refer to is up to the caller.
func Release[T any](head *Node[T]) {
	var next *Node[T]
	for ; head != nil; head = next {
		next = head.next
		head.next = nil
	}
}

// FromValues builds a list holding vs in order.
func FromValues[T any](vs ...T) *Node[T] {
	var head *Node[T]
	for i := len(vs) - 1; i >= 0; i-- {
		head = PushFront(head, NewNode(vs[i]))
	}
	return head
}

// Values returns the payloads of head in list order.
func Values[T any](head *Node[T]) []T {
	var vs []T
	for p := head; p != nil; p = p.next {
		vs = append(vs, p.Value)
	}
	return vs
}

// Len returns the number of nodes in head.
func Len[T any](head *Node[T]) int {
	n := 0
	for p := head; p != nil; p = p.next {
		n++
	}
	return n
}

func tail[T any](head *Node[T]) *Node[T] {
	p := head
	for p.next != nil {
		p = p.next
	}
	return p
}
