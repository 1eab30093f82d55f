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

// ReverseIterative reverses head in place and returns the new head, which is
// the former tail. It runs in O(n) time and O(1) extra space.
func ReverseIterative[T any](head *Node[T]) *Node[T] {
	var prev, next *Node[T]
	for p := head; p != nil; p = next {
		next = p.next
		p.next = prev
		prev = p
	}
	return prev
}

// ReverseRecursive reverses head in place and returns the new head. It
// produces exactly the same links as ReverseIterative but recurses once per
// node, so it needs O(n) stack.
func ReverseRecursive[T any](head *Node[T]) *Node[T] {
	if head == nil || head.next == nil {
		return head
	}

	second := head.next
	head.next = nil
	newHead := ReverseRecursive(second)
	// second is now the tail of the reversed remainder.
	second.next = head
	return newHead
}
