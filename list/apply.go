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

import "strings"

// Apply calls fn(node, arg) for every node of head in list order.
//
// fn is meant for side effects such as printing or accumulating into arg; it
// must not relink the list while Apply is walking it.
//
// Example: print integer payloads with a format string
//
//	list.Apply(head, func(n *list.Node[int], format string) {
//	    fmt.Printf(format, n.Value)
//	}, "(%d)\n")
func Apply[T, A any](head *Node[T], fn func(n *Node[T], arg A), arg A) {
	for p := head; p != nil; p = p.next {
		fn(p, arg)
	}
}

// Format renders head as a comma-separated sequence using str for each
// payload, e.g. "(Nicholas, 0), (Harlan, 1)". An empty list renders as "".
func Format[T any](head *Node[T], str func(T) string) string {
	var j joiner
	Apply(head, func(n *Node[T], j *joiner) {
		j.add(str(n.Value))
	}, &j)
	return j.b.String()
}

// joiner accumulates strings separated by ", ".
type joiner struct {
	b     strings.Builder
	count int
}

func (j *joiner) add(s string) {
	if j.count > 0 {
		j.b.WriteString(", ")
	}
	j.b.WriteString(s)
	j.count++
}
