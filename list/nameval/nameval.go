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

// Package nameval provides the name/value payload used by the list
// exercises, together with helpers to build and search lists of them.
package nameval

import (
	"fmt"

	"github.com/ajroetker/go-tpop/list"
)

// Nameval is a named integer value.
type Nameval struct {
	Name  string
	Value int
}

// String renders nv as "(Name, Value)".
func (nv *Nameval) String() string {
	return fmt.Sprintf("(%s, %d)", nv.Name, nv.Value)
}

// New returns a detached list node carrying a new Nameval.
func New(name string, value int) *list.Node[*Nameval] {
	return list.NewNode(&Nameval{Name: name, Value: value})
}

// ByName matches a Nameval whose Name equals name exactly.
func ByName(name string) list.Predicate[*Nameval] {
	return list.KeyEqual[*Nameval, string]{
		Key:   func(nv *Nameval) string { return nv.Name },
		Value: name,
	}
}

// FromPairs builds a list with a fresh *Nameval for each pair, in order.
func FromPairs(pairs ...Nameval) *list.Node[*Nameval] {
	var head *list.Node[*Nameval]
	for i := len(pairs) - 1; i >= 0; i-- {
		head = list.PushFront(head, New(pairs[i].Name, pairs[i].Value))
	}
	return head
}

// Format renders head as "(Nicholas, 0), (Harlan, 1)".
func Format(head *list.Node[*Nameval]) string {
	return list.Format(head, (*Nameval).String)
}
