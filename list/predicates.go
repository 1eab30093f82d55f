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

// Predicate decides whether a payload matches a search key.
type Predicate[T any] interface {
	// Test returns true if value satisfies the predicate.
	Test(value T) bool
}

// Equal matches values where v == Value.
type Equal[T comparable] struct {
	Value T
}

func (p Equal[T]) Test(value T) bool {
	return value == p.Value
}

// NotEqual matches values where v != Value.
type NotEqual[T comparable] struct {
	Value T
}

func (p NotEqual[T]) Test(value T) bool {
	return value != p.Value
}

// KeyEqual matches values whose key, as extracted by Key, equals Value.
//
// Example: match a struct payload by its name field
//
//	byName := list.KeyEqual[*Person, string]{
//	    Key:   func(p *Person) string { return p.Name },
//	    Value: "Dario",
//	}
type KeyEqual[T any, K comparable] struct {
	Key   func(T) K
	Value K
}

func (p KeyEqual[T, K]) Test(value T) bool {
	return p.Key(value) == p.Value
}

// FuncPredicate wraps a callback function as a Predicate.
type FuncPredicate[T any] struct {
	Fn func(T) bool
}

func (p FuncPredicate[T]) Test(value T) bool {
	return p.Fn(value)
}

// Match returns a Predicate that calls fn.
func Match[T any](fn func(T) bool) Predicate[T] {
	return FuncPredicate[T]{Fn: fn}
}
