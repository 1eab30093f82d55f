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

package nameval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-tpop/list"
)

func people() *list.Node[*Nameval] {
	return FromPairs(
		Nameval{"Nicholas", 0},
		Nameval{"Harlan", 1},
		Nameval{"Dario", 2},
		Nameval{"Rebecca", 3},
	)
}

func TestString(t *testing.T) {
	assert.Equal(t, "(Rob, 9001)", (&Nameval{Name: "Rob", Value: 9001}).String())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "(Nicholas, 0), (Harlan, 1), (Dario, 2), (Rebecca, 3)", Format(people()))
	assert.Equal(t, "", Format(nil))
}

func TestInsertAfterByName(t *testing.T) {
	head := people()
	misha := New("Misha", 4)

	require.NoError(t, list.InsertAfter(head, ByName("Dario"), misha))

	assert.Equal(t, "(Nicholas, 0), (Harlan, 1), (Dario, 2), (Misha, 4), (Rebecca, 3)", Format(head))
	dario := list.Find(head, ByName("Dario"))
	require.NotNil(t, dario)
	assert.Same(t, misha, dario.Next())
}

func TestInsertBeforeByName(t *testing.T) {
	head := people()

	head, err := list.InsertBefore(head, ByName("Nicholas"), New("Brian", 5))
	require.NoError(t, err)
	assert.Equal(t, "Brian", head.Value.Name)

	head, err = list.InsertBefore(head, ByName("Rebecca"), New("Rob", 6))
	require.NoError(t, err)
	assert.Equal(t, "(Brian, 5), (Nicholas, 0), (Harlan, 1), (Dario, 2), (Rob, 6), (Rebecca, 3)", Format(head))

	_, err = list.InsertBefore(head, ByName("nicholas"), New("Nobody", 7))
	assert.ErrorIs(t, err, list.ErrNotFound, "matching is exact")
}

func TestSplitByName(t *testing.T) {
	head := people()
	front, back, err := list.Split(head, ByName("Dario"))
	require.NoError(t, err)
	assert.Equal(t, "(Nicholas, 0), (Harlan, 1)", Format(front))
	assert.Equal(t, "(Dario, 2), (Rebecca, 3)", Format(back))

	merged := list.Merge(front, back)
	assert.Equal(t, "(Nicholas, 0), (Harlan, 1), (Dario, 2), (Rebecca, 3)", Format(merged))
}

func TestReverseKeepsPayloads(t *testing.T) {
	head := people()
	payloads := list.Values(head)

	head = list.ReverseRecursive(head)
	assert.Equal(t, "(Rebecca, 3), (Dario, 2), (Harlan, 1), (Nicholas, 0)", Format(head))

	head = list.ReverseIterative(head)
	for i, nv := range list.Values(head) {
		assert.Same(t, payloads[i], nv)
	}
}

func TestReleaseLeavesPayloads(t *testing.T) {
	head := people()
	first := head.Value
	list.Release(head)
	assert.Nil(t, head.Next())
	assert.Equal(t, &Nameval{"Nicholas", 0}, first)
}
