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

// Command sortbench times the quicksorts of package sort against each other,
// against the reference exchange sort, and against slices.Sort.
//
// Usage:
//
//	sortbench <count> <attempts>
//	sortbench 10000 20 --algorithms recursive,iterative --patterns random,sorted
//	sortbench 10 1 --sanity                # print small before/after arrays first
//	SORTBENCH_SEED=7 sortbench 100000 5 -v # reproducible inputs and pivots
//
// Every flag can also be set through a SORTBENCH_* environment variable or a
// .env file given with --env-file. Each sorted array is verified; an unsorted
// result aborts the run with exit status 1.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("sortbench failed")
		os.Exit(1)
	}
}
