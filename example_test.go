// Copyright 2026 The bytediff Authors
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

package bytediff_test

import (
	"fmt"

	"bytediff.dev"
)

func Example() {
	edits := bytediff.Diff("hallo daar", "hallo hier")
	for _, e := range edits {
		fmt.Printf("%s %q\n", e.Op, e.Data)
	}
	// Output:
	// Equal "hallo "
	// Delete "daa"
	// Insert "hie"
	// Equal "r"
}

func ExampleText1() {
	edits := bytediff.Diff("abcXYZ", "XYZ")
	fmt.Printf("%s\n", bytediff.Text1(edits))
	fmt.Printf("%s\n", bytediff.Text2(edits))
	// Output:
	// abcXYZ
	// XYZ
}
