/*
	Chatsift
	Copyright (c) 2024 Chatsift contributors

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU Affero General Public License as published
	by the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU Affero General Public License for more details.

	You should have received a copy of the GNU Affero General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package stopwords

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stopwords.txt")
	if err := os.WriteFile(path, []byte("the\n  and  \n\nThe\n"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	set := Load(path)
	if len(set) != 3 {
		t.Fatalf("expected 3 tokens, got %v", set)
	}
	for _, want := range []string{"the", "and", "The"} {
		if _, ok := set[want]; !ok {
			t.Fatalf("missing token %q; tokens are case-sensitive", want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	set := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if set == nil || len(set) != 0 {
		t.Fatalf("missing file should yield empty set, got %v", set)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if set := Load(""); set == nil || len(set) != 0 {
		t.Fatalf("empty path should yield empty set, got %v", set)
	}
}
