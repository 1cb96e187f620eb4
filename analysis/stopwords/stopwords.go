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

// Package stopwords loads the token set excluded from word-frequency
// analysis.
package stopwords

import (
	"bufio"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/chatsift/chatsift/chatlog"
)

// Load reads a stopword file (one case-sensitive token per line, blank
// lines ignored) into a set. A missing or unreadable file is not an
// error: word-frequency analysis still works without one, so Load logs
// the condition and returns an empty set.
func Load(path string) map[string]struct{} {
	set := make(map[string]struct{})
	if path == "" {
		return set
	}

	file, err := os.Open(path)
	if err != nil {
		chatlog.Log.Named("stopwords").Warn("stopword file unavailable, continuing with empty set",
			zap.String("path", path),
			zap.Error(err))
		return set
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			set[word] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		chatlog.Log.Named("stopwords").Warn("reading stopword file", zap.String("path", path), zap.Error(err))
	}
	return set
}
