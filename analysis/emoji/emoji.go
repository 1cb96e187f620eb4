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

// Package emoji tallies emoji usage across a parsed chat table.
package emoji

import (
	"sort"

	"github.com/forPelevin/gomoji"

	"github.com/chatsift/chatsift/chatlog"
)

// Count is one emoji with its number of occurrences.
type Count struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// Stats counts every emoji occurrence in the table's messages and
// returns them most-frequent first, truncated to topN (0 means all).
// Counting is per code point, so a ZWJ sequence tallies its visible
// components; that matches how people read "which emoji do we use most".
func Stats(table *chatlog.Table, topN int) []Count {
	counts := make(map[string]int)
	for _, row := range table.Messages() {
		for _, r := range row.Message {
			s := string(r)
			if gomoji.ContainsEmoji(s) {
				counts[s]++
			}
		}
	}

	result := make([]Count, 0, len(counts))
	for e, n := range counts {
		result = append(result, Count{Emoji: e, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Emoji < result[j].Emoji
	})
	if topN > 0 && len(result) > topN {
		result = result[:topN]
	}
	return result
}
