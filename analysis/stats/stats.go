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

// Package stats computes aggregate statistics over a parsed chat table:
// message/word/media/link totals, busiest users, activity patterns, and
// timeline buckets. Everything here is a read-only pass over the table.
package stats

import (
	"sort"
	"strings"

	"mvdan.cc/xurls/v2"

	"github.com/chatsift/chatsift/chatlog"
)

// MediaTokens are the placeholder strings the exporters substitute for
// attached media. Matching is case-insensitive on the trimmed message.
// Extend as more locales show up.
var MediaTokens = map[string]struct{}{
	"<media omitted>":          {},
	"image omitted":            {},
	"video omitted":            {},
	"audio omitted":            {},
	"document omitted":         {},
	"sticker omitted":          {},
	"gif omitted":              {},
	"contact card omitted":     {},
	"this message was deleted": {},
}

var urlMatcher = xurls.Relaxed()

// Totals summarizes a table (or a per-user slice of one).
type Totals struct {
	Messages int `json:"total_messages"`
	Words    int `json:"total_words"`
	Media    int `json:"total_media_files"`
	Links    int `json:"total_links"`
}

// Fetch computes message, word, media, and link totals for the table.
// Filter to one user with table.ByUser first.
func Fetch(table *chatlog.Table) Totals {
	var totals Totals
	for _, row := range table.Messages() {
		totals.Messages++
		totals.Words += len(strings.Fields(row.Message))
		if IsMedia(row.Message) {
			totals.Media++
		}
		totals.Links += len(urlMatcher.FindAllString(row.Message, -1))
	}
	return totals
}

// IsMedia reports whether a message is a media placeholder rather than
// text the sender typed.
func IsMedia(message string) bool {
	_, ok := MediaTokens[strings.ToLower(strings.TrimSpace(message))]
	return ok
}

// UserActivity is one sender's share of the conversation.
type UserActivity struct {
	User     string  `json:"user"`
	Messages int     `json:"messages"`
	Percent  float64 `json:"percent"`
}

// BusyUsers returns senders ordered by message count with their
// contribution percentage, truncated to topN (0 means all). The
// group-notification sentinel is a pseudo-sender and is excluded.
func BusyUsers(table *chatlog.Table, topN int) []UserActivity {
	counts := make(map[string]int)
	var total int
	for _, row := range table.Messages() {
		if row.User == chatlog.GroupNotification {
			continue
		}
		counts[row.User]++
		total++
	}
	if total == 0 {
		return nil
	}

	users := make([]UserActivity, 0, len(counts))
	for user, n := range counts {
		users = append(users, UserActivity{
			User:     user,
			Messages: n,
			Percent:  float64(n) / float64(total) * 100,
		})
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Messages != users[j].Messages {
			return users[i].Messages > users[j].Messages
		}
		return users[i].User < users[j].User
	})
	if topN > 0 && len(users) > topN {
		users = users[:topN]
	}
	return users
}

// WordFrequencies tallies lowercase words across all messages, skipping
// stopwords, bare numbers, and media placeholders, and returns the topN
// most frequent (0 means all). Used for word clouds and common-word lists.
func WordFrequencies(table *chatlog.Table, stopwords map[string]struct{}, topN int) []WordCount {
	counts := make(map[string]int)
	for _, row := range table.Messages() {
		if row.User == chatlog.GroupNotification || IsMedia(row.Message) {
			continue
		}
		for _, word := range strings.Fields(strings.ToLower(row.Message)) {
			word = strings.Trim(word, ".,!?-_()[]{}")
			if word == "" || isNumeric(word) {
				continue
			}
			if _, ok := stopwords[word]; ok {
				continue
			}
			counts[word]++
		}
	}

	words := make([]WordCount, 0, len(counts))
	for word, n := range counts {
		words = append(words, WordCount{Word: word, Count: n})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})
	if topN > 0 && len(words) > topN {
		words = words[:topN]
	}
	return words
}

// WordCount is one entry of a word-frequency table.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
