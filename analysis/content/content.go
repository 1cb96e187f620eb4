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

// Package content extracts shared things out of a parsed chat table:
// links, media-placeholder mentions, document filenames, and Google Maps
// location pins, each with their sender and timestamp.
package content

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"mvdan.cc/xurls/v2"

	"github.com/chatsift/chatsift/chatlog"
)

var (
	urlMatcher = xurls.Relaxed()

	documentFilename = regexp.MustCompile(`(?i)\b[\w\-.]+\.(pdf|apk|docx?|xlsx?|pptx?|zip|rar|mp3|mp4|jpg|jpeg|png|csv|txt)\b`)
	locationURL      = regexp.MustCompile(`https://maps\.google\.com/\?q=(-?[0-9.]+),(-?[0-9.]+)`)
)

// mediaKinds classify placeholder messages by what was attached.
// Matching is on the full trimmed message, case-insensitively.
var mediaKinds = []struct {
	kind    string
	matches *regexp.Regexp
}{
	{"image", regexp.MustCompile(`(?i)^(image omitted|photo omitted|<media omitted>|media omitted)$`)},
	{"video", regexp.MustCompile(`(?i)^video omitted$`)},
	{"document", regexp.MustCompile(`(?i)^document omitted$`)},
	{"audio", regexp.MustCompile(`(?i)^audio omitted$`)},
	{"contact", regexp.MustCompile(`(?i)^contact card omitted$`)},
}

// Link is a URL shared in the chat.
type Link struct {
	User string    `json:"user"`
	Date time.Time `json:"date"`
	URL  string    `json:"url"`
}

// Links returns every URL shared in the table, in source order.
func Links(table *chatlog.Table) []Link {
	var links []Link
	for _, row := range table.Messages() {
		for _, url := range urlMatcher.FindAllString(row.Message, -1) {
			links = append(links, Link{User: row.User, Date: row.Date, URL: url})
		}
	}
	return links
}

// LinksByUser counts shared links per sender, most first.
func LinksByUser(table *chatlog.Table) []UserCount {
	counts := make(map[string]int)
	for _, link := range Links(table) {
		counts[link.User]++
	}
	result := make([]UserCount, 0, len(counts))
	for user, n := range counts {
		result = append(result, UserCount{User: user, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].User < result[j].User
	})
	return result
}

// UserCount pairs a sender with a count of something they shared.
type UserCount struct {
	User  string `json:"user"`
	Count int    `json:"count"`
}

// MediaMention is a media type with how often it appears.
type MediaMention struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// MediaMentions counts media placeholders by kind, most first.
func MediaMentions(table *chatlog.Table) []MediaMention {
	counts := make(map[string]int)
	for _, row := range table.Messages() {
		trimmed := strings.TrimSpace(row.Message)
		for _, mk := range mediaKinds {
			if mk.matches.MatchString(trimmed) {
				counts[mk.kind]++
				break
			}
		}
	}
	result := make([]MediaMention, 0, len(counts))
	for kind, n := range counts {
		result = append(result, MediaMention{Type: kind, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Type < result[j].Type
	})
	return result
}

// Document is a filename mentioned in a message.
type Document struct {
	User     string    `json:"user"`
	Date     time.Time `json:"date"`
	Filename string    `json:"filename"`
	Message  string    `json:"message"`
}

// Documents returns filename mentions (by known document extensions)
// with their sender, timestamp, and surrounding message.
func Documents(table *chatlog.Table) []Document {
	var docs []Document
	for _, row := range table.Messages() {
		for _, filename := range documentFilename.FindAllString(row.Message, -1) {
			docs = append(docs, Document{
				User:     row.User,
				Date:     row.Date,
				Filename: filename,
				Message:  row.Message,
			})
		}
	}
	return docs
}

// Location is a shared Google Maps pin.
type Location struct {
	User      string    `json:"user"`
	Date      time.Time `json:"date"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	URL       string    `json:"url"`
}

// Locations returns shared location pins with their coordinates.
func Locations(table *chatlog.Table) []Location {
	var locations []Location
	for _, row := range table.Messages() {
		for _, m := range locationURL.FindAllStringSubmatch(row.Message, -1) {
			lat, latErr := strconv.ParseFloat(m[1], 64)
			lon, lonErr := strconv.ParseFloat(m[2], 64)
			if latErr != nil || lonErr != nil {
				continue
			}
			locations = append(locations, Location{
				User:      row.User,
				Date:      row.Date,
				Latitude:  lat,
				Longitude: lon,
				URL:       m[0],
			})
		}
	}
	return locations
}
