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

package content

import (
	"context"
	"testing"

	"github.com/chatsift/chatsift/chatlog"
)

func parseFixture(t *testing.T, transcript string) *chatlog.Table {
	t.Helper()
	table, err := chatlog.Parse(context.Background(), "chat.txt", []byte(transcript))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return table
}

func TestLinks(t *testing.T) {
	table := parseFixture(t, "5/1/24, 9:00 am - Alice: see https://example.com/a and https://example.com/b\n"+
		"5/1/24, 9:01 am - Bob: no links here\n"+
		"5/1/24, 9:02 am - Bob: one more https://example.org\n")

	links := Links(table)
	if len(links) != 3 {
		t.Fatalf("expected 3 links, got %v", links)
	}
	if links[0].User != "Alice" || links[0].URL != "https://example.com/a" {
		t.Fatalf("first link wrong: %+v", links[0])
	}

	byUser := LinksByUser(table)
	if len(byUser) != 2 || byUser[0].User != "Alice" || byUser[0].Count != 2 {
		t.Fatalf("per-user counts wrong: %+v", byUser)
	}
}

func TestMediaMentions(t *testing.T) {
	table := parseFixture(t, "5/1/24, 9:00 am - Alice: image omitted\n"+
		"5/1/24, 9:01 am - Bob: <Media omitted>\n"+
		"5/1/24, 9:02 am - Bob: video omitted\n"+
		"5/1/24, 9:03 am - Bob: the video omitted a scene\n")

	mentions := MediaMentions(table)
	got := make(map[string]int)
	for _, m := range mentions {
		got[m.Type] = m.Count
	}
	if got["image"] != 2 {
		t.Fatalf("image mentions: got %d want 2 (placeholders only)", got["image"])
	}
	if got["video"] != 1 {
		t.Fatalf("video mentions: got %d want 1; prose must not count", got["video"])
	}
}

func TestDocuments(t *testing.T) {
	table := parseFixture(t, "5/1/24, 9:00 am - Alice: sending report-v2.pdf now\n"+
		"5/1/24, 9:01 am - Bob: got it, also need data.csv\n"+
		"5/1/24, 9:02 am - Bob: nothing attached here\n")

	docs := Documents(table)
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %v", docs)
	}
	if docs[0].Filename != "report-v2.pdf" || docs[0].User != "Alice" {
		t.Fatalf("first document wrong: %+v", docs[0])
	}
	if docs[1].Filename != "data.csv" {
		t.Fatalf("second document wrong: %+v", docs[1])
	}
}

func TestLocations(t *testing.T) {
	table := parseFixture(t, "5/1/24, 9:00 am - Alice: I'm here https://maps.google.com/?q=48.858370,2.294481\n"+
		"5/1/24, 9:01 am - Bob: on my way\n")

	locations := Locations(table)
	if len(locations) != 1 {
		t.Fatalf("expected 1 location, got %v", locations)
	}
	loc := locations[0]
	if loc.User != "Alice" || loc.Latitude != 48.858370 || loc.Longitude != 2.294481 {
		t.Fatalf("location wrong: %+v", loc)
	}
}
