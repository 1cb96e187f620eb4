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

package chatlog

import (
	"testing"
	"time"
)

func TestParseStampAndroid(t *testing.T) {
	tests := []struct {
		name  string
		stamp string
		want  time.Time
	}{
		{
			name:  "12h lowercase",
			stamp: "12/5/21, 9:32 pm",
			want:  time.Date(2021, time.May, 12, 21, 32, 0, 0, time.UTC),
		},
		{
			name:  "12h uppercase",
			stamp: "12/5/21, 9:32 PM",
			want:  time.Date(2021, time.May, 12, 21, 32, 0, 0, time.UTC),
		},
		{
			name:  "24h four-digit year",
			stamp: "02/01/2025, 13:27",
			want:  time.Date(2025, time.January, 2, 13, 27, 0, 0, time.UTC),
		},
		{
			name:  "day-first ordering",
			stamp: "5/1/24, 9:00 am",
			want:  time.Date(2024, time.January, 5, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace",
			stamp: "  5/1/24, 9:00 am ",
			want:  time.Date(2024, time.January, 5, 9, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseStamp(tt.stamp, androidFormat.layouts)
			if !got.Equal(tt.want) {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestParseStampIPhone(t *testing.T) {
	tests := []struct {
		name  string
		stamp string
		want  time.Time
	}{
		{
			name:  "12h with seconds",
			stamp: "01/01/25, 8:31:54 AM",
			want:  time.Date(2025, time.January, 1, 8, 31, 54, 0, time.UTC),
		},
		{
			name:  "12h without seconds",
			stamp: "01/01/25, 8:31 AM",
			want:  time.Date(2025, time.January, 1, 8, 31, 0, 0, time.UTC),
		},
		{
			name:  "24h with seconds",
			stamp: "12/5/21, 21:32:07",
			want:  time.Date(2021, time.May, 12, 21, 32, 7, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseStamp(tt.stamp, iphoneFormat.layouts)
			if !got.Equal(tt.want) {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}

// Layouts with seconds must be tried before layouts without, so a stamp
// carrying seconds keeps its full precision.
func TestParseStampLayoutPrecedence(t *testing.T) {
	got := parseStamp("5/1/24, 9:00:30 am", iphoneFormat.layouts)
	if got.Second() != 30 {
		t.Fatalf("seconds silently truncated: got %v", got)
	}
}

func TestParseStampUnparseable(t *testing.T) {
	for _, stamp := range []string{"", "not a date", "99/99/99, 99:99", "2025-01-02 13:27"} {
		if got := parseStamp(stamp, androidFormat.layouts); !got.IsZero() {
			t.Fatalf("expected zero time for %q, got %v", stamp, got)
		}
	}
}
