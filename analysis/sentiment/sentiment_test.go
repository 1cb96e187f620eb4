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

package sentiment

import (
	"context"
	"testing"

	"github.com/chatsift/chatsift/chatlog"
)

func TestScoreText(t *testing.T) {
	analyzer := NewAnalyzer()

	tests := []struct {
		text string
		want string
	}{
		{"I love this, it is absolutely wonderful!", "positive"},
		{"This is terrible, I hate it so much.", "negative"},
		{"The meeting is at three.", "neutral"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			score := analyzer.ScoreText(tt.text)
			if score.Label != tt.want {
				t.Fatalf("label for %q: got %s (compound %f) want %s", tt.text, score.Label, score.Compound, tt.want)
			}
			if score.Compound < -1 || score.Compound > 1 {
				t.Fatalf("compound out of range: %f", score.Compound)
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	transcript := "5/1/24, 9:00 am - Alice: I love this group!\n" +
		"5/1/24, 9:01 am - Bob: meh\n"
	table, err := chatlog.Parse(context.Background(), "chat.txt", []byte(transcript))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}

	scored := NewAnalyzer().Analyze(table)
	if len(scored) != table.Len() {
		t.Fatalf("expected one score per row: %d vs %d", len(scored), table.Len())
	}
	if scored[0].User != "Alice" || scored[0].Label != "positive" {
		t.Fatalf("first scored row wrong: %+v", scored[0])
	}
}
