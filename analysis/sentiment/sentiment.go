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

// Package sentiment scores messages with VADER. Scores are an additive
// extension of the parsed table; the table itself is never modified.
package sentiment

import (
	govader "github.com/jonreiter/govader"

	"github.com/chatsift/chatsift/chatlog"
)

// Label thresholds on the compound score, same cutoffs VADER's authors
// recommend.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Score is a per-message sentiment result. Negative, Neutral, and
// Positive are proportions in [0,1]; Compound is the normalized sum in
// [-1,1]; Label is "positive", "negative", or "neutral".
type Score struct {
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
	Compound float64 `json:"compound"`
	Label    string  `json:"sentiment"`
}

// Scored pairs a table row with its sentiment.
type Scored struct {
	chatlog.Message
	Score
}

// Analyzer scores message text. It is stateless after construction and
// safe to reuse across tables.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// ScoreText scores a single message's original, uncleaned text.
func (a *Analyzer) ScoreText(text string) Score {
	s := a.vader.PolarityScores(text)
	return Score{
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Positive: s.Positive,
		Compound: s.Compound,
		Label:    label(s.Compound),
	}
}

// Analyze scores every row of the table in source order.
func (a *Analyzer) Analyze(table *chatlog.Table) []Scored {
	rows := table.Messages()
	scored := make([]Scored, len(rows))
	for i, row := range rows {
		scored[i] = Scored{Message: row, Score: a.ScoreText(row.Message)}
	}
	return scored
}

func label(compound float64) string {
	switch {
	case compound > positiveThreshold:
		return "positive"
	case compound < negativeThreshold:
		return "negative"
	default:
		return "neutral"
	}
}
