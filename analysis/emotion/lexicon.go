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

package emotion

import (
	"context"
	"strings"
)

// Lexicon is the local, always-available provider: a small keyword map
// onto the hosted model's label vocabulary. It answers only when a
// message contains a known cue word; everything else passes to the next
// provider. Crude, but free and offline.
type Lexicon struct {
	cues map[string]string
}

// NewLexicon returns the default English cue-word lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{cues: defaultCues}
}

// Classify implements Classifier. The first cue word found wins;
// matching is on lowercase whole words with common punctuation trimmed.
func (l *Lexicon) Classify(_ context.Context, text string) (string, bool, error) {
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?:;'\"()")
		if label, ok := l.cues[word]; ok {
			return label, true, nil
		}
	}
	return "", false, nil
}

// Labels follow the go_emotions vocabulary the hosted model uses.
var defaultCues = map[string]string{
	"love":       "love",
	"loved":      "love",
	"adore":      "love",
	"happy":      "joy",
	"glad":       "joy",
	"yay":        "joy",
	"awesome":    "admiration",
	"amazing":    "admiration",
	"great":      "admiration",
	"thanks":     "gratitude",
	"thank":      "gratitude",
	"grateful":   "gratitude",
	"sorry":      "remorse",
	"sad":        "sadness",
	"crying":     "sadness",
	"miss":       "sadness",
	"angry":      "anger",
	"furious":    "anger",
	"hate":       "anger",
	"annoyed":    "annoyance",
	"ugh":        "annoyance",
	"scared":     "fear",
	"afraid":     "fear",
	"worried":    "nervousness",
	"nervous":    "nervousness",
	"wow":        "surprise",
	"whoa":       "surprise",
	"confused":   "confusion",
	"why":        "curiosity",
	"curious":    "curiosity",
	"hope":       "optimism",
	"hopefully":  "optimism",
	"proud":      "pride",
	"excited":    "excitement",
	"lol":        "amusement",
	"haha":       "amusement",
	"lmao":       "amusement",
	"gross":      "disgust",
	"disgusting": "disgust",
}
