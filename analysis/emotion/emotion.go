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

// Package emotion tags messages with a coarse emotion label. Providers
// are tried in order (local lexicon, then a hosted model); when none can
// answer, the guaranteed fallback is the neutral label. Classification
// never returns an error past this package's boundary.
package emotion

import (
	"context"

	"go.uber.org/zap"

	"github.com/chatsift/chatsift/chatlog"
)

// Neutral is the guaranteed fallback label.
const Neutral = "neutral"

// Classifier is one capability provider in the fallback chain. A
// provider that cannot classify the text returns ok=false (or an error);
// either way the chain moves on to the next provider.
type Classifier interface {
	Classify(ctx context.Context, text string) (label string, ok bool, err error)
}

// Detector runs an ordered chain of classifiers with the neutral
// fallback at the end.
type Detector struct {
	chain []Classifier
	log   *zap.Logger
}

// NewDetector builds a detector trying the given providers in order.
// With no providers, every message is Neutral.
func NewDetector(providers ...Classifier) *Detector {
	return &Detector{chain: providers, log: chatlog.Log.Named("emotion")}
}

// Detect labels one message. It never fails: provider errors are logged
// and demoted to a pass, and the chain bottoms out at Neutral.
func (d *Detector) Detect(ctx context.Context, text string) string {
	for _, provider := range d.chain {
		label, ok, err := provider.Classify(ctx, text)
		if err != nil {
			d.log.Debug("emotion provider failed, falling back", zap.Error(err))
			continue
		}
		if ok && label != "" {
			return label
		}
	}
	return Neutral
}

// Labeled pairs a table row with its emotion label.
type Labeled struct {
	chatlog.Message
	Emotion string `json:"emotion"`
}

// Analyze labels every row of the table in source order.
func (d *Detector) Analyze(ctx context.Context, table *chatlog.Table) []Labeled {
	rows := table.Messages()
	labeled := make([]Labeled, len(rows))
	for i, row := range rows {
		labeled[i] = Labeled{Message: row, Emotion: d.Detect(ctx, row.Message)}
	}
	return labeled
}
