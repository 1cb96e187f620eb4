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
	"fmt"
	"strings"
)

// Chunk is a transient (timestamp string, body) pair cut out of the
// transcript by segmentation, before date normalization and sender
// splitting. The body still carries its "Name: " prefix, if any.
type Chunk struct {
	Stamp string
	Body  string
}

// segment partitions the transcript at every non-overlapping match of the
// format's splitting rule. Chunk i's body is everything between the end of
// match i and the start of match i+1 (or end of text), trimmed. Lines that
// don't start a new header are thereby folded into the preceding body with
// their line breaks intact.
//
// Zero matches is fatal, and distinct from an unsupported format:
// detection can succeed on a transcript whose content is empty or
// truncated past recognition.
func segment(text string, format Format) ([]Chunk, error) {
	matches := format.split.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no valid %s-style messages found", ErrNoMessages, format.Convention)
	}

	chunks := make([]Chunk, 0, len(matches))
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		chunks = append(chunks, Chunk{
			Stamp: text[m[2]:m[3]],
			Body:  strings.TrimSpace(text[m[1]:end]),
		})
	}

	return chunks, nil
}
