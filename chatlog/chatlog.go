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

// Package chatlog turns exported WhatsApp chat transcripts into a structured,
// analyzable table of messages. It handles both known export conventions
// (Android "dash" headers and iPhone bracketed headers), multi-line message
// bodies, locale-variant timestamps, and zipped exports. Parsing is
// best-effort: rows whose timestamp cannot be normalized are dropped and
// counted rather than failing the whole ingestion.
package chatlog

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// GroupNotification is the sentinel sender for system and group events
// (joins, leaves, encryption notices, ...) which carry no "Name: " prefix
// in either export convention. User is never empty: a row either has a
// real sender or this sentinel.
const GroupNotification = "group_notification"

// Parse runs the full pipeline on an uploaded file: unwrap a possible
// archive, detect the export convention, segment the transcript into
// timestamped chunks, normalize dates, split senders from bodies, and
// assemble the final table.
//
// Fatal conditions are reported as wrapped sentinel errors
// (ErrUnreadableArchive, ErrUnsupportedFormat, ErrNoMessages) so callers
// can give an actionable message. Row-level date failures never surface
// as errors; they are counted on the returned table instead.
func Parse(ctx context.Context, filename string, data []byte) (*Table, error) {
	text, err := ExtractTranscript(ctx, filename, data)
	if err != nil {
		return nil, err
	}

	format, err := DetectFormat(text)
	if err != nil {
		return nil, err
	}

	chunks, err := segment(text, format)
	if err != nil {
		return nil, err
	}

	var messages []Message
	var dropped int
	for _, chunk := range chunks {
		date := parseStamp(chunk.Stamp, format.layouts)
		user, body := splitSender(chunk.Body)
		if date.IsZero() || body == "" {
			dropped++
			continue
		}
		messages = append(messages, newMessage(date, user, body))
	}

	if len(messages) == 0 {
		return nil, fmt.Errorf("%w: %d segment(s) matched but none had a parseable date and a message", ErrNoMessages, len(chunks))
	}

	Log.Info("parsed transcript",
		zap.String("filename", filename),
		zap.Stringer("format", format.Convention),
		zap.Int("messages", len(messages)),
		zap.Int("dropped", dropped))

	return &Table{messages: messages, dropped: dropped, format: format.Convention}, nil
}
