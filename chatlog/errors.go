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

import "errors"

// Classified ingestion failures. All three are fatal for the upload that
// produced them; check with errors.Is so callers can tell a wrong file type
// from an empty chat.
var (
	// ErrUnreadableArchive means the upload looked like an archive but
	// could not be opened, or it contained no transcript (.txt) entry.
	ErrUnreadableArchive = errors.New("unreadable archive")

	// ErrUnsupportedFormat means neither known export convention was
	// detected in the transcript text.
	ErrUnsupportedFormat = errors.New("unsupported chat export format")

	// ErrNoMessages means the format was recognized but segmentation
	// produced no usable messages (e.g. an empty or truncated export).
	ErrNoMessages = errors.New("no messages found")
)
