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
	"regexp"
	"strings"
)

// senderPrefix matches the shortest leading run of text up to the first
// colon-whitespace sequence. (?s) lets the sender span what would be a
// folded line break, matching how both export conventions write headers.
var senderPrefix = regexp.MustCompile(`(?s)^(.+?):\s`)

// splitSender separates a chunk body into sender and message text. System
// and group notifications ("Alice added Bob", encryption notices, ...)
// carry no "Name: " prefix in either convention, so a body with no match
// is attributed to the GroupNotification sentinel with the full original
// body as its message.
func splitSender(body string) (user, message string) {
	if m := senderPrefix.FindStringSubmatchIndex(body); m != nil {
		return strings.TrimSpace(body[m[2]:m[3]]), body[m[1]:]
	}
	return GroupNotification, body
}
