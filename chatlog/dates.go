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
	"strings"
	"time"
)

// parseStamp normalizes a raw timestamp string by trying each candidate
// layout in order and returning the first successful parse. Timestamps are
// timezone-naive; whatever wall time the exporting device wrote is what we
// keep. The zero time means no layout matched — the assembler drops (and
// counts) those rows, so a bad stamp never raises per-row errors.
//
// The stamp is lowercased first because exports write the meridiem as
// "am", "AM", or "a.m."-adjacent variants depending on device locale, and
// time.Parse matches the "pm" layout token case-sensitively.
func parseStamp(stamp string, layouts []string) time.Time {
	stamp = strings.ToLower(strings.TrimSpace(stamp))
	for _, layout := range layouts {
		if t, err := time.Parse(layout, stamp); err == nil {
			return t
		}
	}
	return time.Time{}
}
