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
	"regexp"
)

// Convention identifies which device's export style produced a transcript.
type Convention int

const (
	ConventionUnknown Convention = iota
	ConventionAndroid            // 02/01/2025, 13:27 - Name: Message
	ConventionIPhone             // [01/01/25, 8:31:54 AM] Name: Message
)

func (c Convention) String() string {
	switch c {
	case ConventionAndroid:
		return "android"
	case ConventionIPhone:
		return "iphone"
	}
	return "unknown"
}

// Format is the tagged variant resolved once by format detection. It
// carries the splitting rule and the ordered candidate date layouts as
// data so later pipeline stages need no format-specific branching.
type Format struct {
	Convention Convention

	// split matches one message header; capture group 1 is the raw
	// timestamp string. Everything between one match and the next is
	// a single message body, which is what makes multi-line bodies
	// fold into their message instead of becoming separate rows.
	split *regexp.Regexp

	// layouts are tried in order when normalizing timestamps. More
	// specific layouts (with seconds) come before less specific ones
	// so precision is never silently truncated.
	layouts []string
}

var (
	androidHeader = regexp.MustCompile(`(?m)^\d{1,2}/\d{1,2}/\d{2,4},\s\d{1,2}:\d{2}(?:\s[APMapm]{2})?\s-\s`)
	iphoneHeader  = regexp.MustCompile(`(?m)^\[.*?\]\s`)

	androidFormat = Format{
		Convention: ConventionAndroid,
		split:      regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{2,4},\s\d{1,2}:\d{2}(?:\s?[APMapm]{2})?)\s-\s`),
		layouts: []string{
			"2/1/2006, 15:04",
			"2/1/2006, 3:04 pm",
			"2/1/06, 15:04",
			"2/1/06, 3:04 pm",
		},
	}

	iphoneFormat = Format{
		Convention: ConventionIPhone,
		split:      regexp.MustCompile(`\[(.*?)\]\s`),
		layouts: []string{
			"2/1/06, 3:04:05 pm",
			"2/1/06, 3:04 pm",
			"2/1/2006, 3:04:05 pm",
			"2/1/2006, 3:04 pm",
			"2/1/06, 15:04:05",
			"2/1/2006, 15:04:05",
			"2/1/06, 15:04",
			"2/1/2006, 15:04",
		},
	}
)

// DetectFormat classifies a transcript into one of the known export
// conventions. Detection is presence-based and checked in fixed priority
// order, Android before iPhone; the first header pattern found anywhere
// in the text wins. An unrecognized transcript is fatal for the upload.
func DetectFormat(text string) (Format, error) {
	if androidHeader.MatchString(text) {
		return androidFormat, nil
	}
	if iphoneHeader.MatchString(text) {
		return iphoneFormat, nil
	}
	return Format{Convention: ConventionUnknown}, fmt.Errorf("%w: no Android or iPhone message headers detected", ErrUnsupportedFormat)
}
