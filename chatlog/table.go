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
	"slices"
	"sort"
	"time"
)

// Message is one row of the parsed table. The calendar-part fields are
// derived from Date at assembly time for downstream grouping and are
// never independently mutated.
type Message struct {
	Date    time.Time `json:"date"`
	User    string    `json:"user"`
	Message string    `json:"message"`
	Year    int       `json:"year"`
	Month   string    `json:"month"`
	Day     int       `json:"day"`
	Hour    int       `json:"hour"`
	Minute  int       `json:"minute"`
}

func newMessage(date time.Time, user, body string) Message {
	return Message{
		Date:    date,
		User:    user,
		Message: body,
		Year:    date.Year(),
		Month:   date.Month().String(),
		Day:     date.Day(),
		Hour:    date.Hour(),
		Minute:  date.Minute(),
	}
}

// Table is the durable result of parsing one transcript. Rows keep their
// source order (transcripts are assumed chronological; out-of-order
// timestamps are preserved as-is, not re-sorted). The table is immutable
// once assembled: filter methods return new tables sharing no mutable
// state, and Messages returns a copy of the row slice.
type Table struct {
	messages []Message
	dropped  int
	format   Convention
}

// Len reports the number of retained rows.
func (t *Table) Len() int { return len(t.messages) }

// Dropped reports how many segments were discarded because their date
// could not be normalized or their body was empty. Exposed for
// diagnostics; drops are deliberate best-effort behavior, not errors.
func (t *Table) Dropped() int { return t.dropped }

// Format reports which export convention the transcript used.
func (t *Table) Format() Convention { return t.format }

// Messages returns a copy of all rows in source order.
func (t *Table) Messages() []Message {
	return slices.Clone(t.messages)
}

// Users returns the distinct human senders, sorted, excluding the
// group-notification sentinel.
func (t *Table) Users() []string {
	seen := make(map[string]struct{})
	var users []string
	for _, m := range t.messages {
		if m.User == GroupNotification {
			continue
		}
		if _, ok := seen[m.User]; !ok {
			seen[m.User] = struct{}{}
			users = append(users, m.User)
		}
	}
	sort.Strings(users)
	return users
}

// ByUser returns a table restricted to one sender. An empty user returns
// the receiver unchanged (the "overall" view).
func (t *Table) ByUser(user string) *Table {
	if user == "" {
		return t
	}
	return t.filter(func(m Message) bool { return m.User == user })
}

// Between returns a table restricted to rows within the inclusive date
// range. A zero bound leaves that end open.
func (t *Table) Between(from, to time.Time) *Table {
	if from.IsZero() && to.IsZero() {
		return t
	}
	return t.filter(func(m Message) bool {
		if !from.IsZero() && m.Date.Before(from) {
			return false
		}
		if !to.IsZero() && m.Date.After(to) {
			return false
		}
		return true
	})
}

func (t *Table) filter(keep func(Message) bool) *Table {
	var kept []Message
	for _, m := range t.messages {
		if keep(m) {
			kept = append(kept, m)
		}
	}
	return &Table{messages: kept, dropped: t.dropped, format: t.format}
}
