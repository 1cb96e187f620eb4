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

package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/chatsift/chatsift/chatlog"
)

// Frequency selects the bucketing period for Timeline.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

// Bucket is one period of a timeline with its message count. Period is a
// sortable label: 2006-01-02 for daily, 2006-W02 for weekly (ISO week),
// 2006-01 for monthly.
type Bucket struct {
	Period   string `json:"period"`
	Messages int    `json:"message_count"`
}

// Timeline buckets the table's messages by calendar period, returned in
// chronological order. Gaps (periods with no messages) are not filled in.
func Timeline(table *chatlog.Table, freq Frequency) []Bucket {
	counts := make(map[string]int)
	for _, row := range table.Messages() {
		counts[periodLabel(row.Date, freq)]++
	}

	buckets := make([]Bucket, 0, len(counts))
	for period, n := range counts {
		buckets = append(buckets, Bucket{Period: period, Messages: n})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Period < buckets[j].Period })
	return buckets
}

func periodLabel(date time.Time, freq Frequency) string {
	switch freq {
	case Weekly:
		year, week := date.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case Monthly:
		return date.Format("2006-01")
	default:
		return date.Format("2006-01-02")
	}
}

// HourlyActivity returns message counts for each hour of day, 0 through
// 23, as a fixed-size slice indexed by hour.
func HourlyActivity(table *chatlog.Table) [24]int {
	var hours [24]int
	for _, row := range table.Messages() {
		hours[row.Hour]++
	}
	return hours
}

// WeekdayActivity returns message counts keyed by weekday name, Sunday
// through Saturday in calendar order.
func WeekdayActivity(table *chatlog.Table) []Bucket {
	var days [7]int
	for _, row := range table.Messages() {
		days[row.Date.Weekday()]++
	}
	buckets := make([]Bucket, 7)
	for i := range days {
		buckets[i] = Bucket{Period: time.Weekday(i).String(), Messages: days[i]}
	}
	return buckets
}
