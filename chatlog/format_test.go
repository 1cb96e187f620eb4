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
	"errors"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Convention
		wantErr bool
	}{
		{
			name: "android 24h",
			text: "02/01/2025, 13:27 - Alice: hello\n",
			want: ConventionAndroid,
		},
		{
			name: "android 12h",
			text: "12/5/21, 9:32 pm - Bob: hi\n",
			want: ConventionAndroid,
		},
		{
			name: "iphone with seconds",
			text: "[01/01/25, 8:31:54 AM] Alice: hello\n",
			want: ConventionIPhone,
		},
		{
			name: "iphone without seconds",
			text: "[01/01/25, 8:31 AM] Alice: hello\n",
			want: ConventionIPhone,
		},
		{
			name: "android wins over iphone when both present",
			text: "[01/01/25, 8:31 AM] noise\n02/01/2025, 13:27 - Alice: hello\n",
			want: ConventionAndroid,
		},
		{
			name: "header mid-file still detected",
			text: "some exported preamble\n02/01/2025, 13:27 - Alice: hello\n",
			want: ConventionAndroid,
		},
		{
			name:    "prose is not a chat export",
			text:    "Dear diary,\ntoday I wrote some Go.\n",
			wantErr: true,
		},
		{
			name:    "empty input",
			text:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := DetectFormat(tt.text)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
				}
				if format.Convention != ConventionUnknown {
					t.Fatalf("expected unknown convention, got %s", format.Convention)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if format.Convention != tt.want {
				t.Fatalf("convention mismatch: got %s want %s", format.Convention, tt.want)
			}
			if format.split == nil || len(format.layouts) == 0 {
				t.Fatal("detected format is missing its splitting rule or layouts")
			}
		})
	}
}
