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

import "testing"

func TestSplitSender(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantUser    string
		wantMessage string
	}{
		{
			name:        "plain message",
			body:        "Alice: Hello",
			wantUser:    "Alice",
			wantMessage: "Hello",
		},
		{
			name:        "multiline message",
			body:        "Alice: Hello\nthere",
			wantUser:    "Alice",
			wantMessage: "Hello\nthere",
		},
		{
			name:        "colon inside message body",
			body:        "Bob: meeting at 9: don't be late",
			wantUser:    "Bob",
			wantMessage: "meeting at 9: don't be late",
		},
		{
			name:        "group notification has no prefix",
			body:        "Alice added Bob",
			wantUser:    GroupNotification,
			wantMessage: "Alice added Bob",
		},
		{
			name:        "encryption notice",
			body:        "Messages and calls are end-to-end encrypted.",
			wantUser:    GroupNotification,
			wantMessage: "Messages and calls are end-to-end encrypted.",
		},
		{
			name:        "phone number sender",
			body:        "+91 98765 43210: hi all",
			wantUser:    "+91 98765 43210",
			wantMessage: "hi all",
		},
		{
			name:        "colon without following space stays in body",
			body:        "Alice:Bob were here",
			wantUser:    GroupNotification,
			wantMessage: "Alice:Bob were here",
		},
		{
			name:        "empty body",
			body:        "",
			wantUser:    GroupNotification,
			wantMessage: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, message := splitSender(tt.body)
			if user != tt.wantUser {
				t.Fatalf("user mismatch: got %q want %q", user, tt.wantUser)
			}
			if message != tt.wantMessage {
				t.Fatalf("message mismatch: got %q want %q", message, tt.wantMessage)
			}
		})
	}
}
