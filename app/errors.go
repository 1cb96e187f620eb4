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

package app

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/chatsift/chatsift/chatlog"
)

// Error is a JSON-serializable representation of an error.
type Error struct {
	Err        error  `json:"-"`
	HTTPStatus int    `json:"http_status"`       // status sent to the client
	Log        string `json:"-"`                 // technical context for logs
	Message    string `json:"message,omitempty"` // human-readable sentence

	// generated; don't fill this out
	ErrString string `json:"error"`
}

func (e Error) Error() string {
	var msg strings.Builder
	if e.Log != "" {
		msg.WriteString(e.Log)
		if e.Err != nil {
			msg.WriteString(": ")
		}
	}
	if e.Err != nil {
		msg.WriteString(e.Err.Error())
	}
	return msg.String()
}

// classifyIngestion maps the parser's classified failures onto
// actionable client-facing errors; anything unrecognized is a 500.
func classifyIngestion(err error) Error {
	switch {
	case errors.Is(err, chatlog.ErrUnreadableArchive):
		return Error{
			Err:        err,
			HTTPStatus: http.StatusBadRequest,
			Message:    "The archive could not be read or contains no chat transcript (.txt). Upload the export WhatsApp produced.",
		}
	case errors.Is(err, chatlog.ErrUnsupportedFormat):
		return Error{
			Err:        err,
			HTTPStatus: http.StatusUnprocessableEntity,
			Message:    "This file doesn't look like a WhatsApp chat export; neither Android nor iPhone message headers were found.",
		}
	case errors.Is(err, chatlog.ErrNoMessages):
		return Error{
			Err:        err,
			HTTPStatus: http.StatusUnprocessableEntity,
			Message:    "The export was recognized but contained no messages. Is the chat empty?",
		}
	}
	return Error{Err: err, HTTPStatus: http.StatusInternalServerError}
}

func (a *App) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var errVal Error
	if !errors.As(err, &errVal) {
		errVal = Error{Err: err, Log: "error was not well-structured"}
	}

	if errVal.HTTPStatus == 0 {
		errVal.HTTPStatus = http.StatusInternalServerError
	}
	if errVal.Message == "" && errVal.Err != nil {
		errVal.Message = errVal.Err.Error()
	}
	// ensure error is serialized as a string when written to the client
	if errVal.Err != nil {
		errVal.ErrString = errVal.Err.Error()
	} else {
		errVal.ErrString = errVal.Message
	}

	a.log.Named("http").Error(errVal.Log,
		zap.Error(errVal.Err),
		zap.Int("status", errVal.HTTPStatus),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	jsonBytes, err := json.Marshal(errVal)
	if err != nil {
		a.log.Error("encoding error response", zap.Error(err))
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(jsonBytes)))
	w.WriteHeader(errVal.HTTPStatus)
	_, _ = w.Write(jsonBytes)
}
