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
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/chatsift/chatsift/analysis/content"
	"github.com/chatsift/chatsift/analysis/emoji"
	"github.com/chatsift/chatsift/analysis/stats"
	"github.com/chatsift/chatsift/chatlog"
)

// generous; a decade-long group chat export with media is under this
const maxUploadBytes = 100 << 20

func (a *App) handleHealth(w http.ResponseWriter, _ *http.Request) {
	a.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type uploadResponse struct {
	ID       string    `json:"id"`
	Format   string    `json:"format"`
	Messages int       `json:"messages"`
	Dropped  int       `json:"dropped_rows"`
	Users    []string  `json:"users"`
	First    time.Time `json:"first_message"`
	Last     time.Time `json:"last_message"`
}

func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		a.handleError(w, r, Error{
			Err:        err,
			HTTPStatus: http.StatusBadRequest,
			Message:    "Expected a multipart form with a 'file' field.",
		})
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		a.handleError(w, r, Error{
			Err:        err,
			HTTPStatus: http.StatusBadRequest,
			Message:    "Missing 'file' field in upload.",
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		a.handleError(w, r, Error{Err: err, Log: "reading upload"})
		return
	}

	table, err := a.parser.Parse(r.Context(), header.Filename, data)
	if err != nil {
		a.handleError(w, r, classifyIngestion(err))
		return
	}

	rows := table.Messages()
	a.respondJSON(w, http.StatusOK, uploadResponse{
		ID:       a.parser.Key(data),
		Format:   table.Format().String(),
		Messages: table.Len(),
		Dropped:  table.Dropped(),
		Users:    table.Users(),
		First:    rows[0].Date,
		Last:     rows[len(rows)-1].Date,
	})
}

// tableForRequest resolves the upload ID in the URL and applies the
// optional user and from/to (YYYY-MM-DD, inclusive) query filters.
func (a *App) tableForRequest(r *http.Request) (*chatlog.Table, error) {
	id := chi.URLParam(r, "upload")
	table, ok := a.parser.Get(id)
	if !ok {
		return nil, Error{
			Err:        fmt.Errorf("upload %q not in cache", id),
			HTTPStatus: http.StatusNotFound,
			Message:    "Upload not found (or evicted from the cache); upload the file again.",
		}
	}

	q := r.URL.Query()
	table = table.ByUser(q.Get("user"))

	var from, to time.Time
	if v := q.Get("from"); v != "" {
		var err error
		if from, err = time.Parse("2006-01-02", v); err != nil {
			return nil, Error{Err: err, HTTPStatus: http.StatusBadRequest, Message: "'from' must be a YYYY-MM-DD date."}
		}
	}
	if v := q.Get("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, Error{Err: err, HTTPStatus: http.StatusBadRequest, Message: "'to' must be a YYYY-MM-DD date."}
		}
		// inclusive of the whole end day
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	return table.Between(from, to), nil
}

func (a *App) handleStats(w http.ResponseWriter, r *http.Request) {
	table, err := a.tableForRequest(r)
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	a.respondJSON(w, http.StatusOK, stats.Fetch(table))
}

func (a *App) handleUsers(w http.ResponseWriter, r *http.Request) {
	table, err := a.tableForRequest(r)
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	a.respondJSON(w, http.StatusOK, stats.BusyUsers(table, topN(r, 0)))
}

func (a *App) handleTimeline(w http.ResponseWriter, r *http.Request) {
	table, err := a.tableForRequest(r)
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	freq := stats.Frequency(r.URL.Query().Get("freq"))
	switch freq {
	case stats.Daily, stats.Weekly, stats.Monthly:
	case "":
		freq = stats.Monthly
	default:
		a.handleError(w, r, Error{
			Err:        fmt.Errorf("unknown frequency %q", freq),
			HTTPStatus: http.StatusBadRequest,
			Message:    "'freq' must be daily, weekly, or monthly.",
		})
		return
	}
	a.respondJSON(w, http.StatusOK, stats.Timeline(table, freq))
}

func (a *App) handleActivity(w http.ResponseWriter, r *http.Request) {
	table, err := a.tableForRequest(r)
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	hours := stats.HourlyActivity(table)
	a.respondJSON(w, http.StatusOK, map[string]any{
		"hourly":   hours[:],
		"weekdays": stats.WeekdayActivity(table),
	})
}

func (a *App) handleEmojis(w http.ResponseWriter, r *http.Request) {
	table, err := a.tableForRequest(r)
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	a.respondJSON(w, http.StatusOK, emoji.Stats(table, topN(r, 0)))
}

func (a *App) handleWords(w http.ResponseWriter, r *http.Request) {
	table, err := a.tableForRequest(r)
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	a.respondJSON(w, http.StatusOK, stats.WordFrequencies(table, a.stopwords, topN(r, 100)))
}

func (a *App) handleMessages(w http.ResponseWriter, r *http.Request) {
	table, err := a.tableForRequest(r)
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	a.respondJSON(w, http.StatusOK, table.Messages())
}

func (a *App) handleLinks(w http.ResponseWriter, r *http.Request) {
	table, err := a.tableForRequest(r)
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	a.respondJSON(w, http.StatusOK, map[string]any{
		"links":   content.Links(table),
		"by_user": content.LinksByUser(table),
	})
}

func (a *App) handleMedia(w http.ResponseWriter, r *http.Request) {
	table, err := a.tableForRequest(r)
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	a.respondJSON(w, http.StatusOK, content.MediaMentions(table))
}

func (a *App) handleDocuments(w http.ResponseWriter, r *http.Request) {
	table, err := a.tableForRequest(r)
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	a.respondJSON(w, http.StatusOK, content.Documents(table))
}

func (a *App) handleLocations(w http.ResponseWriter, r *http.Request) {
	table, err := a.tableForRequest(r)
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	a.respondJSON(w, http.StatusOK, content.Locations(table))
}

func (a *App) handleSentiment(w http.ResponseWriter, r *http.Request) {
	table, err := a.tableForRequest(r)
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	a.respondJSON(w, http.StatusOK, a.sentiment.Analyze(table))
}

func (a *App) handleEmotion(w http.ResponseWriter, r *http.Request) {
	table, err := a.tableForRequest(r)
	if err != nil {
		a.handleError(w, r, err)
		return
	}
	a.respondJSON(w, http.StatusOK, a.emotion.Analyze(r.Context(), table))
}

type feedbackRequest struct {
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`
}

func (a *App) handleFeedbackSubmit(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.handleError(w, r, Error{Err: err, HTTPStatus: http.StatusBadRequest, Message: "Malformed feedback body."})
		return
	}
	entry, err := a.feedback.Add(r.Context(), req.Rating, req.Comments)
	if err != nil {
		a.handleError(w, r, Error{Err: err, HTTPStatus: http.StatusBadRequest, Message: err.Error()})
		return
	}
	a.respondJSON(w, http.StatusCreated, entry)
}

func (a *App) handleFeedbackList(w http.ResponseWriter, r *http.Request) {
	entries, err := a.feedback.List(r.Context())
	if err != nil {
		a.handleError(w, r, Error{Err: err, Log: "listing feedback"})
		return
	}
	a.respondJSON(w, http.StatusOK, entries)
}

func (a *App) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Named("http").Error("encoding response", zap.Error(err))
	}
}

// topN reads the optional "top" query parameter; def applies when it is
// absent or invalid (0 means unlimited).
func topN(r *http.Request, def int) int {
	v := r.URL.Query().Get("top")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
