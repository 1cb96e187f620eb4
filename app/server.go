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
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func (a *App) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(a.logRequests)

	r.Get("/health", a.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/upload", a.handleUpload)

		r.Route("/{upload}", func(r chi.Router) {
			r.Get("/stats", a.handleStats)
			r.Get("/users", a.handleUsers)
			r.Get("/timeline", a.handleTimeline)
			r.Get("/activity", a.handleActivity)
			r.Get("/emojis", a.handleEmojis)
			r.Get("/words", a.handleWords)
			r.Get("/messages", a.handleMessages)
			r.Get("/content/links", a.handleLinks)
			r.Get("/content/media", a.handleMedia)
			r.Get("/content/documents", a.handleDocuments)
			r.Get("/content/locations", a.handleLocations)
			r.Get("/sentiment", a.handleSentiment)
			r.Get("/emotion", a.handleEmotion)
		})

		r.Post("/feedback", a.handleFeedbackSubmit)
		r.Get("/feedback", a.handleFeedbackList)
	})

	return r
}

// logRequests emits one log line per request, in the server's voice.
func (a *App) logRequests(next http.Handler) http.Handler {
	log := a.log.Named("http")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		logFn := log.Info
		if ww.Status() >= http.StatusBadRequest {
			logFn = log.Error
		}
		logFn(r.Method+" "+r.RequestURI,
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.Int("status", ww.Status()),
			zap.Int("size", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
