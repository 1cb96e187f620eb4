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

// Package app wires the parsing core and the analysis packages into a
// local HTTP JSON API.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/chatsift/chatsift/analysis/emotion"
	"github.com/chatsift/chatsift/analysis/sentiment"
	"github.com/chatsift/chatsift/analysis/stopwords"
	"github.com/chatsift/chatsift/chatlog"
	"github.com/chatsift/chatsift/feedback"
)

// App holds the request-independent state of the server: the caching
// parser, the analyzers, and the feedback store. Parsed tables live only
// in the parser's bounded cache and die with the process.
type App struct {
	cfg *Config
	log *zap.Logger

	parser    *chatlog.Parser
	stopwords map[string]struct{}
	sentiment *sentiment.Analyzer
	emotion   *emotion.Detector
	feedback  *feedback.Store

	httpServer *http.Server
}

// New assembles the application from its config.
func New(ctx context.Context, cfg *Config) (*App, error) {
	parser, err := chatlog.NewParser(cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	store, err := feedback.Open(ctx, cfg.FeedbackDB)
	if err != nil {
		return nil, fmt.Errorf("opening feedback store: %w", err)
	}

	providers := []emotion.Classifier{emotion.NewLexicon()}
	if cfg.HuggingFaceToken != "" {
		providers = append(providers, emotion.NewHuggingFace(cfg.HuggingFaceToken))
	}

	return &App{
		cfg:       cfg,
		log:       chatlog.Log.Named("app"),
		parser:    parser,
		stopwords: stopwords.Load(cfg.StopwordsFile),
		sentiment: sentiment.NewAnalyzer(),
		emotion:   emotion.NewDetector(providers...),
		feedback:  store,
	}, nil
}

// Serve runs the HTTP server until ctx is canceled.
func (a *App) Serve(ctx context.Context) error {
	addr := a.cfg.listenAddr()
	a.httpServer = &http.Server{
		Addr:              addr,
		Handler:           a.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.httpServer.ListenAndServe()
	}()
	a.log.Info("server listening", zap.String("address", addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.httpServer.Shutdown(shutdownCtx)
	}
}

// Close releases the app's resources.
func (a *App) Close() error {
	return a.feedback.Close()
}
