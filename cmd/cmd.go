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

// Package cmd facilitates the command line interface (CLI)
// and implements the main().
package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/chatsift/chatsift/analysis/stats"
	"github.com/chatsift/chatsift/app"
	"github.com/chatsift/chatsift/chatlog"
)

func Main() {
	configPath := flag.String("config", "", "path to a JSON config file")
	listen := flag.String("listen", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		chatlog.Log.Fatal("failed loading config", zap.Error(err))
	}
	if *listen != "" {
		cfg.Listen = *listen
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// one-shot mode: analyze exports on the command line instead of serving
	if files := flag.Args(); len(files) > 0 {
		if err := analyzeFiles(ctx, files); err != nil {
			chatlog.Log.Fatal("analysis failed", zap.Error(err))
		}
		return
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		chatlog.Log.Fatal("failed assembling application", zap.Error(err))
	}
	defer a.Close()

	if err := a.Serve(ctx); err != nil {
		chatlog.Log.Fatal("server error", zap.Error(err))
	}
}

// analyzeFiles parses each export and prints a summary as JSON lines,
// one object per file.
func analyzeFiles(ctx context.Context, files []string) error {
	enc := json.NewEncoder(os.Stdout)
	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		table, err := chatlog.Parse(ctx, name, data)
		if err != nil {
			return err
		}
		summary := struct {
			File    string               `json:"file"`
			Format  string               `json:"format"`
			Dropped int                  `json:"dropped_rows"`
			Totals  stats.Totals         `json:"totals"`
			Users   []stats.UserActivity `json:"users"`
		}{
			File:    name,
			Format:  table.Format().String(),
			Dropped: table.Dropped(),
			Totals:  stats.Fetch(table),
			Users:   stats.BusyUsers(table, 0),
		}
		if err := enc.Encode(summary); err != nil {
			return err
		}
	}
	return nil
}
