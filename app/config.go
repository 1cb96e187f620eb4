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
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const defaultListenAddr = "127.0.0.1:12003"

// Config describes the server configuration.
type Config struct {
	// The listen address to bind the socket to.
	Listen string `json:"listen,omitempty"`

	// Path to a stopword file (one token per line) excluded from
	// word-frequency analysis. Optional; analysis works without one.
	StopwordsFile string `json:"stopwords_file,omitempty"`

	// Token for the hosted emotion model. Without it, emotion tagging
	// uses only the local lexicon and the neutral fallback. Can also
	// be supplied via the HF_TOKEN environment variable.
	HuggingFaceToken string `json:"huggingface_token,omitempty"`

	// How many parsed uploads to keep in memory at once.
	CacheSize int `json:"cache_size,omitempty"`

	// Where the feedback database lives.
	FeedbackDB string `json:"feedback_db,omitempty"`
}

// LoadConfig reads the config file at path; a missing file is not an
// error, it just means all defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := new(Config)
	if path == "" {
		cfg.fillDefaults()
		return cfg, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg.fillDefaults()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decoding config file: %w", err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

func (cfg *Config) fillDefaults() {
	if cfg.Listen == "" {
		cfg.Listen = defaultListenAddr
	}
	if cfg.FeedbackDB == "" {
		cfg.FeedbackDB = filepath.Join(os.TempDir(), "chatsift-feedback.db")
	}
	if cfg.HuggingFaceToken == "" {
		cfg.HuggingFaceToken = os.Getenv("HF_TOKEN")
	}
}

func (cfg *Config) listenAddr() string {
	if envVal := os.Getenv("CHATSIFT_LISTEN"); envVal != "" {
		return envVal
	}
	return cfg.Listen
}
