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

package emotion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultModel is the hosted emotion-classification model queried when
// no other provider answered.
const DefaultModel = "SamLowe/roberta-base-go_emotions"

const inferenceEndpoint = "https://api-inference.huggingface.co/models/"

// HuggingFace classifies text through the hosted inference API. It is a
// best-effort provider: any transport, auth, or decoding problem is
// surfaced as an error for the chain to log and skip, never as a fatal
// condition for the caller.
type HuggingFace struct {
	Token    string // bearer token; without one this provider never answers
	Model    string // defaults to DefaultModel
	Endpoint string // defaults to the public inference endpoint
	Client   *http.Client
}

// NewHuggingFace returns a provider using the given API token.
func NewHuggingFace(token string) *HuggingFace {
	return &HuggingFace{
		Token:    token,
		Model:    DefaultModel,
		Endpoint: inferenceEndpoint,
		Client:   &http.Client{Timeout: 15 * time.Second},
	}
}

type classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify implements Classifier.
func (hf *HuggingFace) Classify(ctx context.Context, text string) (string, bool, error) {
	if hf.Token == "" {
		return "", false, nil
	}
	model := hf.Model
	if model == "" {
		model = DefaultModel
	}
	endpoint := hf.Endpoint
	if endpoint == "" {
		endpoint = inferenceEndpoint
	}

	body, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return "", false, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+model, bytes.NewReader(body))
	if err != nil {
		return "", false, err
	}
	req.Header.Set("Authorization", "Bearer "+hf.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := hf.Client.Do(req)
	if err != nil {
		return "", false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1024)) //nolint:errcheck
		return "", false, fmt.Errorf("inference API returned %s", resp.Status)
	}

	// response is a list of candidate lists, one per input
	var results [][]classification
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", false, fmt.Errorf("decoding inference response: %w", err)
	}
	if len(results) == 0 || len(results[0]) == 0 {
		return "", false, nil
	}

	top := results[0][0]
	for _, c := range results[0][1:] {
		if c.Score > top.Score {
			top = c
		}
	}
	return strings.ToLower(top.Label), true, nil
}
