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
	"context"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/zeebo/blake3"
	"go.uber.org/zap"
)

// DefaultCacheSize bounds how many parsed tables a Parser keeps. Parsing
// is recomputed only on capacity pressure; content-derived keys need no
// other invalidation.
const DefaultCacheSize = 5

// Parser runs the parse pipeline with a bounded LRU cache keyed by
// content hash, so repeated interactions with the same uploaded file do
// not re-run parsing. Safe for concurrent use; each parse itself is
// synchronous and request-scoped.
type Parser struct {
	cache *lru.Cache[[32]byte, *Table]
	log   *zap.Logger
}

// NewParser returns a Parser caching up to size parsed tables; size <= 0
// uses DefaultCacheSize.
func NewParser(size int) (*Parser, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[[32]byte, *Table](size)
	if err != nil {
		return nil, fmt.Errorf("creating parse cache: %w", err)
	}
	return &Parser{cache: cache, log: Log.Named("parser")}, nil
}

// Key returns the upload identity of a file's contents: the hex form of
// its BLAKE3 hash. The same bytes always map to the same key, so it
// doubles as a stable handle for callers to refer to an upload.
func (p *Parser) Key(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Parse returns the parsed table for the given upload, reusing a cached
// result when the same bytes were parsed before. Failed parses are not
// cached; identical bad input is cheap to re-reject.
func (p *Parser) Parse(ctx context.Context, filename string, data []byte) (*Table, error) {
	key := blake3.Sum256(data)
	if table, ok := p.cache.Get(key); ok {
		p.log.Debug("cache hit", zap.String("filename", filename))
		return table, nil
	}
	table, err := Parse(ctx, filename, data)
	if err != nil {
		return nil, err
	}
	p.cache.Add(key, table)
	return table, nil
}

// Get returns a previously parsed table by its upload key, if cached.
func (p *Parser) Get(key string) (*Table, bool) {
	raw, err := hex.DecodeString(key)
	if err != nil || len(raw) != 32 {
		return nil, false
	}
	var sum [32]byte
	copy(sum[:], raw)
	return p.cache.Get(sum)
}
