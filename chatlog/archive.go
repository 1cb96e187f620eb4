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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/mholt/archives"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const transcriptExt = ".txt"

// ExtractTranscript returns the transcript text of an upload. WhatsApp
// exports arrive either as a bare .txt transcript or as a zip containing
// the transcript plus any shared media; for archives, the first entry
// with the transcript extension wins and everything else is ignored.
// Input that is not an archive at all is treated as the transcript itself.
//
// The filename is only a hint for format identification; identification
// is content-based, so a mislabeled zip still opens.
func ExtractTranscript(ctx context.Context, filename string, data []byte) (string, error) {
	format, _, err := archives.Identify(ctx, filename, bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, archives.NoMatch) {
			return normalizeText(data), nil
		}
		return "", fmt.Errorf("%w: identifying upload: %v", ErrUnreadableArchive, err)
	}

	extractor, ok := format.(archives.Extractor)
	if !ok {
		// a compression-only format (e.g. bare gzip) with no file
		// entries to walk; nothing useful we can pull out of it
		return "", fmt.Errorf("%w: %s container has no file entries", ErrUnreadableArchive, format.Extension())
	}

	var transcript string
	var found bool
	err = extractor.Extract(ctx, bytes.NewReader(data), func(_ context.Context, f archives.FileInfo) error {
		if found || f.IsDir() || !strings.EqualFold(path.Ext(f.NameInArchive), transcriptExt) {
			return nil
		}
		file, err := f.Open()
		if err != nil {
			return fmt.Errorf("opening %s: %w", f.NameInArchive, err)
		}
		defer file.Close()
		contents, err := io.ReadAll(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", f.NameInArchive, err)
		}
		transcript = normalizeText(contents)
		found = true
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableArchive, err)
	}
	if !found {
		return "", fmt.Errorf("%w: no %s entry in archive", ErrUnreadableArchive, transcriptExt)
	}

	return transcript, nil
}

// transcriptCleaner maps the exporters' line endings and exotic spacing
// onto what the header regexes expect: iPhone exports put a narrow
// no-break space before the meridiem and left-to-right marks ahead of
// many lines, neither of which `\s` matches in Go's regexp.
var transcriptCleaner = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\u202f", " ", // narrow no-break space
	"\u00a0", " ", // no-break space
	"\u200e", "", // left-to-right mark
)

// normalizeText decodes raw transcript bytes as UTF-8 (honoring a UTF-16
// byte order mark if one is present), substituting the replacement
// character for undecodable sequences rather than failing, then cleans up
// line endings and invisible marks.
func normalizeText(data []byte) string {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		decoded = bytes.ToValidUTF8(data, []byte("\uFFFD"))
	}
	return transcriptCleaner.Replace(string(decoded))
}
