package jsonfile

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/custodia-labs/libsearch/internal/core/domain"
	"github.com/custodia-labs/libsearch/internal/core/ports/driven"
	"github.com/custodia-labs/libsearch/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.CatalogLoader = (*Loader)(nil)

// gzipMagic is the two-byte gzip header.
var gzipMagic = []byte{0x1f, 0x8b}

// Loader reads a JSON catalog file.
type Loader struct {
	path string
}

// NewLoader creates a loader for the JSON or gzip JSON file at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the whole file into a catalog.
// Compression is detected from the file header, not the extension.
func (l *Loader) Load(ctx context.Context) (*domain.Catalog, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	var r io.Reader = br

	head, err := br.Peek(len(gzipMagic))
	if err == nil && string(head) == string(gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		defer zr.Close()
		r = zr
		logger.Debug("catalog %s is gzip-compressed", l.path)
	}

	catalog, err := Decode(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", l.path, err)
	}
	return catalog, nil
}

// record mirrors one document entry of the artifact.
type record struct {
	Type         string      `json:"type"`
	Format       string      `json:"format"`
	Size         json.Number `json:"size"`
	MD5          string      `json:"md5"`
	Link         *string     `json:"link"`
	Description  string      `json:"description"`
	ArchivedDate string      `json:"archived date"`
	Author       string      `json:"author"`
	Date         string      `json:"date"`
	Region       string      `json:"region"`
	Tags         []string    `json:"tags"`
}

func (r *record) toDocument(domainName, key string) domain.Document {
	return domain.Document{
		Domain:       domainName,
		Key:          key,
		Type:         r.Type,
		Format:       r.Format,
		Size:         parseSize(r.Size),
		MD5:          r.MD5,
		Link:         r.Link,
		Description:  r.Description,
		ArchivedDate: r.ArchivedDate,
		Author:       r.Author,
		Date:         r.Date,
		Region:       r.Region,
		Tags:         r.Tags,
	}
}

// parseSize accepts integer or float sizes. Missing, negative or
// malformed sizes become 0.
func parseSize(n json.Number) int64 {
	if n == "" {
		return 0
	}
	if v, err := n.Int64(); err == nil {
		return max(v, 0)
	}
	if f, err := n.Float64(); err == nil && f > 0 {
		return int64(f)
	}
	return 0
}

// Decode reads a catalog object from r, preserving key order.
func Decode(ctx context.Context, r io.Reader) (*domain.Catalog, error) {
	dec := json.NewDecoder(r)
	b := domain.NewCatalogBuilder()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	for dec.More() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		domainName, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		if err := expectDelim(dec, '{'); err != nil {
			return nil, fmt.Errorf("domain %q: %w", domainName, err)
		}

		for dec.More() {
			key, err := readKey(dec)
			if err != nil {
				return nil, fmt.Errorf("domain %q: %w", domainName, err)
			}

			var rec record
			if err := dec.Decode(&rec); err != nil {
				return nil, fmt.Errorf("document %s/%s: %w", domainName, key, err)
			}
			b.Add(rec.toDocument(domainName, key))
		}

		if err := expectDelim(dec, '}'); err != nil {
			return nil, fmt.Errorf("domain %q: %w", domainName, err)
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after catalog object", domain.ErrInvalidInput)
	}

	return b.Build(), nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("reading token: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q, got %v", domain.ErrInvalidInput, want, tok)
	}
	return nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("reading key: %w", err)
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected object key, got %v", domain.ErrInvalidInput, tok)
	}
	return key, nil
}
