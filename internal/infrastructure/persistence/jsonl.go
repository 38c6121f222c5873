package persistence

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"travelrecords-service/internal/domain/entity"
	"travelrecords-service/pkg/logger"
)

// Store reads and rewrites one newline-delimited JSON backing file.
// Each line is one JSON object; the whole file is rewritten on every
// successful mutation, never appended to.
type Store struct {
	path string
	log  logger.Logger
}

// NewStore creates a store for the given backing file path
func NewStore(path string, log logger.Logger) *Store {
	return &Store{
		path: path,
		log:  log,
	}
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// ReadAll returns one document per well-formed line of the backing
// file. Blank lines are ignored and lines that fail to parse as JSON
// are skipped with a warning. A missing file yields an empty result,
// not an error.
func (s *Store) ReadAll() ([]entity.Document, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var docs []entity.Document
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var doc entity.Document
		if err := json.Unmarshal([]byte(line), &doc); err != nil {
			s.log.Warn("Skipping invalid JSON line",
				"path", s.path, "line", lineNumber, "error", err)
			continue
		}
		docs = append(docs, doc)
	}
	if err := scanner.Err(); err != nil {
		return docs, err
	}
	return docs, nil
}

// WriteAll rewrites the entire backing file from the given documents,
// one JSON object per line, creating the containing directory if it
// does not exist.
func (s *Store) WriteAll(docs []entity.Document) error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	for _, doc := range docs {
		data, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}
	return os.WriteFile(s.path, buf.Bytes(), 0o644)
}
