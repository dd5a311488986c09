// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

// Package storage persists uploaded resume documents on the local filesystem.
//
// # Naming
//
// Stored files are named "<unix-ms>-<slug>.<ext>" so concurrent uploads for
// the same film never collide and the original title stays recognizable.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmarchal/filmotheque/internal/platform/apperr"
	"github.com/lmarchal/filmotheque/pkg/slug"
)

// allowedExtensions whitelists the document types accepted for film resumes.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".txt":  true,
	".md":   true,
	".doc":  true,
	".docx": true,
}

// DocumentStore writes resume documents under a single base directory.
type DocumentStore struct {
	baseDir string
}

// NewDocumentStore ensures the base directory exists and returns a store.
func NewDocumentStore(baseDir string) (*DocumentStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: failed to create upload dir %s: %w", baseDir, err)
	}
	return &DocumentStore{baseDir: baseDir}, nil
}

// Save streams an uploaded document to disk and returns its stored path.
//
// originalName supplies the extension (validated against the whitelist);
// label is slugged into the stored filename.
func (store *DocumentStore) Save(originalName, label string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", apperr.ValidationError(fmt.Sprintf("File type %q is not allowed", ext))
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), slug.From(label), ext)
	path := filepath.Join(store.baseDir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("storage: failed to create %s: %w", path, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		// Best effort cleanup of the partial file.
		_ = os.Remove(path)
		return "", fmt.Errorf("storage: failed to write %s: %w", path, err)
	}

	return path, nil
}
