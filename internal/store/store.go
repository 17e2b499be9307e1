// Package store reads and writes boards as YAML files.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ahmetb/foodshare/internal/board"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

// Decode reads a single board document from r. Unknown keys are rejected.
// An empty input decodes to an empty board.
func Decode(r io.Reader) (*board.Board, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var b board.Board
	if err := dec.Decode(&b); err != nil {
		if errors.Is(err, io.EOF) {
			return &b, nil
		}
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	return &b, nil
}

// Encode writes b to w with 2-space indentation.
func Encode(w io.Writer, b *board.Board) error {
	var node yaml.Node
	if err := node.Encode(b); err != nil {
		return fmt.Errorf("YAML encode error: %w", err)
	}
	return EncodeNode(w, &node)
}

// EncodeNode writes a YAML node tree to w, keeping any comments on it.
func EncodeNode(w io.Writer, node *yaml.Node) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	enc.SetIndent(2)

	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("YAML encode error: %w", err)
	}
	return nil
}

// Load reads the board at path. A missing file yields an empty board so that
// the first post creates it.
func Load(path string) (*board.Board, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		klog.V(1).InfoS("board file does not exist, starting empty", "path", path)
		return &board.Board{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("error opening board: %w", err)
	}
	defer f.Close()

	b, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("error reading board %s: %w", path, err)
	}
	klog.V(1).InfoS("loaded board", "path", path, "listings", len(b.Listings), "notifications", len(b.Notifications))
	return b, nil
}

// LoadNode reads the board at path as a raw YAML document node.
func LoadNode(path string) (*yaml.Node, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading board: %w", err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(in, &doc); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("board %s is not a YAML mapping document", path)
	}
	return &doc, nil
}

// Save writes b to path. The file is replaced atomically through a temporary
// file in the same directory.
func Save(path string, b *board.Board) error {
	var buf bytes.Buffer
	if err := Encode(&buf, b); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("error creating temporary file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing board: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error writing board: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error replacing board: %w", err)
	}
	klog.V(1).InfoS("saved board", "path", path)
	return nil
}
