// Package cegse provides a binary codec for Creation Engine game-save container files --
// the save format shared, with variants, by two games referred to here as GAME-S and
// GAME-F.
//
// The package reads a save file from disk into a fully typed, in-memory Document and
// writes a Document back to disk byte-for-byte, preserving the original producer's layout
// quirks (offset adjustments, an over-reported plugin-block length, an off-by-one global
// count) so a decoded-then-re-encoded file is identical to its source.
//
// # Basic Usage
//
//	import "github.com/creationengine/cegse"
//
//	doc, err := cegse.Read("Save1.ess")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(doc.PlayerName, doc.Level)
//
//	if err := cegse.Write("Save1-copy.ess", doc); err != nil {
//	    log.Fatal(err)
//	}
//
// # Package Structure
//
// This package is a thin convenience wrapper over savefile.Encoder/savefile.Decoder. For
// direct access to the Document model or to build a file from scratch, use the savefile
// package; for the underlying wire primitives (byte-stream cursor, VSVAL, framed blocks),
// use the wire package.
package cegse

import (
	"fmt"
	"os"

	"github.com/creationengine/cegse/errs"
	"github.com/creationengine/cegse/savefile"
)

// Document is the root in-memory representation of a save file. See savefile.Document for
// the full field list.
type Document = savefile.Document

// Read decodes the save file at path into a Document.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w: %w", path, errs.ErrIO, err)
	}

	doc, err := savefile.NewDecoder().Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return doc, nil
}

// Write encodes doc and writes it to path, creating or truncating the file. On failure the
// output file is left in an undefined state; the caller is responsible for removing it.
func Write(path string, doc *Document) error {
	data, err := savefile.NewEncoder().Encode(doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w: %w", path, errs.ErrIO, err)
	}

	return nil
}

// Destroy releases doc. The Go garbage collector reclaims a Document's memory on its own;
// Destroy exists only to mirror the explicit create/consume/destroy lifecycle callers of
// the original producer's API expect (spec §3) -- it is a documented no-op.
func Destroy(doc *Document) {
	_ = doc
}
