// Package leaderboard persists the top ten scores in a small fixed-layout
// binary file.
//
// Each record is 24 bytes: a 20-byte NUL-padded name followed by a
// little-endian int32 score. Records are stored highest score first with no
// header.
package leaderboard

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"
)

const (
	// MaxEntries is the number of scores kept.
	MaxEntries = 10
	// NameSize is the on-disk name field width including the terminating NUL.
	NameSize = 20
	// MaxNameLen is the longest name that survives a round trip.
	MaxNameLen = NameSize - 1
	// RecordSize is the size of one encoded record.
	RecordSize = NameSize + 4
)

// Entry is one leaderboard line.
type Entry struct {
	Name  string
	Score int32
}

// Board is an in-memory leaderboard, always sorted by descending score.
type Board struct {
	entries []Entry
}

// Entries returns a copy of the entries, best first.
func (b Board) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of entries.
func (b Board) Len() int {
	return len(b.entries)
}

// ShouldRecord reports whether a finished session with this score is
// eligible for the board. Non-positive scores only count on an empty board.
func (b Board) ShouldRecord(score int) bool {
	return score > 0 || len(b.entries) == 0
}

// Insert adds a score. When the board is full the lowest entry is replaced
// only by a strictly greater score. Insert reports whether the board changed.
func (b *Board) Insert(name string, score int32) bool {
	e := Entry{Name: truncateName(name), Score: score}
	if len(b.entries) < MaxEntries {
		b.entries = append(b.entries, e)
	} else {
		low := len(b.entries) - 1
		if score <= b.entries[low].Score {
			return false
		}
		b.entries[low] = e
	}
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
	return true
}

func truncateName(name string) string {
	name = strings.ReplaceAll(name, "\x00", "")
	if len(name) <= MaxNameLen {
		return name
	}
	// Cut on a rune boundary so the stored name stays valid UTF-8.
	cut := MaxNameLen
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}

// Decode parses records from data. A trailing partial record is ignored and
// anything beyond MaxEntries records is dropped.
func Decode(data []byte) Board {
	var b Board
	for off := 0; off+RecordSize <= len(data) && len(b.entries) < MaxEntries; off += RecordSize {
		rec := data[off : off+RecordSize]
		name := rec[:NameSize]
		if i := bytes.IndexByte(name, 0); i >= 0 {
			name = name[:i]
		}
		b.entries = append(b.entries, Entry{
			Name:  string(name),
			Score: int32(binary.LittleEndian.Uint32(rec[NameSize:])),
		})
	}
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
	return b
}

// Encode serialises the board.
func (b Board) Encode() []byte {
	out := make([]byte, 0, len(b.entries)*RecordSize)
	for _, e := range b.entries {
		var rec [RecordSize]byte
		copy(rec[:MaxNameLen], truncateName(e.Name))
		binary.LittleEndian.PutUint32(rec[NameSize:], uint32(e.Score))
		out = append(out, rec[:]...)
	}
	return out
}

// Load reads a board from path. A missing file is an empty board.
func Load(path string) (Board, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Board{}, nil
	}
	if err != nil {
		return Board{}, fmt.Errorf("leaderboard: read %s: %w", path, err)
	}
	return Decode(data), nil
}

// Save writes the board to path, replacing any previous contents.
func Save(path string, b Board) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("leaderboard: create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, b.Encode(), 0o644); err != nil {
		return fmt.Errorf("leaderboard: write %s: %w", path, err)
	}
	return nil
}

// File is a leaderboard on disk shared by concurrent sessions.
type File struct {
	path string
	mu   sync.Mutex
}

// NewFile returns a handle for the leaderboard at path. A leading ~ expands
// to the home directory.
func NewFile(path string) *File {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return &File{path: path}
}

// Path returns the resolved file path.
func (f *File) Path() string {
	return f.path
}

// Load reads the current board.
func (f *File) Load() (Board, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Load(f.path)
}

// Record adds a finished session's score if it qualifies and persists the
// board. It reports whether the score made it onto the board.
func (f *File) Record(name string, score int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := Load(f.path)
	if err != nil {
		return false, err
	}
	if !b.ShouldRecord(score) {
		return false, nil
	}
	if !b.Insert(name, int32(score)) {
		return false, nil
	}
	if err := Save(f.path, b); err != nil {
		return false, err
	}
	return true, nil
}
