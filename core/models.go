package core

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or storage sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Speaker identifies the source of a conversation turn.
type Speaker int

const (
	// SpeakerUser represents the person being coached.
	SpeakerUser Speaker = iota + 1
	// SpeakerCoach represents the coach side of the conversation.
	SpeakerCoach
)

// Course is one row of the training catalog. Fields missing from the source
// table are empty strings; an unparseable duration leaves Hours as NaN.
type Course struct {
	Title           string
	Description     string
	CompetencyGroup string
	Competency      string
	Skill           string
	Keywords        string
	Level           string
	Access          string
	Population      string
	Qualification   string
	Duration        string  // Raw duration text as found in the catalog
	Hours           float64 // Parsed duration in hours, NaN when unparseable
	Sheet           string  // Sheet/category label the row came from
	Portal          string
	URL             string
	MoodleURL       string
}

// HasHours reports whether the course duration was parseable.
func (c *Course) HasHours() bool {
	return !math.IsNaN(c.Hours)
}

// Catalog is an immutable table of courses. Course identity is the positional
// index within Courses for the lifetime of one built index; a changed catalog
// is a new Catalog value, never a mutated one.
type Catalog struct {
	Courses []Course
}

// Len returns the number of courses in the catalog.
func (ct *Catalog) Len() int {
	return len(ct.Courses)
}

// Fingerprint returns a content-based identity for the catalog.
// Two catalogs with identical rows share a fingerprint, which keys the
// lexical index cache.
func (ct *Catalog) Fingerprint() ID {
	var b strings.Builder
	for i := range ct.Courses {
		c := &ct.Courses[i]
		for _, field := range []string{
			c.Title, c.Description, c.CompetencyGroup, c.Competency,
			c.Skill, c.Keywords, c.Level, c.Access, c.Population,
			c.Qualification, c.Duration,
			strconv.FormatUint(math.Float64bits(c.Hours), 16),
			c.Sheet, c.Portal, c.URL, c.MoodleURL,
		} {
			b.WriteString(field)
			b.WriteByte(0x1f)
		}
		b.WriteByte(0x1e)
	}
	return IDFromContent(b.String())
}

// Candidate is one retrieval result: a catalog record paired with the two
// normalized lexical relevance signals, and after reranking the named feature
// values and the final weighted score. Candidates live for one request only.
type Candidate struct {
	Index     int     // Positional index of the course within the catalog
	Course    *Course // Reference into the catalog, never a copy
	BM25Norm  float64
	TFIDFNorm float64
	Feats     map[string]float64
	Score     float64
}

// Turn is a single message in a coaching conversation.
type Turn struct {
	SessionId ID
	Seq       uint64
	Speaker   Speaker
	Contents  string
	Timestamp time.Time
}
