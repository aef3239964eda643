package badger

import (
	"encoding/binary"

	"github.com/atenea/rumbo/core"
)

// Key prefixes for different data types
const (
	turnPrefix    = "sestrn"
	profilePrefix = "sespro"
	turnSeq       = "sestrnseq"
)

// makeTurnKey generates a composite key for a turn.
// Format: prefix:sessionID:seq, both numbers in BigEndian so lexicographic
// iteration yields turns grouped by session and ordered by sequence.
func makeTurnKey(session core.ID, seq uint64) []byte {
	prefix := turnPrefix + ":"
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(session))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], seq)
	return buf
}

// makePartialTurnKey generates the iteration prefix for one session's turns.
// Format: prefix:sessionID
func makePartialTurnKey(session core.ID) []byte {
	prefix := turnPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(session))
	return buf
}

// makeProfileKey generates the key for a session's profile snapshot.
// Format: prefix:sessionID
func makeProfileKey(session core.ID) []byte {
	prefix := profilePrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(session))
	return buf
}
