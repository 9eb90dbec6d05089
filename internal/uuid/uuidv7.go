// Package uuid generates time-ordered UUIDv7 identifiers for primary keys.
package uuid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	googleuuid "github.com/google/uuid"
)

// New generates a new UUIDv7 based on the current timestamp. The leading
// 48 bits carry Unix milliseconds, so keys sort by creation time.
func New() string {
	var id [16]byte

	ts := uint64(time.Now().UnixMilli())
	binary.BigEndian.PutUint64(id[0:8], ts<<16)

	if _, err := rand.Read(id[6:]); err != nil {
		// Fall back to a standard UUIDv4 if random generation fails.
		return googleuuid.New().String()
	}

	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // variant 10

	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		binary.BigEndian.Uint32(id[0:4]),
		binary.BigEndian.Uint16(id[4:6]),
		binary.BigEndian.Uint16(id[6:8]),
		binary.BigEndian.Uint16(id[8:10]),
		id[10:16],
	)
}

// IsValid checks whether a string parses as a UUID.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
