package utils

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NewID generates a unique string identifier: the caller-supplied prefix
// (e.g. "prod_", "ord_") followed by the current unix-millisecond timestamp
// and a random suffix, both base-36 encoded. Uniqueness is probabilistic;
// there is no collision-detection fallback.
func NewID(prefix string) string {
	u := uuid.New()
	suffix := binary.BigEndian.Uint32(u[0:4])
	return prefix +
		strconv.FormatInt(time.Now().UnixMilli(), 36) +
		strconv.FormatUint(uint64(suffix), 36)
}
