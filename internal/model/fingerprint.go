package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// Fingerprint is a deterministic content hash used for duplicate detection.
// Two messages with the same fingerprint are the same physical event.
type Fingerprint string

// fingerprintBucket is the coarse time window within which a resend of the
// same text from the same sender is treated as a duplicate.
const fingerprintBucket = time.Minute

// NewFingerprint creates a fingerprint from the sender, the canonical
// (normalized) message text, and the occurrence time rounded to a coarse
// bucket so that clock jitter between resends does not defeat deduplication.
func NewFingerprint(sender, canonicalText string, occurredAt time.Time) Fingerprint {
	bucket := occurredAt.UTC().Truncate(fingerprintBucket)
	data := fmt.Sprintf("%s\n%s\n%s", sender, canonicalText, bucket.Format(time.RFC3339))
	hash := sha256.Sum256([]byte(data))
	return Fingerprint(fmt.Sprintf("%x", hash))
}
