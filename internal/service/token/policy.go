package token

import (
	"time"

	"github.com/dajor/bewirtungsbeleg-sub002/pkg/model"
)

// ttlByPurpose is the single policy table all three flows consult, so the
// expiry windows cannot drift between validators.
var ttlByPurpose = map[model.TokenPurpose]time.Duration{
	model.PurposeMagicLink:     10 * time.Minute,
	model.PurposePasswordReset: 30 * time.Minute,
	model.PurposeEmailVerify:   24 * time.Hour,
}

// TTLFor returns the expiry window for a purpose.
func TTLFor(purpose model.TokenPurpose) time.Duration {
	if ttl, ok := ttlByPurpose[purpose]; ok {
		return ttl
	}
	return 30 * time.Minute
}

// expired reports whether a record is past its purpose's TTL. A record whose
// age equals the TTL exactly is still valid; expiry is strict.
func expired(rec *model.EmailToken, now time.Time) bool {
	return rec.Age(now) > TTLFor(rec.Purpose)
}
