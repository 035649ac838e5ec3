package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Fingerprint derives a stable identity for a finding, used by baseline
// files and ignore matching. Two findings are the same when the rule, the
// contract module, and the source span all agree; message wording and
// confidence may change between releases without breaking baselines.
func Fingerprint(ruleID, module, file string, start, end int) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\n%s\n%s:%d-%d", ruleID, module, file, start, end)
	return hex.EncodeToString(h.Sum(nil))
}
