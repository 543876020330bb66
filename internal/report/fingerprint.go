package report

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
)

// Fingerprint hashes the content of a report's totals. Equal totals in equal order
// give equal fingerprints; generation time and chart presentation are not part of it.
func Fingerprint(totals []domain.CategoryTotal) string {
	h := sha256.New()
	for _, c := range totals {
		fmt.Fprintf(h, "c\x00%s\x00%s\x00%s\n", c.CategoryID, c.DisplayName, c.Total.StringFixed(2))
		for _, n := range c.Breakdown {
			fmt.Fprintf(h, "n\x00%s\x00%s\n", n.Note, n.Amount.StringFixed(2))
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
