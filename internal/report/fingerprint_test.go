package report

import (
	"testing"
	"time"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	categories := map[string]*domain.Category{"food": {ID: "food", Name: "Food"}}

	base := Aggregate([]*domain.Transaction{
		{ID: "1", Date: day, Amount: -500, CategoryID: "food", Notes: "lunch"},
	}, categories)
	same := Aggregate([]*domain.Transaction{
		{ID: "2", Date: day, Amount: -200, CategoryID: "food", Notes: "lunch"},
		{ID: "3", Date: day, Amount: -300, CategoryID: "food", Notes: "lunch"},
	}, categories)
	changed := Aggregate([]*domain.Transaction{
		{ID: "1", Date: day, Amount: -501, CategoryID: "food", Notes: "lunch"},
	}, categories)
	renamed := Aggregate([]*domain.Transaction{
		{ID: "1", Date: day, Amount: -500, CategoryID: "food", Notes: "dinner"},
	}, categories)

	assert.Equal(t, Fingerprint(base), Fingerprint(same))
	assert.NotEqual(t, Fingerprint(base), Fingerprint(changed))
	assert.NotEqual(t, Fingerprint(base), Fingerprint(renamed))
	assert.Len(t, Fingerprint(nil), 64)
	assert.NotEqual(t, Fingerprint(nil), Fingerprint(base))
}
