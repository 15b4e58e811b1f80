package documents

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	departure := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 5, 9, 4, 2, 0, time.UTC)

	got := FileName("CMR", "pdf", strPtr("SL123"), departure, now)

	assert.Equal(t, "CMR, SL123, 01-03-24 09:04:02.pdf", got)
}

func TestFileNameWithoutSeal(t *testing.T) {
	departure := time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 12, 24, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, "Pre-Alert, NoSeal, 24-12-24 23:59:59.pdf",
		FileName("Pre-Alert", "pdf", nil, departure, now))
	assert.Equal(t, "Manifest, NoSeal, 24-12-24 23:59:59.xlsx",
		FileName("Manifest", "xlsx", strPtr(""), departure, now))
}

func TestLocalDelivererWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	d := LocalDeliverer{Dir: dir}

	err := d.Deliver([]byte("payload"), "CMR, SL123, 01-03-24 09:04:02.pdf")

	require.NoError(t, err)
	content, err := os.ReadFile(filepath.Join(dir, "CMR, SL123, 01-03-24 09:04:02.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))
}

func TestLocalDelivererWrapsFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := LocalDeliverer{Dir: blocker}.Deliver([]byte("payload"), "doc.pdf")

	assert.ErrorIs(t, err, ErrDeliveryFailed)
}
