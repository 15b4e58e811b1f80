package documents

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGenerateManifestWorkbook(t *testing.T) {
	gen := NewGenerator(&stubFetcher{data: sampleShipmentData()})
	gen.now = func() time.Time { return time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC) }

	doc, err := gen.GenerateManifest("ship-1")
	require.NoError(t, err)
	assert.Equal(t, "Manifest, SL123, 01-03-24 08:00:00.xlsx", doc.FileName)

	f, err := excelize.OpenReader(bytes.NewReader(doc.Payload))
	require.NoError(t, err)
	defer f.Close()

	driver, err := f.GetCellValue(manifestSheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "J. Laurent", driver)

	customer, err := f.GetCellValue(manifestSheet, "A8")
	require.NoError(t, err)
	assert.Equal(t, "Asendia UK", customer)

	// totals row sits right below the two detail rows
	totalBags, err := f.GetCellValue(manifestSheet, "E10")
	require.NoError(t, err)
	assert.Equal(t, "6", totalBags)
}

func TestGenerateManifestShipmentNotFound(t *testing.T) {
	gen := NewGenerator(&stubFetcher{err: ErrShipmentNotFound})

	doc, err := gen.GenerateManifest("missing")

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrShipmentNotFound)
}
