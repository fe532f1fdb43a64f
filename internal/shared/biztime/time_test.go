package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBiz_UsesBusinessZone(t *testing.T) {
	require.NoError(t, Init("UTC"))
	t.Cleanup(func() { _ = Init("") })

	ts := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "01 Mar 2024 10:30 UTC", FormatBiz(ts))
}

func TestInit_RejectsUnknownZone(t *testing.T) {
	assert.Error(t, Init("Mars/Olympus_Mons"))
}

func TestNowUTC(t *testing.T) {
	assert.Equal(t, time.UTC, NowUTC().Location())
}
