package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBenchmark(t *testing.T) {
	benchmark, err := LoadBenchmark()
	require.NoError(t, err)

	assert.Equal(t, "m365_cis_v400", benchmark.ID)
	assert.Equal(t, "4.0.0", benchmark.Version)
	assert.Len(t, benchmark.Controls, 52)

	for _, control := range benchmark.Controls {
		assert.NotEmpty(t, control.ID)
		assert.NotEmpty(t, control.SectionCode, control.ID)
		assert.NotEmpty(t, control.Title, control.ID)
		assert.NotEqual(t, 0, control.Severity.Level(), control.ID)
	}
}

func TestLoadBenchmark_ControlByID(t *testing.T) {
	benchmark, err := LoadBenchmark()
	require.NoError(t, err)

	control, ok := benchmark.ControlByID("m365_cis_v400_2_1_8")
	require.True(t, ok)
	assert.Equal(t, "2.1.8", control.SectionCode)
	assert.True(t, control.ManualVerification)

	_, ok = benchmark.ControlByID("m365_cis_v400_0_0_0")
	assert.False(t, ok)
}

func TestLoadBenchmark_Tags(t *testing.T) {
	benchmark, err := LoadBenchmark()
	require.NoError(t, err)

	control, ok := benchmark.ControlByID("m365_cis_v400_1_1_3")
	require.True(t, ok)
	assert.Contains(t, control.Tags["service"], "admincenter")
	assert.NotEmpty(t, control.Tags["cis_profile_level"])
}

func TestLoadBenchmark_SeveritySummary(t *testing.T) {
	benchmark, err := LoadBenchmark()
	require.NoError(t, err)

	summary := benchmark.SeveritySummary()
	total := summary.NoneCount + summary.LowCount + summary.MediumCount + summary.HighCount + summary.CriticalCount
	assert.Equal(t, len(benchmark.Controls), total)
	assert.Greater(t, summary.HighCount, 0)
}

func TestLoadBenchmark_UniqueSectionCodes(t *testing.T) {
	benchmark, err := LoadBenchmark()
	require.NoError(t, err)

	seen := map[string]string{}
	for _, control := range benchmark.Controls {
		prev, dup := seen[control.SectionCode]
		assert.False(t, dup, "section %s used by %s and %s", control.SectionCode, prev, control.ID)
		seen[control.SectionCode] = control.ID
	}
}
