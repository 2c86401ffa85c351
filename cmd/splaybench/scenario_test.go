package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadScenarios(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- name: small
  seed: 7
  inserts: 100
  gets: 50
- name: churn
  seed: 7
  inserts: 200
  deletes: 200
`), 0o644))

	scenarios, err := loadScenarios(path)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	require.Equal(t, "small", scenarios[0].Name)
	require.Equal(t, int64(7), scenarios[0].Seed)
	require.Equal(t, 100, scenarios[0].Inserts)
	require.Equal(t, 50, scenarios[0].Gets)
	require.Equal(t, 200, scenarios[1].Deletes)
}

func TestLoadScenariosRejectsBadCounts(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"zero-inserts.yaml":  "- name: bad\n  inserts: 0\n",
		"over-deletes.yaml":  "- name: bad\n  inserts: 10\n  deletes: 20\n",
		"negative-gets.yaml": "- name: bad\n  inserts: 10\n  gets: -1\n",
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		_, err := loadScenarios(path)
		require.Error(t, err, name)
	}
}

func TestLoadScenariosMissingFile(t *testing.T) {
	_, err := loadScenarios(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestDefaultScenariosValidate(t *testing.T) {
	for _, sc := range defaultScenarios() {
		require.NoError(t, sc.validate(), sc.Name)
	}
}

func TestOpStats(t *testing.T) {
	var s opStats
	for _, b := range []int64{1, 2, 3, 4, 5} {
		s.add(time.Duration(b) * bucketTick)
	}
	require.Equal(t, int64(5), s.count)
	require.Equal(t, 3*bucketTick, s.median())
	require.Equal(t, 3*bucketTick, s.average)
}
