package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltgrid/bess-engine/internal/scenario"
)

func TestReadScenario(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"type": "essentials",
			"financials": {"net_investment": 200000, "payback_years": 4.4}
		}`), 0o644))

		got, err := readScenario(path)
		require.NoError(t, err)
		assert.Equal(t, scenario.TypeEssentials, got.Type)
		assert.Equal(t, 200000.0, got.Financials.NetInvestment)
		assert.Equal(t, 4.4, got.Financials.PaybackYears)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readScenario("/nonexistent/a.json")
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{{{"), 0o644))

		_, err := readScenario(path)
		assert.Error(t, err)
	})
}
