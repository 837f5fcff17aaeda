package fetch

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repos.json")
	repos := []Repo{
		{Name: "one", Stars: 1},
		{Name: "two", Stars: 2},
	}

	require.NoError(t, ExportJSON(path, repos))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var back []Repo
	require.NoError(t, json.Unmarshal(data, &back))
	require.Len(t, back, 2)
	assert.Equal(t, "one", back[0].Name)
	assert.Contains(t, string(data), "\n  ", "output should be indented")
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.csv")
	records := []CSVRecord{
		CoinPrice{Name: "Bitcoin", Symbol: "BTC", PriceUSD: 65000.5},
		CoinPrice{Name: "Ethereum", Symbol: "ETH", PriceUSD: 3500},
	}

	require.NoError(t, ExportCSV(path, records))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, CoinPrice{}.CSVHeader(), rows[0])
	assert.Equal(t, "Bitcoin", rows[1][0])
	assert.Equal(t, "65000.5", rows[1][2])
}

func TestExportCSV_Empty(t *testing.T) {
	assert.Error(t, ExportCSV(filepath.Join(t.TempDir(), "x.csv"), nil))
}

func TestDefaultOutputName(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 3, 1, 0, time.UTC)
	assert.Equal(t, "github_data_20240615_120301.json", DefaultOutputName("github", "json", now))
	assert.Equal(t, "crypto_data_20240615_120301.csv", DefaultOutputName("crypto", "csv", now))
}
