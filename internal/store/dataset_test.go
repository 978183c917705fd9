package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inovacc/stockfolio/internal/model"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_EmbeddedSample(t *testing.T) {
	s, err := Load("", "")
	require.NoError(t, err)
	require.Positive(t, s.Len())
	require.NotEmpty(t, s.Stocks())

	// every portfolio symbol in the sample resolves to a stock
	for _, u := range s.Users() {
		for _, e := range u.User.Portfolio {
			_, ok := s.FindStockBySymbol(e.Symbol)
			require.True(t, ok, "symbol %s of user %s", e.Symbol, u.ID)
		}
	}
}

func TestLoad_JSON(t *testing.T) {
	users := writeFile(t, "users.json", `[
		{"id": 1, "user": {"firstname": "Ann", "lastname": "Lee", "portfolio": [{"symbol": "KO", "owned": 3}]}},
		{"id": "2", "user": {"firstname": "Bo", "lastname": "Ng"}}
	]`)
	stocks := writeFile(t, "stocks.json", `[{"symbol": "KO", "name": "Coca-Cola", "subIndustry": "Soft Drinks"}]`)

	s, err := Load(users, stocks)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())

	u, ok := s.FindUserByID(model.ParseID("2"))
	require.True(t, ok)
	require.Equal(t, "Bo", u.User.FirstName)

	st, ok := s.FindStockBySymbol("KO")
	require.True(t, ok)
	require.Equal(t, "Soft Drinks", st.SubIndustry)
}

func TestLoad_YAML(t *testing.T) {
	users := writeFile(t, "users.yaml", `
- id: 10
  user:
    firstname: Ann
    lastname: Lee
    portfolio:
      - symbol: AAPL
        owned: 2.5
`)
	stocks := writeFile(t, "stocks.yml", `
- symbol: AAPL
  name: Apple Inc.
  subIndustry: Technology Hardware
`)

	s, err := Load(users, stocks)
	require.NoError(t, err)

	u, ok := s.FindUserByID(model.ParseID("10"))
	require.True(t, ok)
	require.Equal(t, "2.5", u.User.Portfolio[0].Owned.String())
}

func TestLoad_MissingFieldsAreNotValidated(t *testing.T) {
	users := writeFile(t, "users.json", `[{"id": 1}]`)

	s, err := Load(users, "")
	require.NoError(t, err)

	u, ok := s.FindUserByID(model.ParseID("1"))
	require.True(t, ok)
	require.Empty(t, u.User.FirstName)
	require.Empty(t, u.User.Portfolio)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"), "")
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad json", func(t *testing.T) {
		_, err := Load(writeFile(t, "users.json", `[{`), "")
		require.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load("", writeFile(t, "stocks.csv", "symbol,name\n"))
		require.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}
