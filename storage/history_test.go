package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bxcodec/faker/v3"
	"github.com/stretchr/testify/require"

	converter "github.com/lyssadev/currency-converter"
	"github.com/lyssadev/currency-converter/storage"
)

type amountFixture struct {
	Amount float64 `faker:"amount"`
	Result float64 `faker:"amount"`
}

func conversionAt(t *testing.T, timestamp time.Time) converter.Conversion {
	t.Helper()

	var fixture amountFixture
	require.Nil(t, faker.FakeData(&fixture))

	return converter.Conversion{
		Timestamp:    timestamp,
		FromAmount:   fixture.Amount,
		FromCurrency: "USD",
		ToCurrency:   "EUR",
		Result:       fixture.Result,
	}
}

func TestFileHistoryStore_LoadAll(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	t.Run("MissingFile", func(t *testing.T) {
		store := storage.NewFileHistoryStore(filepath.Join(t.TempDir(), "conversion_history.json"))

		history, err := store.LoadAll()
		asserts.Nil(err)
		asserts.Empty(history)
	})

	t.Run("CorruptFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "conversion_history.json")
		asserts.Nil(os.WriteFile(path, []byte("[{broken"), 0o644))

		store := storage.NewFileHistoryStore(path)

		history, err := store.LoadAll()
		asserts.NotNil(err)
		asserts.Nil(history)
	})
}

func TestFileHistoryStore_AppendRoundTrip(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	store := storage.NewFileHistoryStore(filepath.Join(t.TempDir(), "conversion_history.json"))
	now := time.Now()

	saved := []converter.Conversion{
		conversionAt(t, now.Add(-2*time.Hour)),
		conversionAt(t, now.Add(-time.Hour)),
		conversionAt(t, now),
	}

	for _, conversion := range saved {
		asserts.Nil(store.Append(conversion))
	}

	loaded, err := store.LoadAll()
	asserts.Nil(err)
	asserts.Len(loaded, len(saved))

	for i, conversion := range saved {
		asserts.True(loaded[i].Timestamp.Equal(conversion.Timestamp))
		asserts.Equal(conversion.FromAmount, loaded[i].FromAmount)
		asserts.Equal(conversion.FromCurrency, loaded[i].FromCurrency)
		asserts.Equal(conversion.ToCurrency, loaded[i].ToCurrency)
		asserts.Equal(conversion.Result, loaded[i].Result)
	}
}

func TestFileHistoryStore_AppendWritesContract(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	path := filepath.Join(t.TempDir(), "conversion_history.json")
	store := storage.NewFileHistoryStore(path)

	asserts.Nil(store.Append(converter.Conversion{
		Timestamp:    time.Now(),
		FromAmount:   100.0,
		FromCurrency: "USD",
		ToCurrency:   "EUR",
		Result:       92.0,
	}))

	data, err := os.ReadFile(path)
	asserts.Nil(err)
	asserts.Contains(string(data), `"from_amount": 100`)
	asserts.Contains(string(data), `"from_currency": "USD"`)
	asserts.Contains(string(data), `"to_currency": "EUR"`)
	asserts.Contains(string(data), `"result": 92`)
	asserts.Contains(string(data), `"timestamp"`)
}
