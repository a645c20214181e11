package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krw-converter/internal/models"
)

func TestParseCode(t *testing.T) {
	code, err := models.ParseCode(" usd ")
	require.NoError(t, err)
	assert.Equal(t, models.USD, code)

	_, err = models.ParseCode("KRW")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported currency")

	_, err = models.ParseCode("")
	require.Error(t, err)
}

func TestSupportedCodes_OrderAndCopy(t *testing.T) {
	codes := models.SupportedCodes()
	assert.Equal(t, []models.Code{models.USD, models.JPY, models.EUR, models.CNY}, codes)

	codes[0] = "XXX"
	assert.Equal(t, models.USD, models.SupportedCodes()[0])
}

func TestCode_FlagFile(t *testing.T) {
	assert.Equal(t, "us.png", models.USD.FlagFile())
	assert.Equal(t, "jp.png", models.JPY.FlagFile())
	assert.Equal(t, "eu.png", models.EUR.FlagFile())
	assert.Equal(t, "cn.png", models.CNY.FlagFile())
}

func TestZeroRates(t *testing.T) {
	table := models.ZeroRates()

	assert.True(t, table.IsZero())
	assert.Empty(t, table.AsOf())
	for _, code := range models.SupportedCodes() {
		assert.True(t, table.Rate(code).IsZero(), code)
	}
}

func TestNewRateTable(t *testing.T) {
	rates := map[models.Code]decimal.Decimal{
		models.USD: decimal.RequireFromString("1333.33"),
		models.JPY: decimal.RequireFromString("9.1"),
		models.EUR: decimal.RequireFromString("1450"),
		models.CNY: decimal.RequireFromString("185.5"),
	}

	table, err := models.NewRateTable(rates, "2024-12-26")
	require.NoError(t, err)
	assert.False(t, table.IsZero())
	assert.Equal(t, "2024-12-26", table.AsOf())
	assert.Equal(t, "1333.33", table.Rate(models.USD).String())

	// the caller's map does not alias the snapshot
	rates[models.USD] = decimal.Zero
	assert.Equal(t, "1333.33", table.Rate(models.USD).String())
}

func TestNewRateTable_Rejects(t *testing.T) {
	full := func() map[models.Code]decimal.Decimal {
		return map[models.Code]decimal.Decimal{
			models.USD: decimal.NewFromInt(1),
			models.JPY: decimal.NewFromInt(1),
			models.EUR: decimal.NewFromInt(1),
			models.CNY: decimal.NewFromInt(1),
		}
	}

	missing := full()
	delete(missing, models.CNY)
	_, err := models.NewRateTable(missing, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing rate for CNY")

	zero := full()
	zero[models.EUR] = decimal.Zero
	_, err = models.NewRateTable(zero, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")

	extra := full()
	extra["GBP"] = decimal.NewFromInt(1)
	_, err = models.NewRateTable(extra, "")
	require.Error(t, err)
}
