package container

import (
	"context"
	"strings"
	"testing"

	"hylin/einvoice-csv/internal/config"
	"hylin/einvoice-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.InitializeConfig()
	require.NoError(t, err)
	return cfg
}

func TestNewContainerWiresDependencies(t *testing.T) {
	c, err := NewContainer(testConfig(t))
	require.NoError(t, err)

	assert.NotNil(t, c.GetLogger())
	assert.NotNil(t, c.GetConfig())
	assert.NotNil(t, c.GetCategorizer())
	assert.NotNil(t, c.GetStore())
	assert.NotNil(t, c.GetCache())
	assert.NotNil(t, c.GetCollection())
	assert.NotNil(t, c.GetReportGenerator())
}

func TestNewContainerNilConfig(t *testing.T) {
	_, err := NewContainer(nil)
	assert.Error(t, err)
}

func TestDelimiter(t *testing.T) {
	cfg := testConfig(t)
	cfg.CSV.Delimiter = ";"
	c, err := NewContainer(cfg)
	require.NoError(t, err)
	assert.Equal(t, ';', c.Delimiter())

	cfg2 := testConfig(t)
	cfg2.CSV.Delimiter = ""
	c2, err := NewContainer(cfg2)
	require.NoError(t, err)
	assert.Equal(t, ',', c2.Delimiter())
}

func TestNewParserUsesConfiguredOptions(t *testing.T) {
	cfg := testConfig(t)
	cfg.Parser.SkipErrors = false
	c, err := NewContainer(cfg)
	require.NoError(t, err)

	var progressed bool
	p := c.NewParser(func(models.Progress) { progressed = true })

	// The parser honors skip_errors=false: the bad row aborts the parse.
	input := "D,INV1,50\nM,,,2024/01/15,,店家,INV1,100\n"
	result, err := p.Parse(context.Background(), strings.NewReader(input), int64(len(input)))
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Empty(t, result.Invoices)
	assert.False(t, progressed)
}
