package xlsx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSheetWrite(t *testing.T) {
	sheet := Sheet{
		Name:    "Adiantamentos",
		Headers: []string{"Funcionário", "Período", "Total"},
		Rows: [][]any{
			{"Maria Souza", "2024-06", 1400.0},
			{"João Lima", "2024-06", 980.5},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, sheet.Write(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Adiantamentos"}, f.GetSheetList())

	rows, err := f.GetRows("Adiantamentos")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Funcionário", "Período", "Total"}, rows[0])
	assert.Equal(t, "Maria Souza", rows[1][0])
	assert.Equal(t, "1400", rows[1][2])
	assert.Equal(t, "980.5", rows[2][2])
}

func TestSheetWriteEmptyRows(t *testing.T) {
	sheet := Sheet{
		Name:    "Relatorio_2024",
		Headers: []string{"Funcionário", "Total Anual"},
	}

	var buf bytes.Buffer
	require.NoError(t, sheet.Write(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Relatorio_2024")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
