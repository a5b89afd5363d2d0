package docscrape_test

import (
	"testing"

	"github.com/fwojciec/docscrape"
	"github.com/stretchr/testify/assert"
)

func TestFormatTable(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for nil table", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docscrape.FormatTable(nil))
	})

	t.Run("prints header then rows separated by spaces", func(t *testing.T) {
		t.Parallel()

		table := docscrape.NewTable("Status", "Count")
		table.Append("Final", "3")
		table.Append("Total", "3")

		assert.Equal(t, "Status Count\nFinal 3\nTotal 3\n", docscrape.FormatTable(table))
	})
}

func TestTable_Records(t *testing.T) {
	t.Parallel()

	table := docscrape.NewTable("a", "b")
	table.Append("1", "2")

	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}}, table.Records())
}
