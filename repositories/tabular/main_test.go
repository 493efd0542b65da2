package tabular_test

import (
	"context"
	"fmdverse/api/models/failures"
	"fmdverse/api/repositories/tabular"
	"fmdverse/api/tests/common"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormat(t *testing.T) {
	cases := map[string]tabular.Format{
		"fmdv_master_dataset.csv":                   tabular.Csv,
		"/data/FMDV.CSV":                            tabular.Csv,
		"metadata.tsv":                              tabular.Tsv,
		"metadata.txt":                              tabular.Tsv,
		"metadata.xlsx":                             tabular.Xlsx,
		"https://example.org/data/meta.xlsx?raw=1":  tabular.Xlsx,
		"https://example.org/data/meta.csv#sheet=1": tabular.Csv,
		"tree.nwk":                                  tabular.Unknown,
		"metadata":                                  tabular.Unknown,
	}

	for source, expected := range cases {
		assert.Equal(t, expected, tabular.DetectFormat(source), source)
	}
}

func TestIsRemote(t *testing.T) {
	assert.True(t, tabular.IsRemote("https://example.org/meta.csv"))
	assert.True(t, tabular.IsRemote("HTTP://example.org/meta.csv"))
	assert.False(t, tabular.IsRemote("/srv/meta.csv"))
	assert.False(t, tabular.IsRemote("ftp://example.org/meta.csv"))
}

func TestReadFrame(t *testing.T) {
	t.Run("should trim header names", func(t *testing.T) {
		df, err := tabular.ReadFrame(context.Background(), common.DataPath("metadata_no_year.csv"), tabular.DefaultOptions())

		assert.Nil(t, err)
		assert.Equal(t, []string{"Accession", "Country", "Serotype"}, df.Names())
		assert.Equal(t, 3, df.Nrow())
	})

	t.Run("should read every cell as text", func(t *testing.T) {
		df, err := tabular.ReadFrame(context.Background(), common.DataPath("metadata.csv"), tabular.DefaultOptions())

		assert.Nil(t, err)
		assert.Equal(t, "2016.0", df.Col("Year").Elem(6).String())
	})

	t.Run("should tag unsupported sources", func(t *testing.T) {
		_, err := tabular.ReadFrame(context.Background(), common.DataPath("tree.nwk"), tabular.DefaultOptions())
		assert.True(t, failures.IsDataUnavailable(err))
	})
}

func TestReadFrameShapes(t *testing.T) {
	write := func(t *testing.T, name string, content string) string {
		target := filepath.Join(t.TempDir(), name)
		assert.Nil(t, os.WriteFile(target, []byte(content), 0o644))
		return target
	}

	t.Run("should keep the columns of a header-only source", func(t *testing.T) {
		df, err := tabular.ReadFrame(context.Background(), write(t, "h.csv", "\ufeff Accession ,Country\n"), tabular.DefaultOptions())

		assert.Nil(t, err)
		assert.Equal(t, []string{"Accession", "Country"}, df.Names())
		assert.Equal(t, 0, df.Nrow())
	})

	t.Run("should pad short rows", func(t *testing.T) {
		df, err := tabular.ReadFrame(context.Background(), write(t, "s.tsv", "a\tb\tc\n1\n1\t2\t3\n"), tabular.DefaultOptions())

		assert.Nil(t, err)
		assert.Equal(t, 2, df.Nrow())
		assert.Equal(t, "", df.Col("c").Elem(0).String())
		assert.Equal(t, "3", df.Col("c").Elem(1).String())
	})
}
