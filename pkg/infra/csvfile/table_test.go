package csvfile_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"golang.org/x/text/unicode/norm"

	"github.com/m-mizutani/reldash/pkg/domain/types"
	"github.com/m-mizutani/reldash/pkg/infra/csvfile"
)

const sampleCSV = `레포지토리,배포일시,태그명,작성자
stackflow,2024-01-03T10:00:00Z,@stackflow/core@1.0.0,alice
stackflow,2024-01-15T10:00:00Z,@stackflow/core@1.0.1,bob

seed-design,2024-02-01T09:00:00Z,v2.0.0,alice
`

func TestLoad(t *testing.T) {
	table, err := csvfile.Load(strings.NewReader(sampleCSV))
	gt.NoError(t, err)

	gt.A(t, table.Header()).Length(4)
	gt.Equal(t, table.Len(), 3)
	gt.Equal(t, table.Row(2), []string{"seed-design", "2024-02-01T09:00:00Z", "v2.0.0", "alice"})

	idx, err := table.Index("태그명")
	gt.NoError(t, err)
	gt.Equal(t, idx, 2)
}

func TestLoad_BOMAndDecomposedHeader(t *testing.T) {
	header := norm.NFD.String("레포지토리") + ",author"
	input := "\ufeff" + header + "\nstackflow,alice\n"

	table, err := csvfile.Load(strings.NewReader(input))
	gt.NoError(t, err)

	idx, err := table.Index("레포지토리")
	gt.NoError(t, err)
	gt.Equal(t, idx, 0)
	gt.Equal(t, table.Len(), 1)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "ragged row", input: "a,b\n1,2\n3\n"},
		{name: "bare quote", input: "a,b\n\"1,2\n"},
		{name: "empty column name", input: "a,,c\n1,2,3\n"},
		{name: "duplicated column", input: "a,a\n1,2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := csvfile.Load(strings.NewReader(tt.input))
			gt.Error(t, err)
			gt.B(t, goerr.HasTag(err, types.ErrTagParse)).True()
		})
	}
}

func TestTable_Index_Missing(t *testing.T) {
	table, err := csvfile.Load(strings.NewReader("a,b\n1,2\n"))
	gt.NoError(t, err)

	_, err = table.Index("c")
	gt.Error(t, err)
	gt.B(t, goerr.HasTag(err, types.ErrTagParse)).True()
}

func TestLoad_HeaderOnly(t *testing.T) {
	table, err := csvfile.Load(strings.NewReader("a,b\n"))
	gt.NoError(t, err)
	gt.Equal(t, table.Len(), 0)
}
