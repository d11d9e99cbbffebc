package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/reldash/pkg/cli"
	"github.com/m-mizutani/reldash/pkg/domain/types"
)

const releaseCSV = `레포지토리,배포일시,태그명,작성자
stackflow,2024-01-03T10:00:00Z,@stackflow/core@1.0.0,alice
seed-design,2024-02-01T09:00:00Z,@seed-design/react@0.1.0,bob
`

func writeCSV(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "release_raw.csv")
	gt.NoError(t, os.WriteFile(path, []byte(data), 0600))
	return path
}

func TestRun_Render(t *testing.T) {
	data := writeCSV(t, releaseCSV)
	output := filepath.Join(t.TempDir(), "dashboard.html")

	err := cli.Run(context.Background(), []string{
		"reldash", "--log-level", "error",
		"render", "--data", data, "--output", output, "--title", "Release dashboard",
	})
	gt.NoError(t, err)

	html, err := os.ReadFile(output)
	gt.NoError(t, err)
	gt.S(t, string(html)).Contains("Release dashboard")
	gt.S(t, string(html)).Contains("seed-design")
}

func TestRun_RenderFailureLeavesNoFile(t *testing.T) {
	data := writeCSV(t, "레포지토리,배포일시,태그명,작성자\nstackflow,tomorrow,v1,alice\n")
	output := filepath.Join(t.TempDir(), "dashboard.html")

	err := cli.Run(context.Background(), []string{
		"reldash", "--log-level", "error",
		"render", "--data", data, "--output", output,
	})
	gt.Error(t, err)
	gt.B(t, goerr.HasTag(err, types.ErrTagInvalidTimestamp)).True()

	_, statErr := os.Stat(output)
	gt.B(t, os.IsNotExist(statErr)).True()
}

func TestRun_MissingData(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"reldash", "--log-level", "error",
		"summary", "--data", filepath.Join(t.TempDir(), "missing.csv"),
	})
	gt.Error(t, err)
	gt.B(t, goerr.HasTag(err, types.ErrTagParse)).True()
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"reldash", "--log-level", "verbose", "summary",
	})
	gt.Error(t, err)
}
