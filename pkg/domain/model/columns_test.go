package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/reldash/pkg/domain/model"
)

func TestColumns_Merge(t *testing.T) {
	base := model.DefaultColumns()

	t.Run("empty columns take every default", func(t *testing.T) {
		got := model.Columns{}.Merge(base)
		gt.Equal(t, got, base)
	})

	t.Run("set columns are kept", func(t *testing.T) {
		got := model.Columns{Repository: "repo", Author: "author"}.Merge(base)
		gt.Equal(t, got.Repository, "repo")
		gt.Equal(t, got.Author, "author")
		gt.Equal(t, got.PublishedAt, base.PublishedAt)
		gt.Equal(t, got.TagName, base.TagName)
	})
}

func TestReleaseRecord_ModuleName(t *testing.T) {
	core := "core"
	empty := ""

	tests := []struct {
		name   string
		module *string
		want   string
		wantOK bool
	}{
		{name: "module present", module: &core, want: "core", wantOK: true},
		{name: "empty module is still present", module: &empty, want: "", wantOK: true},
		{name: "no module", module: nil, want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &model.ReleaseRecord{Module: tt.module}
			got, ok := r.ModuleName()
			gt.Equal(t, got, tt.want)
			gt.Equal(t, ok, tt.wantOK)
		})
	}
}
