package proj

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"minipyc/common"
	"minipyc/report"
)

func writeProjectFile(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, common.ProjectFileName)
	if err := ioutil.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("unable to write project file: %s", err)
	}

	return dir
}

func TestLoadProject(t *testing.T) {
	report.InitReporter(report.LogLevelSilent)

	dir := writeProjectFile(t,
		"name = \"demo\"\n"+
			"emit = [\"tokens\", \"tac\"]\n"+
			"out-path = \"listings\"\n")

	if !HasProjectFile(dir) {
		t.Fatal("expected the project file to be detected")
	}

	p, ok := LoadProject(dir)
	if !ok {
		t.Fatal("expected the project to load")
	}

	if p.Name != "demo" {
		t.Errorf("expected project name `demo`, got `%s`", p.Name)
	}

	if len(p.Emit) != 2 || p.Emit[0] != "tokens" || p.Emit[1] != "tac" {
		t.Errorf("bad emissions: %v", p.Emit)
	}

	if p.OutPath != "listings" {
		t.Errorf("expected out-path `listings`, got `%s`", p.OutPath)
	}
}

func TestLoadProjectDefaults(t *testing.T) {
	report.InitReporter(report.LogLevelSilent)

	dir := writeProjectFile(t, "name = \"demo\"\n")

	p, ok := LoadProject(dir)
	if !ok {
		t.Fatal("expected the project to load")
	}

	if len(p.Emit) != 0 || p.OutPath != "" {
		t.Errorf("expected empty emissions and out-path, got %v / %q", p.Emit, p.OutPath)
	}
}

func TestLoadProjectInvalid(t *testing.T) {
	report.InitReporter(report.LogLevelSilent)

	tests := []struct {
		name     string
		contents string
	}{
		{
			name:     "missing name",
			contents: "emit = [\"tac\"]\n",
		},
		{
			name: "unknown emission",
			contents: "name = \"demo\"\n" +
				"emit = [\"llvm\"]\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := writeProjectFile(t, test.contents)

			if _, ok := LoadProject(dir); ok {
				t.Error("expected the project to fail validation")
			}
		})
	}
}

func TestHasProjectFileMissing(t *testing.T) {
	if HasProjectFile(t.TempDir()) {
		t.Error("expected no project file in an empty directory")
	}
}
