package proj

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"minipyc/common"
	"minipyc/report"
	"minipyc/util"
)

// EmitNames lists the valid emission names usable in a project file's `emit`
// list.  They match the build command's emission flags.
var EmitNames = []string{"tokens", "ast", "symtable", "tac"}

// tomlProject represents a project as it is encoded in TOML.
type tomlProject struct {
	Name    string   `toml:"name"`
	Emit    []string `toml:"emit"`
	OutPath string   `toml:"out-path"`
}

// Project is the configuration of a compilation loaded from a `minipy.toml`
// file: the project name, the default emissions, and where listings are
// written.
type Project struct {
	// AbsPath is the absolute path to the project directory.
	AbsPath string

	// Name is the name of the project.
	Name string

	// Emit are the emissions produced when the build command passes no
	// emission flags.
	Emit []string

	// OutPath is the directory listings are written to.  If it is empty,
	// listings go to standard output.
	OutPath string
}

// HasProjectFile returns whether the given directory contains a project file.
func HasProjectFile(abspath string) bool {
	_, err := os.Stat(filepath.Join(abspath, common.ProjectFileName))
	return err == nil
}

// LoadProject loads and validates the project file in the given directory.
// `abspath` is the absolute path to the project directory.  This function
// returns the deserialized project and a success boolean.
func LoadProject(abspath string) (*Project, bool) {
	f, err := os.Open(filepath.Join(abspath, common.ProjectFileName))
	if err != nil {
		report.ReportFatal("unable to open project file at `%s`: %s", abspath, err.Error())
		return nil, false
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		report.ReportFatal("error reading project file at `%s`: %s", abspath, err.Error())
		return nil, false
	}

	tomlProj := &tomlProject{}
	if err := toml.Unmarshal(buff, tomlProj); err != nil {
		report.ReportFatal("error parsing project file at `%s`: %s", abspath, err.Error())
		return nil, false
	}

	proj := &Project{AbsPath: abspath}
	if !validateProject(proj, tomlProj) {
		return nil, false
	}

	return proj, true
}

// validateProject checks that the project contents are valid and moves them
// over onto the final project.
func validateProject(proj *Project, tomlProj *tomlProject) bool {
	if tomlProj.Name == "" {
		report.ReportStdError(proj.AbsPath, fmt.Errorf("missing project name"))
		return false
	}

	for _, emit := range tomlProj.Emit {
		if !util.Contains(EmitNames, emit) {
			report.ReportStdError(proj.AbsPath, fmt.Errorf("unknown emission `%s` in project file", emit))
			return false
		}
	}

	proj.Name = tomlProj.Name
	proj.Emit = tomlProj.Emit
	proj.OutPath = tomlProj.OutPath
	return true
}
