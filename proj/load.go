package proj

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"capuchin/common"
	"capuchin/report"

	"github.com/pelletier/go-toml"
)

// tomlProjectFile represents the project file as it is encoded in TOML
type tomlProjectFile struct {
	Project *tomlProject `toml:"project"`
	Repl    *tomlRepl    `toml:"repl,omitempty"`
	Display *tomlDisplay `toml:"display,omitempty"`
}

// tomlProject represents the [project] section of the project file
type tomlProject struct {
	Name    string `toml:"name"`
	Main    string `toml:"main,omitempty"`
	Version string `toml:"capuchin-version,omitempty"`
}

// tomlRepl represents the [repl] section of the project file
type tomlRepl struct {
	Prompt string `toml:"prompt,omitempty"`
	Mode   string `toml:"mode,omitempty"`
}

// tomlDisplay represents the [display] section of the project file
type tomlDisplay struct {
	LogLevel  string `toml:"log-level,omitempty"`
	MaxErrors int    `toml:"max-errors,omitempty"`
}

// Load loads and validates the project rooted at the given directory.  Every
// section of the project file other than [project] is optional: missing
// entries take their default values.  This function returns the deserialized
// project and an error value.
func Load(dir string) (*Project, error) {
	f, err := os.Open(filepath.Join(dir, common.ProjectFileName))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buff, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tpf := &tomlProjectFile{}
	if err := toml.Unmarshal(buff, tpf); err != nil {
		return nil, err
	}

	// project is the final, extracted configuration that is returned
	project := DefaultProject()
	project.Root = dir

	if err := applyProject(project, tpf.Project); err != nil {
		return nil, err
	}

	if err := applyRepl(project, tpf.Repl); err != nil {
		return nil, err
	}

	if err := applyDisplay(project, tpf.Display); err != nil {
		return nil, err
	}

	return project, nil
}

// Find searches the given directory and each of its ancestors for a project
// file and returns the directory containing the file it found.
func Find(startDir string) (string, bool) {
	dir := startDir

	for {
		if finfo, err := os.Stat(filepath.Join(dir, common.ProjectFileName)); err == nil && !finfo.IsDir() {
			return dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}

		dir = parent
	}
}

// applyProject checks that the [project] section is present and valid and
// moves its contents onto the project.
func applyProject(project *Project, tproj *tomlProject) error {
	if tproj == nil {
		return fmt.Errorf("missing [project] section in project at %s", project.Root)
	}

	if tproj.Name == "" {
		return fmt.Errorf("missing project name for project at %s", project.Root)
	}

	if !IsValidName(tproj.Name) {
		return errors.New("project name must be a valid identifier")
	}

	project.Name = tproj.Name

	if tproj.Main != "" {
		project.Main = tproj.Main
	}

	if tproj.Version != "" && tproj.Version != common.CapuchinVersion {
		report.ReportWarning(
			"Project",
			fmt.Sprintf("version of project `%s` (v%s) does not match current capuchin version (v%s)", tproj.Name, tproj.Version, common.CapuchinVersion),
		)
	}

	return nil
}

// applyRepl validates the optional [repl] section and moves its contents onto
// the project.
func applyRepl(project *Project, trepl *tomlRepl) error {
	if trepl == nil {
		return nil
	}

	if trepl.Prompt != "" {
		project.Prompt = trepl.Prompt
	}

	if trepl.Mode != "" {
		if !IsValidMode(trepl.Mode) {
			return fmt.Errorf("`%s` is not a valid repl mode", trepl.Mode)
		}

		project.ReplMode = trepl.Mode
	}

	return nil
}

// applyDisplay validates the optional [display] section and moves its
// contents onto the project.
func applyDisplay(project *Project, tdisp *tomlDisplay) error {
	if tdisp == nil {
		return nil
	}

	if tdisp.LogLevel != "" {
		if !report.IsValidLogLevel(tdisp.LogLevel) {
			return fmt.Errorf("`%s` is not a valid log level", tdisp.LogLevel)
		}

		project.LogLevel = tdisp.LogLevel
	}

	if tdisp.MaxErrors < 0 {
		return errors.New("max-errors cannot be negative")
	}

	if tdisp.MaxErrors > 0 {
		project.MaxErrors = tdisp.MaxErrors
	}

	return nil
}
