package proj

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"capuchin/common"

	"github.com/pelletier/go-toml"
)

// Init creates a new project with the given name at the given path by writing
// a starter project file there.
func Init(name, path string) error {
	projFilePath := filepath.Join(path, common.ProjectFileName)

	// check to see if a project file already exists
	_, err := os.Stat(projFilePath)
	if err == nil {
		return errors.New("project file already exists")
	}

	if !os.IsNotExist(err) {
		return fmt.Errorf("project file error: %s", err.Error())
	}

	// validate project name
	if !IsValidName(name) {
		return errors.New("project name must be a valid identifier")
	}

	tpf := &tomlProjectFile{
		Project: &tomlProject{
			Name:    name,
			Main:    "main" + common.SrcFileExtension,
			Version: common.CapuchinVersion,
		},
		Repl: &tomlRepl{
			Prompt: common.DefaultPrompt,
			Mode:   DefaultMode,
		},
		Display: &tomlDisplay{
			LogLevel:  DefaultLogLevel,
			MaxErrors: DefaultMaxErrors,
		},
	}

	// encode and save the project to the file
	f, err := os.Create(projFilePath)
	if err != nil {
		return fmt.Errorf("error creating project file: %s", err.Error())
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(tpf); err != nil {
		return fmt.Errorf("error encoding TOML %s", err.Error())
	}

	return nil
}
