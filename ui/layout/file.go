//go:build !tinygo

package layout

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

const (
	ConfigDirName = "neoportal"
	ConfigName    = "layout.toml"
)

// LoadFile reads a TOML layout. Keys missing from the file keep the values of
// the built-in table for the board and rotation named in the file.
func LoadFile(path string) (Table, error) {
	var head struct {
		Board    string `toml:"board"`
		Rotation int    `toml:"rotation"`
	}
	if _, err := toml.DecodeFile(path, &head); err != nil {
		return Table{}, fmt.Errorf("layout: %s: %w", path, err)
	}
	t, err := Default(head.Board, head.Rotation)
	if err != nil {
		return Table{}, fmt.Errorf("layout: %s: %w", path, err)
	}
	defaults := t.Buttons
	t.Buttons = nil
	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return Table{}, fmt.Errorf("layout: %s: %w", path, err)
	}
	if !md.IsDefined("buttons") {
		t.Buttons = defaults
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Table{}, fmt.Errorf("layout: %s: unknown key %q", path, undecoded[0].String())
	}
	if _, err := Build(t); err != nil {
		return Table{}, fmt.Errorf("layout: %s: %w", path, err)
	}
	return t, nil
}

// FindConfig returns the path of the user's layout file under the XDG
// config home, or "" when there is none.
func FindConfig() (string, error) {
	fullPath := path.Join(xdg.ConfigHome, ConfigDirName, ConfigName)
	if _, err := os.Stat(fullPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("layout: %w", err)
	}
	return fullPath, nil
}
