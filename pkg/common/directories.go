package common

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const FilePermissions = 0755

var (
	// Directory is where cutechess keeps its data.
	Directory = filepath.Join(xdg.Home, "cutechess")

	// GamesFile is the default sink for converted games.
	GamesFile = filepath.Join(Directory, "games.pgn")
)

func TryMkdir(dir string) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		_ = os.Mkdir(dir, FilePermissions)
	}
}
