package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// ImportFilename is the name of the config file users download from the
// feed's web UI.
const ImportFilename = "driftpaper.toml"

// ErrImportNotFound is returned when no downloaded config file was found in
// any of the searched locations.
var ErrImportNotFound = errors.New("no downloaded config file found")

// Import looks for a freshly downloaded config file in the usual landing
// spots (Downloads, Documents, then the home directory) and installs it at
// the canonical config path. It returns the path the file was found at.
func Import() (string, error) {
	candidates := []string{
		filepath.Join(xdg.UserDirs.Download, ImportFilename),
		filepath.Join(xdg.UserDirs.Documents, ImportFilename),
		filepath.Join(xdg.Home, ImportFilename),
	}
	return importFrom(candidates, ConfigPath())
}

func importFrom(candidates []string, dest string) (string, error) {
	for _, src := range candidates {
		if _, err := os.Stat(src); err != nil {
			continue
		}
		// Parse before installing so a corrupt download is rejected here
		// rather than on every later startup.
		if _, err := LoadConfig(src); err != nil {
			return "", err
		}
		if err := install(src, dest); err != nil {
			return "", err
		}
		return src, nil
	}
	return "", ErrImportNotFound
}

func install(src, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
