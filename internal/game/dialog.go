package game

import (
	"errors"

	"github.com/ncruces/zenity"
)

// selectProfile asks for a YAML config profile. An empty path means the user
// cancelled.
func selectProfile() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Open Mouse Away Profile"),
		zenity.FileFilters{{
			Name:     "YAML",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return path, nil
}

func showError(err error) {
	_ = zenity.Error(err.Error(), zenity.Title("Mouse Away"), zenity.ErrorIcon)
}
