package server

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ladders/model"
)

// CustomBoard is the board number a layout file replaces.
const CustomBoard = 2

// LoadLayouts returns the default catalog, with the custom board replaced by
// the layout in path when path is set. Every board is validated here so a
// broken layout never reaches a game.
func LoadLayouts(path string) (model.Catalog, error) {
	catalog := model.DefaultCatalog()
	if path != "" {
		l, err := Load(path)
		if err != nil {
			return nil, err
		}
		catalog[CustomBoard] = l
		log.WithField("file", path).Infof("board %d loaded", CustomBoard)
	}
	for _, board := range catalog.Boards() {
		if _, err := model.NewBoard(catalog[board]); err != nil {
			return nil, fmt.Errorf("board %d: %w", board, err)
		}
	}
	return catalog, nil
}

func Load(path string) (l model.Layout, e error) {
	file, err := os.Open(path)
	if err != nil {
		return l, err
	}
	defer file.Close()
	l, err = model.ParseLayout(file)
	if err != nil {
		return l, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}
