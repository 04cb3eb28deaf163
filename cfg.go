package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/zucenko/ladders/model"
)

type ClientConfig struct {
	Server   string `env:"LADDERS_SERVER" envDefault:"ws://localhost:8080/play"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Scale    int    `env:"LADDERS_SCALE" envDefault:"1"`
}

func LoadConfig() (ClientConfig, error) {
	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	return cfg, nil
}

func HexToF32(u uint32, id int) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b, id}
}

type GameColor struct {
	r  float64
	g  float64
	b  float64
	id int
}

func (c GameColor) RGBA() (r, g, b, a uint32) {
	return uint32(c.r * 0xffff), uint32(c.g * 0xffff), uint32(c.b * 0xffff), 0xffff
}

var COLOR_NONE = HexToF32(0x000000, 0)
var COLOR_OFF = HexToF32(0x1c1c1c, 0)

// led colours per cell kind
var COLORS = map[model.Kind]GameColor{
	model.Start:         HexToF32(0xffffff, 1),
	model.Finish:        HexToF32(0xedbc1e, 2),
	model.Player1Marker: HexToF32(0xfa3636, 3),
	model.Player2Marker: HexToF32(0x34fbf6, 4),
	model.SnakeStart:    HexToF32(0x0abd38, 5),
	model.SnakeMiddle:   HexToF32(0x066e21, 5),
	model.SnakeEnd:      HexToF32(0x0abd38, 5),
	model.LadderStart:   HexToF32(0xcb18dd, 6),
	model.LadderMiddle:  HexToF32(0x6a0d74, 6),
	model.LadderEnd:     HexToF32(0xcb18dd, 6),
}

func CellColor(d model.Descriptor) GameColor {
	if c, ok := COLORS[d.Kind()]; ok {
		return c
	}
	return COLOR_OFF
}
