//go:build tinygo

package main

import (
	"neoportal/app"
	"neoportal/hal"
)

func main() {
	app.Run(hal.New())
}
