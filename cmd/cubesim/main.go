// cubesim - interactive Rubik's Cube simulator and animation engine.
package main

import (
	"github.com/SeamusWaldron/cubesim/internal/cli"
)

func main() {
	cli.Execute()
}
