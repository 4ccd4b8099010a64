// labctl loads models into a lab scene and renders them to PNG.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "render":
		err = cmdRender(args)
	case "orbit":
		err = cmdOrbit(args)
	case "settings", "config":
		err = cmdSettings(args)
	case "watch":
		err = cmdWatch(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`labctl - lighting lab scene renderer

Usage:
  labctl <command> [options] [model...]

Commands:
  render [model...]   Load models and write one frame
  orbit [model...]    Orbit the light and write one frame per step
  settings            Print the effective configuration as YAML
  watch [model...]    Re-render whenever a model or the texture changes

Common options:
  -config <file>      Config file (default ./labctl.yaml, then user config dir)
  -debug              Enable debug logging
  -width, -height     Viewport size
  -texture <image>    Texture applied to every model
  -out <file.png>     Output image
  -shading <mode>     flat, gouraud or phong

Examples:
  labctl render -texture brick.png cube.obj teapot.gltf
  labctl orbit -steps 12 -az 0.5 -el 0.25 -out frames/light.png cube.obj
  labctl settings -shading flat -save-user
  labctl watch -shading phong cube.obj`)
}
