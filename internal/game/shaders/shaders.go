package shaders

import _ "embed"

//go:embed triangle.kage
var Triangle []byte
