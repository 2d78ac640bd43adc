//go:build gpu

package main

// Register the GPU accelerator (SDF shapes, MSAA, MSDF text).
import _ "github.com/gogpu/gg/gpu"
