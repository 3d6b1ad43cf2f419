//go:build ignore

// generate_samples renders one sample image per style into the directory
// given as the first argument (default "samples").
//
//	go run tools/generate_samples.go [dir]
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ankek/terraform-provider-qrcode/internal/generator"
	"github.com/ankek/terraform-provider-qrcode/internal/logger"
	"github.com/ankek/terraform-provider-qrcode/internal/style"
)

func main() {
	dir := "samples"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating %s: %v\n", dir, err)
		os.Exit(1)
	}

	level, _ := logger.ParseLevel("debug")
	gen := generator.New(generator.Options{Logger: logger.New(level, os.Stderr)})

	for _, name := range style.Names() {
		outputPath := filepath.Join(dir, name+".png")

		result, err := gen.Generate(context.Background(), generator.Request{
			Data:       "https://registry.terraform.io/providers/ankek/qrcode",
			OutputPath: outputPath,
			Style:      name,
			FillColor:  "#1E3A5F",
			BackColor:  "white",
		})
		if err != nil {
			fmt.Printf("Error rendering %s: %v\n", name, err)
			os.Exit(1)
		}

		fmt.Printf("%-10s version %d, %dpx -> %s\n", name, result.Version, result.Width, outputPath)
	}
}
