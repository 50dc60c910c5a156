// Command derefgen generates the borrow-forwarding methods for a wrapper
// struct that holds an owned cffi.Ptr in a named field. It is meant to be
// driven by go:generate from the wrapper's package:
//
//	//go:generate go run github.com/coinbase/cffi-go/cmd/derefgen -type Builder -out builder_cffi.go
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/coinbase/cffi-go/internal/gen"
)

func main() {
	typeName := flag.String("type", "", "wrapper type to generate delegation for (required)")
	field := flag.String("field", "", "field holding the cffi.Ptr (default: the only one)")
	out := flag.String("out", "", "output file (default: <type>_cffi.go, lowercased)")
	dir := flag.String("dir", ".", "package directory to load")
	flag.Parse()

	if *typeName == "" {
		log.Fatal("derefgen: -type is required")
	}

	w, err := gen.Load(*dir, *typeName, *field)
	if err != nil {
		log.Fatalf("derefgen: %v", err)
	}

	src, err := gen.Source(w)
	if err != nil {
		log.Fatalf("derefgen: %v", err)
	}

	name := *out
	if name == "" {
		name = strings.ToLower(*typeName) + "_cffi.go"
	}
	if err := os.WriteFile(name, src, 0o644); err != nil {
		log.Fatalf("derefgen: write %s: %v", name, err)
	}
}
