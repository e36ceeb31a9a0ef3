// Command angletab renders the gmath binary angle lookup tables.
//
// It regenerates angle_table.go (see the go:generate directive in angle.go)
// and prints a per-angle listing for inspecting table precision:
//
//	angletab -format go -o angle_table.go
//	angletab -format text -lang de
package main

import (
	"bytes"
	"flag"
	"log"
	"os"

	"golang.org/x/text/language"

	"github.com/gogpu/gmath/internal/tabfmt"
)

func main() {
	var (
		formatName = flag.String("format", "text", "output format: go or text")
		output     = flag.String("o", "", "output file (default stdout)")
		lang       = flag.String("lang", "en", "BCP 47 language tag for text output")
		pkg        = flag.String("pkg", "gmath", "package clause for go output")
	)
	flag.Parse()

	format, err := tabfmt.ParseFormat(*formatName)
	if err != nil {
		log.Fatalf("angletab: %v", err)
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("angletab: invalid language %q: %v", *lang, err)
	}

	var buf bytes.Buffer
	err = tabfmt.Write(&buf,
		tabfmt.WithFormat(format),
		tabfmt.WithLanguage(tag),
		tabfmt.WithPackage(*pkg),
	)
	if err != nil {
		log.Fatalf("angletab: %v", err)
	}

	if *output == "" {
		if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
			log.Fatalf("angletab: %v", err)
		}
		return
	}
	if err := os.WriteFile(*output, buf.Bytes(), 0o644); err != nil {
		log.Fatalf("angletab: %v", err)
	}
	log.Printf("angletab: wrote %s (%s)", *output, format)
}
