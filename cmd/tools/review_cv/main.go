// Command review_cv runs the rule-based critique against a local CV file
// and prints the result. Handy for checking the analyzer without starting
// the server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"careerhub/internal/cv"
	"careerhub/internal/render"
	"careerhub/internal/review"
)

func main() {
	var asHTML bool
	var asJSON bool
	flag.BoolVar(&asHTML, "html", false, "Print the HTML fragment instead of plain findings")
	flag.BoolVar(&asJSON, "json", false, "Print the critique as JSON")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: review_cv [-html|-json] <cv-file>")
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}

	text := cv.ExtractText(filepath.Ext(path), data)
	if text == "" {
		log.Fatalf("no text could be extracted from %s", path)
	}

	critique := review.Analyze(text)

	switch {
	case asJSON:
		out, _ := json.MarshalIndent(critique, "", "  ")
		fmt.Println(string(out))
	case asHTML:
		fmt.Println(render.Critique(critique))
	default:
		for _, s := range critique.Strengths {
			fmt.Println(s)
		}
		for _, w := range critique.Weaknesses {
			fmt.Println(w)
		}
		for _, s := range critique.Suggestions {
			fmt.Println("-", s)
		}
		for _, sec := range critique.ImprovedSections {
			fmt.Printf("%s: %s\n", sec.Section, sec.Content)
		}
	}
}
