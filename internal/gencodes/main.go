// Command gencodes generates the wire code table from a codes.txt listing.
//
// Each non-empty, non-comment input line is "<NAME> <token>". Names starting
// with RPL_ are replies, names starting with ERR_ are errors, anything else
// is a plain command. Run through go generate in the wire package:
//
//	//go:generate go run ../internal/gencodes -in codes.txt -out codes_gen.go
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"strings"
	"text/template"
)

const (
	replyPrefix = "RPL_"
	errorPrefix = "ERR_"
)

type entry struct {
	Name  string
	Token string
	Class string
}

func main() {
	in := flag.String("in", "codes.txt", "code listing to read")
	out := flag.String("out", "codes_gen.go", "Go file to write")
	pkg := flag.String("pkg", "wire", "package name of the generated file")
	flag.Parse()

	f, err := os.Open(*in)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	entries, err := parseListing(f)
	if err != nil {
		log.Fatalf("gencodes: %s: %v", *in, err)
	}

	src, err := render(*pkg, *in, entries)
	if err != nil {
		log.Fatalf("gencodes: %v", err)
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatal(err)
	}
}

func parseListing(r io.Reader) ([]entry, error) {
	var entries []entry
	names := make(map[string]bool)
	tokens := make(map[string]string)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want \"<NAME> <token>\", got %q", lineNo, line)
		}
		name, token := fields[0], fields[1]

		if names[name] {
			return nil, fmt.Errorf("line %d: duplicate name %s", lineNo, name)
		}
		if prev, ok := tokens[token]; ok {
			return nil, fmt.Errorf("line %d: token %s already used by %s", lineNo, token, prev)
		}
		names[name] = true
		tokens[token] = name

		e := entry{Name: name, Token: token}
		switch {
		case strings.HasPrefix(name, replyPrefix):
			e.Class = "classReply"
		case strings.HasPrefix(name, errorPrefix):
			e.Class = "classError"
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no codes found")
	}
	return entries, nil
}

var fileTemplate = template.Must(template.New("codes").Parse(`// Code generated by gencodes from {{.Source}}. DO NOT EDIT.

package {{.Package}}

const (
	Unknown Code = iota
{{- range .Entries}}
	{{.Name}}
{{- end}}
)

var codeTable = [...]codeInfo{
	{name: "Unknown"},
{{- range .Entries}}
	{name: "{{.Name}}", token: "{{.Token}}"{{if .Class}}, class: {{.Class}}{{end}}},
{{- end}}
}
`))

func render(pkg, source string, entries []entry) ([]byte, error) {
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Package string
		Source  string
		Entries []entry
	}{pkg, source, entries})
	if err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}
