package cmd

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"minipyc/report"
	"minipyc/syntax"
)

// writeListing writes a single named listing either to standard output or, if
// an output directory was configured, to `<source>.<name>.txt` inside it.
func (c *Compiler) writeListing(name, text string) {
	if c.outPath == "" {
		report.DisplayInfoMessage(strings.ToUpper(name), c.reprPath)
		fmt.Print(text)

		if !strings.HasSuffix(text, "\n") {
			fmt.Println()
		}

		return
	}

	base := strings.TrimSuffix(c.reprPath, filepath.Ext(c.reprPath))
	outFile := filepath.Join(c.outPath, base+"."+name+".txt")
	if err := ioutil.WriteFile(outFile, []byte(text), 0644); err != nil {
		report.ReportFatal("unable to write listing to `%s`: %s", outFile, err.Error())
	}
}

// tokenListing renders the token sequence one token per line.
func tokenListing(tokens []*syntax.Token) string {
	sb := strings.Builder{}

	for _, tok := range tokens {
		sb.WriteString(tok.String())
		sb.WriteRune('\n')
	}

	return sb.String()
}
