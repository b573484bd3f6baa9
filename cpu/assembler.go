// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/alecthomas/participle/v2/lexer"
)

// Assembler is a single pass assembler for the Intel 8080.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
}

// exprParen matches a parenthesized group nested up to two deep.
const exprParen = `\((?:[^\n;()]|\([^\n;()]*\))*\)`

// sourceLexer splits source text into words. Every input byte matches a
// rule, so lexing never fails on content.
var sourceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t\f\v\r]+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Expr", Pattern: `\$\((?:[^\n;()]|` + exprParen + `)*\)`},
	{Name: "Word", Pattern: `[^ \t\f\v\r\n,;]+`},
})

var (
	tokenEOL  = sourceLexer.Symbols()["EOL"]
	tokenExpr = sourceLexer.Symbols()["Expr"]
	tokenWord = sourceLexer.Symbols()["Word"]
)

// Parse parses an input stream into instructions, one per non-blank line.
func (asm *Assembler) Parse(input io.Reader) (insts []Instruction, err error) {
	lex, err := sourceLexer.Lex("", input)
	if err != nil {
		return
	}

	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return
	}

	var words []string
	var lineno int

	flush := func() {
		if len(words) == 0 {
			return
		}
		inst := makeInstruction(lineno, words)
		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, inst)
		}
		insts = append(insts, inst)
		words = nil
	}

	for _, token := range tokens {
		switch {
		case token.Type == tokenWord, token.Type == tokenExpr:
			if len(words) == 0 {
				lineno = token.Pos.Line
			}
			words = append(words, token.Value)
		case token.Type == tokenEOL, token.EOF():
			flush()
		}
	}
	flush()

	return
}

// ReadFile parses the file at path. The file is closed before returning.
func (asm *Assembler) ReadFile(path string) (insts []Instruction, err error) {
	inf, err := os.Open(path)
	if err != nil {
		err = &ErrFile{Path: path, Err: errors.Join(ErrInputOpen, err)}
		return
	}
	defer inf.Close()

	if asm.Verbose {
		log.Printf("%v: opened", path)
	}

	insts, err = asm.Parse(inf)
	if err != nil {
		err = &ErrFile{Path: path, Err: errors.Join(ErrInputOpen, err)}
		return
	}

	return
}
