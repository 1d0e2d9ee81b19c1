package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/xiam/bytelex/lexer"
)

var flagFile = flag.String("f", "", "read input from a file instead of the arguments")

func main() {
	flag.Parse()

	var lx *lexer.Scanner
	if *flagFile != "" {
		buf, err := lexer.ReadFile(*flagFile)
		if err != nil {
			log.Fatal("lexer.ReadFile: ", err)
		}
		lx = lexer.New(buf)
	} else {
		lx = lexer.NewFromArgs(flag.Args())
	}

	for {
		tok := lx.NextToken()
		fmt.Println(tok)

		if tok.IsTerminal() {
			break
		}
	}
}
