package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/arith"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		loose        bool
		depth        int
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.IntVar(&depth, "depth", arith.DefaultMaxDepth, "parenthesis nesting limit")
	flag.BoolVar(&loose, "loose", false, "ignore input trailing an expression")
	flag.Parse()
	if depth <= 0 {
		log.Fatalf("nesting limit (%d) must be positive", depth)
	}

	opts := []arith.Option{arith.MaxDepth(depth)}
	if loose {
		opts = append(opts, arith.AllowTrailing())
	}

	exprs := flag.Args()
	if len(exprs) == 0 || inname != "" {
		in, err := infile(inname)
		if err != nil {
			log.Fatal(err)
		}
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			if strings.TrimSpace(sc.Text()) == "" {
				continue
			}
			exprs = append(exprs, sc.Text())
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
	}

	verb += "\n"
	status := 0
	for _, e := range exprs {
		r, err := arith.Evaluate(e, opts...)
		if err != nil {
			fmt.Println(err)
			status = 1
			continue
		}
		fmt.Printf(verb, r)
	}
	os.Exit(status)
}

func infile(inname string) (*os.File, error) {
	if inname == "" || inname == "-" {
		return os.Stdin, nil
	}
	return os.Open(inname)
}
