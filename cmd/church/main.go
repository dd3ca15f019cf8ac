package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pgavlin/church"
)

func main() {
	if len(os.Args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s\n", os.Args[0])
		os.Exit(-1)
	}

	printBool := func(label string, b church.Value) {
		fmt.Printf("%s = %v\n", label, church.ToBool(b))
	}
	printNum := func(label string, n church.Value) {
		x, err := church.ToInt(n)
		if err != nil {
			log.Fatalf("%s: %v", label, err)
		}
		fmt.Printf("%s = %d\n", label, x)
	}

	a := church.Apply

	printBool("T", church.T)
	printBool("F", church.F)

	printBool("And(T)(F)", a(church.And, church.T, church.F))

	printBool("Or(T)(T)", a(church.Or, church.T, church.T))

	printBool("Beq(F)(F)", a(church.Beq, church.F, church.F))

	printNum("Add(N3)(N2)", a(church.Add, church.N3, church.N2))
	printNum("Mul(N3)(N2)", a(church.Mul, church.N3, church.N2))
	printNum("Pow(N3)(Succ(N2))", a(church.Pow, church.N3, a(church.Succ, church.N2)))

	printBool("IsZero(N0)", a(church.IsZero, church.N0))
	printBool("IsZero(Succ(N0))", a(church.IsZero, a(church.Succ, church.N0)))

	printNum("Pred(N3)", a(church.Pred, church.N3))
	printNum("Sub(Pow(N3)(N2))(N2)", a(church.Sub, a(church.Pow, church.N3, church.N2), church.N2))

	printNum("Fib(N9)", a(church.Fib, church.Numeral(9)))
}
