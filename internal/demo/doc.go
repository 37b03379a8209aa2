// Package demo produces chart input for hosts and tests: random parts
// like the "Redraw" button of a playground app, a qualitative palette and
// a parser for parts given on the command line.
//
// # Random Data
//
//	g := demo.NewGenerator(rand.New(rand.NewPCG(1, 2)))
//	parts := g.Parts() // 1..10 parts, values 1..100, random colors
//	mode := g.Mode()   // Pie or Donut with a line width in [0, 30)
//
// # Parsing
//
// ParseParts accepts comma separated color:value pairs. Colors are hex
// codes or CSS color names:
//
//	parts, err := demo.ParseParts("red:1, #0000ff:3, teal:2.5")
package demo
