// Package postfix evaluates infix arithmetic expressions by way of reverse
// Polish notation.
//
// An expression passes through four stages: Tokenize scans the text into
// tokens, Convert reorders them into postfix with the shunting-yard
// algorithm, Build turns the postfix sequence into a binary expression tree,
// and Tree.Solve walks the tree against a map of variable bindings. Each
// stage is usable on its own, or Eval runs the whole pipeline at once.
//
// A tree is immutable once built, so one parse can be evaluated any number
// of times with different bindings, including concurrently.
//
// Every operator associates to the left, including ^: "2^3^2" is "(2^3)^2",
// which is 64, not 512.
package postfix
