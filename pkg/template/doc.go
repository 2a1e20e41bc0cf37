// Package template implements dotman's line oriented template language.
//
// # Overview
//
// Every expression fits on one line. A line is tokenized, parsed into an
// Expression and evaluated against an Environment of string variables.
// Evaluation either produces a string or nothing.
//
// # Syntax
//
//	$name = "value"              assignment, produces nothing
//	$name = $other               copy another variable
//	$name                        produces the value of name
//	"text"                       produces text
//	if $a == "x" <expression>    evaluates <expression> only when a is "x"
//	if $a != $b <expression>     inequality
//	// anything                  comment, the rest of the line is ignored
//
// A backslash makes the following character literal, so `\"` and `\$`
// can appear in strings and `\if` is an ordinary word.
//
// # File Modes
//
// Source files (IsSource) evaluate every non-blank line. They are used to
// define variables, conventionally with the .te extension.
//
// Template files only evaluate directive lines:
//
//	[user]
//	{{ if $host == "work" "email = me@work.example" }}
//	{{ if $host != "work" "email = me@home.example" }}
//
// A directive line is replaced by what its expression produced, or by an
// empty line. Other lines are copied unchanged. Every output line ends with
// a newline.
//
// # Batches
//
// RenderAll evaluates files in order with one shared Environment, so a
// source file listed first feeds the templates after it. Any error fails
// the whole batch.
//
// # Errors
//
// Failures carry the codes TOKENIZE, PARSE or UNDEFINED_VARIABLE along with
// "text", "line" and "file" details.
package template
