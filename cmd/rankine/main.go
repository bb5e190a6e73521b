// Package main provides the rankine CLI for ideal Rankine cycle analysis.
package main

func main() {
	Execute()
}
