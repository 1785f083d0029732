// Command guideparse parses tagged reading guides from the command line or
// over HTTP.
package main

func main() {
	Execute()
}
