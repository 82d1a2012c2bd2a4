// Minimal entry point; CLI handling lives in root.go.
package main

func main() {
	Execute()
}
