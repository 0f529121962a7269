//go:build linux || darwin

package main

import "github.com/pranshuparmar/memtop/internal/app"

func main() {
	app.Execute()
}
