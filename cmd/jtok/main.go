// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program jtok tokenizes JSON and simplified JSON documents and answers
// structural queries about them.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
