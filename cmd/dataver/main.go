// Copyright © 2026 One Concern

package main

import (
	"github.com/oneconcern/dataver/cmd/dataver/cmd"
)

func main() {
	cmd.Execute()
}
