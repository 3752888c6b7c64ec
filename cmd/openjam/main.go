// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command openjam is a terminal client for the OpenJam content API.
//
// # Commands
//
//	openjam collections                     List the known collections
//	openjam query <collection> [id] [flags] Print the request path
//	openjam list <collection> [flags]       Fetch one page of a collection
//	openjam get <collection> <id>           Fetch one document
//	openjam validate <collection> <file>    Check a JSON document locally
//
// The backend address comes from OPENJAM_API_URL or --api-url.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
