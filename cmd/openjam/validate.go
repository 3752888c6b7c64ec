// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/openjam/internal/platform/validate"
)

func newValidateCommand(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <collection> <file>",
		Short: "Check a JSON document against its collection schema ('-' reads stdin)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindOf(args[0])
			if err != nil {
				return err
			}

			input := cmd.InOrStdin()
			if args[1] != "-" {
				file, err := os.Open(args[1])
				if err != nil {
					return err
				}
				defer file.Close()
				input = file
			}

			record, err := readRecord(input)
			if err != nil {
				return err
			}

			result := kind.Schema.Validate(record, validate.AllErrors())
			if result.OK() {
				fmt.Fprintf(state.out, "%s: valid\n", kind.Collection)
				return nil
			}

			for _, detail := range result.Details() {
				fmt.Fprintf(state.out, "%s: %s (%s)\n", detail.Field, detail.Message, detail.Rule)
			}
			return fmt.Errorf("%s: %d violation(s)", kind.Collection, len(result.Details()))
		},
	}
}

func readRecord(input io.Reader) (validate.Record, error) {
	var record validate.Record
	if err := json.NewDecoder(input).Decode(&record); err != nil {
		return nil, fmt.Errorf("document is not a JSON object: %w", err)
	}
	return record, nil
}
